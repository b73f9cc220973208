package dto

import (
	"errors"
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
)

// ErrInvalidExpiryDate indica data de validade fora do formato AAAA-MM-DD
var ErrInvalidExpiryDate = errors.New("data de validade inválida, use o formato AAAA-MM-DD")

const expiryDateLayout = "2006-01-02"

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name              string  `json:"name" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Price             float64 `json:"price" binding:"required"`
	Cost              float64 `json:"cost"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Barcode           string  `json:"barcode"`
	Description       string  `json:"description"`
	ExpiryDate        string  `json:"expiry_date"`
	ImageURL          string  `json:"image_url"`
}

// ToDraft converte a requisição em um draft de produto
func (r ProductRequest) ToDraft() (product.Draft, error) {
	d := product.Draft{
		Name:              r.Name,
		Category:          r.Category,
		Price:             r.Price,
		Cost:              r.Cost,
		Stock:             r.Stock,
		LowStockThreshold: r.LowStockThreshold,
		Barcode:           r.Barcode,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
	}
	if r.ExpiryDate != "" {
		t, err := time.Parse(expiryDateLayout, r.ExpiryDate)
		if err != nil {
			return product.Draft{}, ErrInvalidExpiryDate
		}
		d.ExpiryDate = &t
	}
	return d, nil
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Cost              float64 `json:"cost"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	LowStock          bool    `json:"low_stock"`
	Barcode           string  `json:"barcode,omitempty"`
	Description       string  `json:"description,omitempty"`
	ExpiryDate        string  `json:"expiry_date,omitempty"`
	ImageURL          string  `json:"image_url,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// ToProductResponse converte a entidade em resposta
func ToProductResponse(p *product.Product) ProductResponse {
	resp := ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		Cost:              p.Cost,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.IsLowStock(),
		Barcode:           p.Barcode,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
	if p.ExpiryDate != nil {
		resp.ExpiryDate = p.ExpiryDate.Format(expiryDateLayout)
	}
	return resp
}

// ToProductResponseList converte uma lista de entidades em respostas
func ToProductResponseList(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// DescribeRequest representa a requisição de geração de descrição
type DescribeRequest struct {
	Name string `json:"name" binding:"required"`
}

// DescribeResponse representa a resposta de geração de descrição
type DescribeResponse struct {
	Description string `json:"description"`
}
