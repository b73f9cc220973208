package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do produto não pode ser vazio")
	ErrEmptyCategory = errors.New("categoria não pode ser vazia")
	ErrInvalidPrice  = errors.New("preço deve ser maior que zero")
	ErrNegativeCost  = errors.New("custo não pode ser negativo")
	ErrNegativeStock = errors.New("estoque não pode ser negativo")
)

// Product representa um produto do catálogo
type Product struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Price             float64    `json:"price"`
	Cost              float64    `json:"cost"`
	Stock             int        `json:"stock"`
	LowStockThreshold int        `json:"low_stock_threshold"`
	Barcode           string     `json:"barcode,omitempty"`
	Description       string     `json:"description,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Draft carrega os campos editáveis de um produto antes da validação.
// Um Draft só vira Product (ou atualiza um existente) depois de Validate.
type Draft struct {
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Price             float64    `json:"price"`
	Cost              float64    `json:"cost"`
	Stock             int        `json:"stock"`
	LowStockThreshold int        `json:"low_stock_threshold"`
	Barcode           string     `json:"barcode"`
	Description       string     `json:"description"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	ImageURL          string     `json:"image_url"`
}

// Validate verifica os invariantes de entrada do catálogo
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrEmptyCategory
	}
	if d.Price <= 0 {
		return ErrInvalidPrice
	}
	if d.Cost < 0 {
		return ErrNegativeCost
	}
	if d.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// New cria um novo produto a partir de um draft validado
func New(d Draft) (*Product, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Product{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.apply(d, now)
	return p, nil
}

// Apply substitui todos os campos exceto o ID
func (p *Product) Apply(d Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	p.apply(d, time.Now())
	return nil
}

func (p *Product) apply(d Draft, now time.Time) {
	p.Name = strings.TrimSpace(d.Name)
	p.Category = strings.TrimSpace(d.Category)
	p.Price = d.Price
	p.Cost = d.Cost
	p.Stock = d.Stock
	p.LowStockThreshold = d.LowStockThreshold
	p.Barcode = d.Barcode
	p.Description = d.Description
	p.ExpiryDate = d.ExpiryDate
	p.ImageURL = d.ImageURL
	p.UpdatedAt = now
}

// IsLowStock verifica se o produto atingiu o limite de estoque baixo
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// IsExpired verifica se o produto está vencido em relação ao instante informado
func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpiryDate != nil && p.ExpiryDate.Before(now)
}

// DecrementStock abate qty unidades do estoque, travando em zero.
// Retorna true quando o abatimento precisou ser truncado, o que indica
// uma falha de integridade dos dados e não um fluxo normal de venda.
func (p *Product) DecrementStock(qty int) (clamped bool) {
	if qty >= p.Stock {
		clamped = qty > p.Stock
		p.Stock = 0
	} else {
		p.Stock -= qty
	}
	p.UpdatedAt = time.Now()
	return clamped
}

// Matches verifica se o produto corresponde ao termo de busca (nome ou código de barras)
func (p *Product) Matches(term string) bool {
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
		return true
	}
	return p.Barcode != "" && strings.Contains(p.Barcode, term)
}
