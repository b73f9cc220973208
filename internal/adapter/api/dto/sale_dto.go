package dto

import (
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
)

// SaleItemResponse representa uma linha de venda na resposta
type SaleItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// SaleResponse representa a resposta de venda. CustomerName é resolvido
// contra o caderno de clientes no momento da leitura; referência
// pendurada cai para o rótulo "sem cliente" do idioma da interface.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Total         float64            `json:"total"`
	Profit        float64            `json:"profit"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
}

// ToSaleResponse converte a entidade em resposta. customerName deve vir
// já resolvido (ou com o rótulo de fallback) pelo chamador.
func ToSaleResponse(s *sale.Sale, customerName string) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total(),
		})
	}

	return SaleResponse{
		ID:            s.ID,
		Date:          s.Date.Format(time.RFC3339),
		Items:         items,
		Total:         s.Total,
		Profit:        s.Profit,
		CustomerID:    s.CustomerID,
		CustomerName:  customerName,
		PaymentMethod: s.PaymentMethod,
	}
}
