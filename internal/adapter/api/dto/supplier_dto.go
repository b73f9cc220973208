package dto

import (
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// ToDraft converte a requisição em um draft de fornecedor
func (r SupplierRequest) ToDraft() supplier.Draft {
	return supplier.Draft{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		Balance: r.Balance,
	}
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address,omitempty"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToSupplierResponse converte a entidade em resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Address:   s.Address,
		Balance:   s.Balance,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToSupplierResponseList converte uma lista de entidades em respostas
func ToSupplierResponseList(suppliers []*supplier.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, ToSupplierResponse(s))
	}
	return out
}
