package dto

import (
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/customer"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Address string  `json:"address"`
	Debt    float64 `json:"debt"`
}

// ToDraft converte a requisição em um draft de cliente
func (r CustomerRequest) ToDraft() customer.Draft {
	return customer.Draft{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		Debt:    r.Debt,
	}
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address,omitempty"`
	Debt      float64 `json:"debt"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToCustomerResponse converte a entidade em resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Debt:      c.Debt,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCustomerResponseList converte uma lista de entidades em respostas
func ToCustomerResponseList(customers []*customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerResponse(c))
	}
	return out
}
