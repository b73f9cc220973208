package dto

import (
	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
)

// AddItemRequest representa a requisição de adicionar item ao carrinho
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// SetQuantityRequest representa a requisição de alterar a quantidade de
// uma linha do carrinho. Zero ou negativo remove a linha.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse representa o estado atual do carrinho
type CartResponse struct {
	State checkout.State      `json:"state"`
	Items []checkout.ItemView `json:"items"`
	Total float64             `json:"total"`
}

// CommitRequest representa a requisição de conclusão da venda
type CommitRequest struct {
	CustomerID    string             `json:"customer_id"`
	PaymentMethod sale.PaymentMethod `json:"payment_method" binding:"required"`
}

// CommitResponse representa a resposta de conclusão da venda. Warnings
// lista avisos de integridade (abatimento de estoque truncado em zero).
type CommitResponse struct {
	Sale     SaleResponse `json:"sale"`
	Warnings []string     `json:"warnings,omitempty"`
}
