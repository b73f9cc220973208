package customer

import (
	"context"
)

// Repository define a interface para operações do caderno de clientes
type Repository interface {
	// Create cria um novo cliente a partir de um draft validado
	Create(ctx context.Context, d Draft) (*Customer, error)

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// List lista todos os clientes
	List(ctx context.Context) ([]*Customer, error)

	// Update substitui os dados de um cliente existente, exceto o ID
	Update(ctx context.Context, id string, d Draft) (*Customer, error)

	// Delete remove um cliente; vendas que o referenciam não são verificadas
	Delete(ctx context.Context, id string) error
}
