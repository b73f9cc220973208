package supplier

import (
	"context"
)

// Repository define a interface para operações do caderno de fornecedores
type Repository interface {
	// Create cria um novo fornecedor a partir de um draft validado
	Create(ctx context.Context, d Draft) (*Supplier, error)

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista todos os fornecedores
	List(ctx context.Context) ([]*Supplier, error)

	// Update substitui os dados de um fornecedor existente, exceto o ID
	Update(ctx context.Context, id string, d Draft) (*Supplier, error)

	// Delete remove um fornecedor
	Delete(ctx context.Context, id string) error
}
