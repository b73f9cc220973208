package product

import (
	"context"
)

// Repository define a interface para operações de catálogo de produtos
type Repository interface {
	// Create cria um novo produto a partir de um draft validado
	Create(ctx context.Context, d Draft) (*Product, error)

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista todos os produtos do catálogo
	List(ctx context.Context) ([]*Product, error)

	// Search busca produtos por nome ou código de barras, limitado a limit resultados
	Search(ctx context.Context, term string, limit int) ([]*Product, error)

	// Categories retorna as categorias distintas em uso, na ordem de primeira ocorrência
	Categories(ctx context.Context) ([]string, error)

	// LowStock lista os produtos com estoque abaixo ou igual ao limite configurado
	LowStock(ctx context.Context) ([]*Product, error)

	// Expired lista os produtos com data de validade vencida
	Expired(ctx context.Context) ([]*Product, error)

	// Update substitui os dados de um produto existente, exceto o ID
	Update(ctx context.Context, id string, d Draft) (*Product, error)

	// Delete remove um produto do catálogo; vendas históricas não são afetadas
	Delete(ctx context.Context, id string) error
}
