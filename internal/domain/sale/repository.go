package sale

import (
	"context"
)

// Repository define a interface de acesso ao histórico de vendas.
// O histórico é apenas anexado: Append é a única escrita.
type Repository interface {
	// Append registra uma venda concluída no histórico
	Append(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas da mais recente para a mais antiga
	List(ctx context.Context) ([]*Sale, error)
}
