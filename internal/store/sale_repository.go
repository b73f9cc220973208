package store

import (
	"context"

	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
)

// SaleRepository implementa sale.Repository sobre o Store
type SaleRepository struct {
	s *Store
}

// Sales retorna o repositório do histórico de vendas do Store
func (s *Store) Sales() sale.Repository {
	return &SaleRepository{s: s}
}

// Append implementa sale.Repository.Append. A venda entra no início da
// lista: o histórico é mantido da mais recente para a mais antiga.
func (r *SaleRepository) Append(ctx context.Context, committed *sale.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sales = append([]*sale.Sale{committed}, r.s.sales...)
	return saveCollection(ctx, r.s.kv, KeySales, r.s.sales)
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, s := range r.s.sales {
		if s.ID == id {
			return cloneSale(s), nil
		}
	}
	return nil, ErrSaleNotFound
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*sale.Sale, 0, len(r.s.sales))
	for _, s := range r.s.sales {
		out = append(out, cloneSale(s))
	}
	return out, nil
}

func cloneSale(s *sale.Sale) *sale.Sale {
	copied := *s
	copied.Items = make([]sale.Item, len(s.Items))
	copy(copied.Items, s.Items)
	return &copied
}
