package store

import (
	"context"
	"time"

	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
)

// DefaultSearchLimit limita os resultados da busca de produtos no PDV
const DefaultSearchLimit = 10

// ProductRepository implementa product.Repository sobre o Store
type ProductRepository struct {
	s *Store
}

// Products retorna o repositório de produtos do Store
func (s *Store) Products() product.Repository {
	return &ProductRepository{s: s}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, d product.Draft) (*product.Product, error) {
	p, err := product.New(d)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.products = append(r.s.products, p)
	if err := saveCollection(ctx, r.s.kv, KeyProducts, r.s.products); err != nil {
		return nil, err
	}

	copied := *p
	return &copied, nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.findProduct(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*product.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, term string, limit int) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if limit <= 0 || limit > DefaultSearchLimit {
		limit = DefaultSearchLimit
	}

	out := make([]*product.Product, 0, limit)
	for _, p := range r.s.products {
		if !p.Matches(term) {
			continue
		}
		copied := *p
		out = append(out, &copied)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Categories implementa product.Repository.Categories
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range r.s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// LowStock implementa product.Repository.LowStock
func (r *ProductRepository) LowStock(ctx context.Context) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*product.Product, 0)
	for _, p := range r.s.products {
		if p.IsLowStock() {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Expired implementa product.Repository.Expired
func (r *ProductRepository) Expired(ctx context.Context) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	out := make([]*product.Product, 0)
	for _, p := range r.s.products {
		if p.IsExpired(now) {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, id string, d product.Draft) (*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.findProduct(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	if err := p.Apply(d); err != nil {
		return nil, err
	}
	if err := saveCollection(ctx, r.s.kv, KeyProducts, r.s.products); err != nil {
		return nil, err
	}

	copied := *p
	return &copied, nil
}

// Delete implementa product.Repository.Delete. As vendas históricas
// guardam snapshots de nome e preço e continuam legíveis.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return saveCollection(ctx, r.s.kv, KeyProducts, r.s.products)
		}
	}
	return ErrProductNotFound
}

// findProduct busca um produto pelo ID; o chamador deve segurar o mutex
func (s *Store) findProduct(id string) *product.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}
