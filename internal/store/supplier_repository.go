package store

import (
	"context"

	"github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
)

// SupplierRepository implementa supplier.Repository sobre o Store
type SupplierRepository struct {
	s *Store
}

// Suppliers retorna o repositório de fornecedores do Store
func (s *Store) Suppliers() supplier.Repository {
	return &SupplierRepository{s: s}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, d supplier.Draft) (*supplier.Supplier, error) {
	sup, err := supplier.New(d)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.suppliers = append(r.s.suppliers, sup)
	if err := saveCollection(ctx, r.s.kv, KeySuppliers, r.s.suppliers); err != nil {
		return nil, err
	}

	copied := *sup
	return &copied, nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sup := range r.s.suppliers {
		if sup.ID == id {
			copied := *sup
			return &copied, nil
		}
	}
	return nil, ErrSupplierNotFound
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context) ([]*supplier.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*supplier.Supplier, 0, len(r.s.suppliers))
	for _, sup := range r.s.suppliers {
		copied := *sup
		out = append(out, &copied)
	}
	return out, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, id string, d supplier.Draft) (*supplier.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sup := range r.s.suppliers {
		if sup.ID == id {
			if err := sup.Apply(d); err != nil {
				return nil, err
			}
			if err := saveCollection(ctx, r.s.kv, KeySuppliers, r.s.suppliers); err != nil {
				return nil, err
			}
			copied := *sup
			return &copied, nil
		}
	}
	return nil, ErrSupplierNotFound
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, sup := range r.s.suppliers {
		if sup.ID == id {
			r.s.suppliers = append(r.s.suppliers[:i], r.s.suppliers[i+1:]...)
			return saveCollection(ctx, r.s.kv, KeySuppliers, r.s.suppliers)
		}
	}
	return ErrSupplierNotFound
}
