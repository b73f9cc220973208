package store

import (
	"context"

	"github.com/hugohenrick/pos-mercearia/internal/domain/customer"
)

// CustomerRepository implementa customer.Repository sobre o Store
type CustomerRepository struct {
	s *Store
}

// Customers retorna o repositório de clientes do Store
func (s *Store) Customers() customer.Repository {
	return &CustomerRepository{s: s}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, d customer.Draft) (*customer.Customer, error) {
	c, err := customer.New(d)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.customers = append(r.s.customers, c)
	if err := saveCollection(ctx, r.s.kv, KeyCustomers, r.s.customers); err != nil {
		return nil, err
	}

	copied := *c
	return &copied, nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.customers {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*customer.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, id string, d customer.Draft) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.customers {
		if c.ID == id {
			if err := c.Apply(d); err != nil {
				return nil, err
			}
			if err := saveCollection(ctx, r.s.kv, KeyCustomers, r.s.customers); err != nil {
				return nil, err
			}
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// Delete implementa customer.Repository.Delete. A exclusão é
// incondicional: vendas que referenciam o cliente ficam com a
// referência pendurada e a exibição cai para "sem cliente".
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, c := range r.s.customers {
		if c.ID == id {
			r.s.customers = append(r.s.customers[:i], r.s.customers[i+1:]...)
			return saveCollection(ctx, r.s.kv, KeyCustomers, r.s.customers)
		}
	}
	return ErrCustomerNotFound
}
