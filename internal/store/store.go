package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
	"github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
	"github.com/hugohenrick/pos-mercearia/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// Chaves das coleções na camada de persistência
const (
	KeyProducts  = "products"
	KeyCustomers = "customers"
	KeySuppliers = "suppliers"
	KeySales     = "sales"
)

var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrCustomerNotFound = errors.New("cliente não encontrado")
	ErrSupplierNotFound = errors.New("fornecedor não encontrado")
	ErrSaleNotFound     = errors.New("venda não encontrada")
)

// Store é o dono exclusivo das quatro coleções do sistema. Toda mutação
// passa por seus métodos sob um único mutex: cada operação é um passo
// atômico, e a coleção afetada é salva inteira logo após a mutação.
//
// O histórico de vendas é mantido da mais recente para a mais antiga.
type Store struct {
	mu     sync.Mutex
	kv     kvstore.KV
	logger logger.Logger

	products  []*product.Product
	customers []*customer.Customer
	suppliers []*supplier.Supplier
	sales     []*sale.Sale
}

// New carrega as coleções da camada de persistência. Chave ausente cai
// para o conjunto de dados inicial, que é então persistido.
func New(ctx context.Context, kv kvstore.KV, log logger.Logger) (*Store, error) {
	s := &Store{kv: kv, logger: log}
	if err := s.loadAll(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadAll(ctx context.Context) error {
	if err := loadCollection(ctx, s.kv, KeyProducts, &s.products, seedProducts); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.kv, KeyCustomers, &s.customers, seedCustomers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.kv, KeySuppliers, &s.suppliers, seedSuppliers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.kv, KeySales, &s.sales, seedSales); err != nil {
		return err
	}
	return nil
}

// loadCollection carrega uma coleção do KV ou semeia quando a chave não existe
func loadCollection[T any](ctx context.Context, kv kvstore.KV, key string, dst *[]T, seed func() []T) error {
	raw, err := kv.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			*dst = seed()
			return saveCollection(ctx, kv, key, *dst)
		}
		return fmt.Errorf("erro ao carregar coleção %s: %w", key, err)
	}

	var loaded []T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("erro ao desserializar coleção %s: %w", key, err)
	}
	*dst = loaded
	return nil
}

func saveCollection[T any](ctx context.Context, kv kvstore.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("erro ao serializar coleção %s: %w", key, err)
	}
	if err := kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("erro ao salvar coleção %s: %w", key, err)
	}
	return nil
}

// Reset apaga as quatro coleções e recarrega o conjunto inicial.
// Operação destrutiva: a confirmação acontece na borda de apresentação.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyProducts, KeyCustomers, KeySuppliers, KeySales} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("erro ao apagar coleção %s: %w", key, err)
		}
	}

	s.logger.Warn("dados da loja apagados, recarregando dados iniciais")
	return s.loadAll(ctx)
}

// Close libera o driver de persistência
func (s *Store) Close() error {
	return s.kv.Close()
}
