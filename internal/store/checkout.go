package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
)

// RecordSale implementa checkout.Ledger. É o passo atômico do commit:
// sob o mutex do Store, calcula o lucro com os custos vivos do catálogo,
// monta a venda com snapshots de nome e preço, abate o estoque de cada
// produto e anexa a venda ao histórico. Preço e custo são os do momento
// do commit, não os do momento em que o item entrou no carrinho.
//
// O abatimento nunca leva o estoque abaixo de zero: se uma linha pedir
// mais do que há (o que não deveria ocorrer no modelo de usuário único),
// o abatimento trava em zero e o nome do produto volta na lista de
// truncados como falha de integridade, sem abortar a venda.
func (s *Store) RecordSale(ctx context.Context, lines []checkout.Line, customerID string, method sale.PaymentMethod) (*sale.Sale, []string, error) {
	if !method.Valid() {
		return nil, nil, sale.ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]sale.Item, 0, len(lines))
	var total, profit float64
	var clamped []string

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		p := s.findProduct(line.ProductID)
		if p == nil {
			// produto removido entre a montagem do carrinho e o commit
			s.logger.Warn("produto do carrinho não existe mais no catálogo", "product_id", line.ProductID)
			continue
		}

		items = append(items, sale.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       p.Price,
		})
		total += float64(line.Quantity) * p.Price
		profit += float64(line.Quantity) * (p.Price - p.Cost)

		if p.DecrementStock(line.Quantity) {
			s.logger.Error("abatimento de estoque truncado em zero", "product_id", p.ID, "quantity", line.Quantity)
			clamped = append(clamped, p.Name)
		}
	}

	if len(items) == 0 {
		return nil, nil, checkout.ErrEmptyCart
	}

	committed := &sale.Sale{
		ID:            uuid.New().String(),
		Date:          time.Now(),
		Items:         items,
		Total:         total,
		Profit:        profit,
		CustomerID:    customerID,
		PaymentMethod: method,
	}
	s.sales = append([]*sale.Sale{committed}, s.sales...)

	if err := saveCollection(ctx, s.kv, KeyProducts, s.products); err != nil {
		return nil, nil, err
	}
	if err := saveCollection(ctx, s.kv, KeySales, s.sales); err != nil {
		return nil, nil, err
	}

	return cloneSale(committed), clamped, nil
}
