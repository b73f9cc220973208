package checkout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
	"github.com/hugohenrick/pos-mercearia/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pos-mercearia/internal/store"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(context.Background(), kvstore.NewMemory(), logger.NewLogger())
	require.NoError(t, err)
	return st
}

func createProduct(t *testing.T, st *store.Store, name string, price, cost float64, stock int) *product.Product {
	t.Helper()
	p, err := st.Products().Create(context.Background(), product.Draft{
		Name:     name,
		Category: "teste",
		Price:    price,
		Cost:     cost,
		Stock:    stock,
	})
	require.NoError(t, err)
	return p
}

func TestCartFullSaleFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	p := createProduct(t, st, "arroz", 10, 8, 5)

	cart := checkout.NewCart(st.Products(), st)
	assert.Equal(t, checkout.StateBuilding, cart.State())

	for i := 0; i < 3; i++ {
		require.NoError(t, cart.AddItem(ctx, p.ID))
	}

	items, err := cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 30.0, items[0].LineTotal)

	// pedir mais do que há em estoque trunca no estoque vivo
	require.NoError(t, cart.SetQuantity(ctx, p.ID, 10))
	items, err = cart.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	total, err := cart.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, total)

	committed, clamped, err := cart.Commit(ctx, "", sale.PaymentCash)
	require.NoError(t, err)
	assert.Empty(t, clamped)
	assert.Equal(t, 50.0, committed.Total)
	assert.InDelta(t, 10.0, committed.Profit, 1e-9)
	require.Len(t, committed.Items, 1)
	assert.Equal(t, "arroz", committed.Items[0].ProductName)

	// o estoque foi abatido e o carrinho transicionou para Committed
	after, err := st.Products().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Stock)
	assert.Equal(t, checkout.StateCommitted, cart.State())
	assert.Equal(t, committed.ID, cart.LastSale().ID)

	// a venda entrou no histórico como a mais recente
	sales, err := st.Sales().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sales)
	assert.Equal(t, committed.ID, sales[0].ID)
}

func TestCartAddItemRespectsStock(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	soldOut := createProduct(t, st, "esgotado", 5, 3, 0)
	scarce := createProduct(t, st, "escasso", 5, 3, 2)

	cart := checkout.NewCart(st.Products(), st)

	// produto sem estoque nunca entra no carrinho
	require.NoError(t, cart.AddItem(ctx, soldOut.ID))
	items, err := cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// a linha cresce até o estoque e depois os incrementos viram no-op
	for i := 0; i < 5; i++ {
		require.NoError(t, cart.AddItem(ctx, scarce.ID))
	}
	items, err = cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	st := newTestStore(t)
	cart := checkout.NewCart(st.Products(), st)

	err := cart.AddItem(context.Background(), "inexistente")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	p := createProduct(t, st, "leite", 7, 5, 10)

	cart := checkout.NewCart(st.Products(), st)
	require.NoError(t, cart.AddItem(ctx, p.ID))

	require.NoError(t, cart.SetQuantity(ctx, p.ID, 0))
	items, err := cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// linha ausente é no-op, não erro
	require.NoError(t, cart.SetQuantity(ctx, p.ID, 3))
	items, err = cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartCommitEmptyCart(t *testing.T) {
	st := newTestStore(t)
	cart := checkout.NewCart(st.Products(), st)

	_, _, err := cart.Commit(context.Background(), "", sale.PaymentCash)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, checkout.StateBuilding, cart.State())
}

func TestCartCommitInvalidPaymentMethod(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	p := createProduct(t, st, "pão", 2, 1, 10)

	cart := checkout.NewCart(st.Products(), st)
	require.NoError(t, cart.AddItem(ctx, p.ID))

	_, _, err := cart.Commit(ctx, "", sale.PaymentMethod("cheque"))
	assert.ErrorIs(t, err, sale.ErrInvalidPaymentMethod)

	// a falha não consome o carrinho
	items, err := cart.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartCommittedStateRejectsMutations(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	p := createProduct(t, st, "café", 45, 38, 10)

	cart := checkout.NewCart(st.Products(), st)
	require.NoError(t, cart.AddItem(ctx, p.ID))
	_, _, err := cart.Commit(ctx, "", sale.PaymentCard)
	require.NoError(t, err)

	assert.ErrorIs(t, cart.AddItem(ctx, p.ID), checkout.ErrCartCommitted)
	assert.ErrorIs(t, cart.SetQuantity(ctx, p.ID, 2), checkout.ErrCartCommitted)
	assert.ErrorIs(t, cart.RemoveItem(p.ID), checkout.ErrCartCommitted)
	_, _, err = cart.Commit(ctx, "", sale.PaymentCard)
	assert.ErrorIs(t, err, checkout.ErrCartCommitted)

	// Cancel inicia a próxima venda
	cart.Cancel()
	assert.Equal(t, checkout.StateBuilding, cart.State())
	assert.Nil(t, cart.LastSale())
	require.NoError(t, cart.AddItem(ctx, p.ID))
}

func TestCartItemsOmitDeletedProducts(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	p := createProduct(t, st, "efêmero", 3, 2, 5)

	cart := checkout.NewCart(st.Products(), st)
	require.NoError(t, cart.AddItem(ctx, p.ID))
	require.NoError(t, st.Products().Delete(ctx, p.ID))

	items, err := cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := cart.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}
