package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
	"github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
	"github.com/hugohenrick/pos-mercearia/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

func newTestStore(t *testing.T) (*Store, kvstore.KV) {
	t.Helper()
	kv := kvstore.NewMemory()
	st, err := New(context.Background(), kv, logger.NewLogger())
	require.NoError(t, err)
	return st, kv
}

func TestStoreSeedsOnFirstLoad(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	products, err := st.Products().List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	customers, err := st.Customers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 3)

	suppliers, err := st.Suppliers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	sales, err := st.Sales().List(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 3)
}

func TestProductDraftValidation(t *testing.T) {
	valid := product.Draft{Name: "arroz", Category: "أساسيات", Price: 12, Cost: 9, Stock: 30}

	tests := []struct {
		name    string
		mutate  func(d *product.Draft)
		wantErr error
	}{
		{"nome vazio", func(d *product.Draft) { d.Name = "  " }, product.ErrEmptyName},
		{"categoria vazia", func(d *product.Draft) { d.Category = "" }, product.ErrEmptyCategory},
		{"preço zero", func(d *product.Draft) { d.Price = 0 }, product.ErrInvalidPrice},
		{"preço negativo", func(d *product.Draft) { d.Price = -1 }, product.ErrInvalidPrice},
		{"custo negativo", func(d *product.Draft) { d.Cost = -0.5 }, product.ErrNegativeCost},
		{"estoque negativo", func(d *product.Draft) { d.Stock = -1 }, product.ErrNegativeStock},
	}

	ctx := context.Background()
	st, _ := newTestStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			_, err := st.Products().Create(ctx, d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Products()

	created, err := repo.Create(ctx, product.Draft{
		Name: "زبادي", Category: "ألبان", Price: 4, Cost: 3, Stock: 60, LowStockThreshold: 10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "زبادي", found.Name)

	updated, err := repo.Update(ctx, created.ID, product.Draft{
		Name: "زبادي يوناني", Category: "ألبان", Price: 6, Cost: 4, Stock: 55, LowStockThreshold: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 6.0, updated.Price)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrProductNotFound)

	_, err = repo.Update(ctx, "inexistente", product.Draft{Name: "x", Category: "y", Price: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductSearch(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Products()

	_, err := repo.Create(ctx, product.Draft{
		Name: "Couscous fin", Category: "أساسيات", Price: 9, Cost: 6, Stock: 30, Barcode: "6191234567890",
	})
	require.NoError(t, err)

	byName, err := repo.Search(ctx, "couscous", 0)
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byBarcode, err := repo.Search(ctx, "619123", 0)
	require.NoError(t, err)
	require.Len(t, byBarcode, 1)
	assert.Equal(t, byName[0].ID, byBarcode[0].ID)

	// termo vazio não casa com nada
	none, err := repo.Search(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductSearchLimit(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Products()

	for i := 0; i < DefaultSearchLimit+5; i++ {
		_, err := repo.Create(ctx, product.Draft{
			Name: "biscoito sortido", Category: "doces", Price: 2, Cost: 1, Stock: 10,
		})
		require.NoError(t, err)
	}

	results, err := repo.Search(ctx, "biscoito", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultSearchLimit)

	two, err := repo.Search(ctx, "biscoito", 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestProductCategoriesFirstSeenOrder(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	categories, err := st.Products().Categories(ctx)
	require.NoError(t, err)
	// ordem de primeira ocorrência no catálogo semeado
	assert.Equal(t, []string{"زيوت", "معلبات", "أساسيات", "مشروبات", "ألبان"}, categories)
}

func TestProductLowStockAndExpired(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Products()

	low, err := repo.LowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = repo.Create(ctx, product.Draft{
		Name: "vela", Category: "diversos", Price: 1, Cost: 0.5, Stock: 2, LowStockThreshold: 5,
	})
	require.NoError(t, err)

	low, err = repo.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "vela", low[0].Name)

	yesterday := time.Now().Add(-24 * time.Hour)
	tomorrow := time.Now().Add(24 * time.Hour)

	stale, err := repo.Create(ctx, product.Draft{
		Name: "iogurte vencido", Category: "ألبان", Price: 3, Cost: 2, Stock: 5, ExpiryDate: &yesterday,
	})
	require.NoError(t, err)
	fresh, err := repo.Create(ctx, product.Draft{
		Name: "iogurte fresco", Category: "ألبان", Price: 3, Cost: 2, Stock: 5, ExpiryDate: &tomorrow,
	})
	require.NoError(t, err)

	expired, err := repo.Expired(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(expired))
	for _, p := range expired {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, stale.ID)
	assert.NotContains(t, ids, fresh.ID)
}

func TestCustomerCRUD(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Customers()

	_, err := repo.Create(ctx, customer.Draft{Name: "", Phone: "0555"})
	assert.ErrorIs(t, err, customer.ErrEmptyName)
	_, err = repo.Create(ctx, customer.Draft{Name: "سعاد", Phone: " "})
	assert.ErrorIs(t, err, customer.ErrEmptyPhone)

	created, err := repo.Create(ctx, customer.Draft{Name: "سعاد", Phone: "0555123456", Debt: 40})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, customer.Draft{Name: "سعاد", Phone: "0555123456", Debt: 0})
	require.NoError(t, err)
	assert.Zero(t, updated.Debt)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestSupplierCRUD(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Suppliers()

	created, err := repo.Create(ctx, supplier.Draft{Name: "مطاحن الجنوب", Phone: "0213456789", Balance: 1200})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, found.Balance)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestStorePersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	log := logger.NewLogger()

	first, err := New(ctx, kv, log)
	require.NoError(t, err)

	created, err := first.Products().Create(ctx, product.Draft{
		Name: "عسل", Category: "أساسيات", Price: 120, Cost: 90, Stock: 12,
	})
	require.NoError(t, err)

	// um segundo Store sobre o mesmo KV enxerga a mutação persistida
	second, err := New(ctx, kv, log)
	require.NoError(t, err)

	found, err := second.Products().FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "عسل", found.Name)
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	created, err := st.Products().Create(ctx, product.Draft{
		Name: "temporário", Category: "diversos", Price: 1, Cost: 0.5, Stock: 1,
	})
	require.NoError(t, err)

	require.NoError(t, st.Reset(ctx))

	_, err = st.Products().FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	products, err := st.Products().List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestRecordSaleSnapshotsAndStock(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	p, err := st.Products().Create(ctx, product.Draft{
		Name: "فرماج", Category: "ألبان", Price: 20, Cost: 14, Stock: 10,
	})
	require.NoError(t, err)

	committed, clamped, err := st.RecordSale(ctx, []checkout.Line{
		{ProductID: p.ID, Quantity: 3},
	}, "C1672532400001", sale.PaymentCard)
	require.NoError(t, err)
	assert.Empty(t, clamped)
	assert.Equal(t, 60.0, committed.Total)
	assert.InDelta(t, 18.0, committed.Profit, 1e-9)
	assert.Equal(t, "C1672532400001", committed.CustomerID)
	require.Len(t, committed.Items, 1)
	assert.Equal(t, "فرماج", committed.Items[0].ProductName)
	assert.Equal(t, 20.0, committed.Items[0].Price)

	after, err := st.Products().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, after.Stock)

	sales, err := st.Sales().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, committed.ID, sales[0].ID)
}

func TestRecordSaleClampsStockAtZero(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	p, err := st.Products().Create(ctx, product.Draft{
		Name: "خبز", Category: "مخبوزات", Price: 1, Cost: 0.6, Stock: 2,
	})
	require.NoError(t, err)

	committed, clamped, err := st.RecordSale(ctx, []checkout.Line{
		{ProductID: p.ID, Quantity: 5},
	}, "", sale.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, []string{"خبز"}, clamped)
	// a venda registra a quantidade pedida; o truncamento é só do estoque
	assert.Equal(t, 5.0, committed.Total)

	after, err := st.Products().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, after.Stock)
}

func TestRecordSaleSkipsMissingAndEmpty(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	_, _, err := st.RecordSale(ctx, []checkout.Line{
		{ProductID: "fantasma", Quantity: 2},
		{ProductID: "P1672532400003", Quantity: 0},
	}, "", sale.PaymentCash)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)

	_, _, err = st.RecordSale(ctx, []checkout.Line{
		{ProductID: "P1672532400003", Quantity: 1},
	}, "", sale.PaymentMethod("fiado"))
	assert.ErrorIs(t, err, sale.ErrInvalidPaymentMethod)
}

func TestDeleteProductPreservesSaleHistory(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	p, err := st.Products().Create(ctx, product.Draft{
		Name: "ياغورت", Category: "ألبان", Price: 3, Cost: 2, Stock: 8,
	})
	require.NoError(t, err)

	committed, _, err := st.RecordSale(ctx, []checkout.Line{
		{ProductID: p.ID, Quantity: 2},
	}, "", sale.PaymentCash)
	require.NoError(t, err)

	require.NoError(t, st.Products().Delete(ctx, p.ID))

	// o histórico guarda o snapshot de nome e preço e segue legível
	found, err := st.Sales().FindByID(ctx, committed.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "ياغورت", found.Items[0].ProductName)
	assert.Equal(t, 3.0, found.Items[0].Price)
}
