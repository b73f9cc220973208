package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/route"
	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pos-mercearia/internal/report"
	"github.com/hugohenrick/pos-mercearia/internal/store"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// stubDescriber evita chamadas externas nos testes de handler
type stubDescriber struct{}

func (stubDescriber) ProductDescription(ctx context.Context, productName, lang string) string {
	return "وصف تجريبي: " + productName
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	st, err := store.New(context.Background(), kvstore.NewMemory(), log)
	require.NoError(t, err)

	cart := checkout.NewCart(st.Products(), st)
	aggregator := report.NewAggregator(st.Sales(), st.Products())

	router := gin.New()
	api := router.Group("/api/v1")
	route.RegisterProductRoutes(api, controller.NewProductController(st.Products(), stubDescriber{}, log))
	route.RegisterCustomerRoutes(api, controller.NewCustomerController(st.Customers(), log))
	route.RegisterSupplierRoutes(api, controller.NewSupplierController(st.Suppliers(), log))
	route.RegisterSaleRoutes(api, controller.NewSaleController(st.Sales(), st.Customers(), log))
	route.RegisterCheckoutRoutes(api, controller.NewCheckoutController(cart, st.Customers(), log))
	route.RegisterReportRoutes(api, controller.NewReportController(aggregator, log))
	route.RegisterSettingsRoutes(api, controller.NewSettingsController(st, log))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProductValidation(t *testing.T) {
	router := newTestRouter(t)

	// preço ausente é barrado pelo binding
	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name": "جبن", "category": "ألبان",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// custo negativo é barrado pelo domínio, com mensagem localizada
	w = doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name": "جبن", "category": "ألبان", "price": 10, "cost": -1,
	}, map[string]string{"Accept-Language": "fr-FR,fr;q=0.9"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T("fr", "invalid_data"), resp.Message)

	w = doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name": "جبن", "category": "ألبان", "price": 10, "expiry_date": "31/12/2026",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products/inexistente", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, i18n.T("ar", "product_not_found"), resp.Message)
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name": "عصير برتقال", "category": "مشروبات", "price": 12.5, "cost": 9,
		"stock": 30, "low_stock_threshold": 5, "expiry_date": "2027-01-31",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "2027-01-31", created.ExpiryDate)
	assert.False(t, created.LowStock)

	w = doJSON(t, router, http.MethodGet, "/api/v1/products/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/products/search?q=برتقال", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var results []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/products/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/products/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDescribeProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/products/describe", gin.H{
		"name": "زيت زيتون",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DescribeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "وصف تجريبي: زيت زيتون", resp.Description)

	w = doJSON(t, router, http.MethodPost, "/api/v1/products/describe", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name": "تمر", "category": "أساسيات", "price": 30, "cost": 22, "stock": 4,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// commit de carrinho vazio é rejeitado sem mutação
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/commit", gin.H{
		"payment_method": "cash",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/items", gin.H{
		"product_id": created.ID,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/checkout/items/"+created.ID, gin.H{
		"quantity": 10,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cartResp dto.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	require.Len(t, cartResp.Items, 1)
	assert.Equal(t, 4, cartResp.Items[0].Quantity)
	assert.Equal(t, 120.0, cartResp.Total)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/commit", gin.H{
		"payment_method": "cash",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var commit dto.CommitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &commit))
	assert.Equal(t, 120.0, commit.Sale.Total)
	assert.Equal(t, i18n.T("ar", "no_customer"), commit.Sale.CustomerName)
	assert.Empty(t, commit.Warnings)

	// segundo commit sem iniciar nova venda conflita
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/commit", gin.H{
		"payment_method": "cash",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/cancel", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// a venda está no histórico como a mais recente
	w = doJSON(t, router, http.MethodGet, "/api/v1/sales", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sales []dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sales))
	require.NotEmpty(t, sales)
	assert.Equal(t, commit.Sale.ID, sales[0].ID)

	// o estoque foi abatido
	w = doJSON(t, router, http.MethodGet, "/api/v1/products/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Zero(t, after.Stock)
}

func TestCommitInvalidPaymentMethod(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout/items", gin.H{
		"product_id": "P1672532400003",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/commit", gin.H{
		"payment_method": "cheque",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportsOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/reports/summary",
		"/api/v1/reports/sales-by-day",
		"/api/v1/reports/top-products",
		"/api/v1/reports/sales-by-category",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/reports/sales-by-day", nil, nil)
	var days []report.DayTotal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	assert.Len(t, days, 7)
}

func TestResetRequiresConfirmation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/settings/reset", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/settings/reset?confirm=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, i18n.T("ar", "data_reset"), resp.Message)
}
