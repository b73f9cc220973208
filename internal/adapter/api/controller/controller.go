package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	"github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/internal/domain/sale"
	"github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
	"github.com/hugohenrick/pos-mercearia/internal/store"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
)

// lang extrai o idioma da interface do cabeçalho Accept-Language
func lang(ctx *gin.Context) string {
	return i18n.DetectLanguage(ctx.GetHeader("Accept-Language"))
}

// validationErrors são as falhas de validação rejeitadas antes de
// qualquer mutação
var validationErrors = []error{
	product.ErrEmptyName,
	product.ErrEmptyCategory,
	product.ErrInvalidPrice,
	product.ErrNegativeCost,
	product.ErrNegativeStock,
	customer.ErrEmptyName,
	customer.ErrEmptyPhone,
	supplier.ErrEmptyName,
	supplier.ErrEmptyPhone,
	dto.ErrInvalidExpiryDate,
}

// respondError traduz um erro de domínio para a resposta HTTP
// localizada: 400 para validação, 404 para referência inexistente,
// 409 para carrinho já concluído, 500 para o resto.
func respondError(ctx *gin.Context, err error) {
	language := lang(ctx)

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(language, "invalid_data"), err.Error()))
			return
		}
	}

	switch {
	case errors.Is(err, sale.ErrInvalidPaymentMethod):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(language, "invalid_payment_method"), err.Error()))
	case errors.Is(err, checkout.ErrEmptyCart):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(language, "empty_cart"), err.Error()))
	case errors.Is(err, checkout.ErrCartCommitted):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, i18n.T(language, "sale_already_completed"), err.Error()))
	case errors.Is(err, store.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, i18n.T(language, "product_not_found"), err.Error()))
	case errors.Is(err, store.ErrCustomerNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, i18n.T(language, "customer_not_found"), err.Error()))
	case errors.Is(err, store.ErrSupplierNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, i18n.T(language, "supplier_not_found"), err.Error()))
	case errors.Is(err, store.ErrSaleNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, i18n.T(language, "sale_not_found"), err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error(), ""))
	}
}
