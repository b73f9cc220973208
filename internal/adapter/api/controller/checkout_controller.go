package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	customerdomain "github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// CheckoutController gerencia a sessão de checkout do ponto de venda
type CheckoutController struct {
	cart         *checkout.Cart
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCheckoutController cria uma nova instância de CheckoutController
func NewCheckoutController(cart *checkout.Cart, customerRepo customerdomain.Repository, logger logger.Logger) *CheckoutController {
	return &CheckoutController{
		cart:         cart,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (c *CheckoutController) cartResponse(ctx *gin.Context) (dto.CartResponse, error) {
	items, err := c.cart.Items(ctx)
	if err != nil {
		return dto.CartResponse{}, err
	}
	total, err := c.cart.Total(ctx)
	if err != nil {
		return dto.CartResponse{}, err
	}
	return dto.CartResponse{
		State: c.cart.State(),
		Items: items,
		Total: total,
	}, nil
}

// Show retorna o estado atual do carrinho
// @Summary Ver carrinho
// @Description Retorna as linhas do carrinho com os dados vivos do catálogo e o total
// @Tags checkout
// @Accept json
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /checkout [get]
func (c *CheckoutController) Show(ctx *gin.Context) {
	resp, err := c.cartResponse(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddItem adiciona uma unidade de um produto ao carrinho
// @Summary Adicionar item
// @Description Adiciona uma unidade do produto ao carrinho, respeitando o estoque vivo
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body dto.AddItemRequest true "Produto a adicionar"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /checkout/items [post]
func (c *CheckoutController) AddItem(ctx *gin.Context) {
	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	if err := c.cart.AddItem(ctx, req.ProductID); err != nil {
		respondError(ctx, err)
		return
	}

	resp, err := c.cartResponse(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetQuantity define a quantidade de uma linha do carrinho
// @Summary Alterar quantidade
// @Description Define a quantidade de uma linha; zero remove, acima do estoque trunca
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param request body dto.SetQuantityRequest true "Quantidade desejada"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /checkout/items/{id} [put]
func (c *CheckoutController) SetQuantity(ctx *gin.Context) {
	var req dto.SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	if err := c.cart.SetQuantity(ctx, ctx.Param("id"), req.Quantity); err != nil {
		respondError(ctx, err)
		return
	}

	resp, err := c.cartResponse(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveItem remove uma linha do carrinho
// @Summary Remover item
// @Description Remove a linha do produto do carrinho
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /checkout/items/{id} [delete]
func (c *CheckoutController) RemoveItem(ctx *gin.Context) {
	if err := c.cart.RemoveItem(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	resp, err := c.cartResponse(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Commit conclui a venda do carrinho atual
// @Summary Concluir venda
// @Description Conclui a venda: cria o registro no histórico, abate o estoque e esvazia o carrinho
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body dto.CommitRequest true "Cliente e forma de pagamento"
// @Success 201 {object} dto.CommitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /checkout/commit [post]
func (c *CheckoutController) Commit(ctx *gin.Context) {
	var req dto.CommitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	committed, clamped, err := c.cart.Commit(ctx, req.CustomerID, req.PaymentMethod)
	if err != nil {
		respondError(ctx, err)
		return
	}

	language := lang(ctx)
	resp := dto.CommitResponse{
		Sale: dto.ToSaleResponse(committed, c.customerName(ctx, committed.CustomerID)),
	}
	for _, name := range clamped {
		resp.Warnings = append(resp.Warnings, i18n.T(language, "stock_clamped")+": "+name)
	}

	c.logger.Info("venda concluída", "sale_id", committed.ID, "total", committed.Total)
	ctx.JSON(http.StatusCreated, resp)
}

// customerName resolve o nome do cliente para o recibo
func (c *CheckoutController) customerName(ctx *gin.Context, customerID string) string {
	if customerID != "" {
		if found, err := c.customerRepo.FindByID(ctx, customerID); err == nil {
			return found.Name
		}
	}
	return i18n.T(lang(ctx), "no_customer")
}

// Cancel descarta o carrinho e inicia uma nova venda
// @Summary Cancelar / nova venda
// @Description Descarta o carrinho sem criar venda e volta ao estado inicial
// @Tags checkout
// @Accept json
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /checkout/cancel [post]
func (c *CheckoutController) Cancel(ctx *gin.Context) {
	c.cart.Cancel()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(i18n.T(lang(ctx), "cart_cleared"), nil))
}
