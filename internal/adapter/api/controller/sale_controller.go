package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	customerdomain "github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	saledomain "github.com/hugohenrick/pos-mercearia/internal/domain/sale"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// SaleController gerencia as requisições de leitura do histórico de
// vendas. Não há escrita aqui: vendas nascem apenas no checkout e são
// imutáveis.
type SaleController struct {
	saleRepo     saledomain.Repository
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, customerRepo customerdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// customerName resolve o nome do cliente de uma venda; referência
// pendurada ou venda anônima caem para o rótulo "sem cliente"
func (c *SaleController) customerName(ctx *gin.Context, customerID string) string {
	if customerID != "" {
		if found, err := c.customerRepo.FindByID(ctx, customerID); err == nil {
			return found.Name
		}
	}
	return i18n.T(lang(ctx), "no_customer")
}

// List lista o histórico de vendas
// @Summary Listar vendas
// @Description Lista as vendas da mais recente para a mais antiga
// @Tags sales
// @Accept json
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.ToSaleResponse(s, c.customerName(ctx, s.CustomerID)))
	}
	ctx.JSON(http.StatusOK, out)
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna uma venda do histórico pelo ID
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s, c.customerName(ctx, s.CustomerID)))
}
