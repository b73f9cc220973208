package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/report"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// ReportController expõe os relatórios derivados do histórico de vendas
type ReportController struct {
	aggregator *report.Aggregator
	logger     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(aggregator *report.Aggregator, logger logger.Logger) *ReportController {
	return &ReportController{
		aggregator: aggregator,
		logger:     logger,
	}
}

// SalesByDay retorna o total vendido por dia da semana
// @Summary Vendas por dia da semana
// @Description Soma o total das vendas em sete baldes fixos, de domingo a sábado
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {array} report.DayTotal
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales-by-day [get]
func (c *ReportController) SalesByDay(ctx *gin.Context) {
	totals, err := c.aggregator.SalesByDay(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, totals)
}

// TopProducts retorna os cinco produtos mais vendidos
// @Summary Produtos mais vendidos
// @Description Agrupa as linhas de venda por produto e retorna os cinco mais vendidos
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {array} report.TopProduct
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/top-products [get]
func (c *ReportController) TopProducts(ctx *gin.Context) {
	ranking, err := c.aggregator.TopProducts(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ranking)
}

// SalesByCategory retorna a receita por categoria
// @Summary Vendas por categoria
// @Description Resolve cada linha de venda contra o catálogo vivo e soma a receita por categoria
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {array} report.CategoryTotal
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales-by-category [get]
func (c *ReportController) SalesByCategory(ctx *gin.Context) {
	totals, err := c.aggregator.SalesByCategory(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, totals)
}

// Summary retorna os indicadores do painel
// @Summary Painel da loja
// @Description Total vendido, lucro, produtos em estoque baixo, vencidos e vendas recentes
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} report.Summary
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	summary, err := c.aggregator.Summarize(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
