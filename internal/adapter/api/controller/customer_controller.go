package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	customerdomain "github.com/hugohenrick/pos-mercearia/internal/domain/customer"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no caderno
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	created, err := c.customerRepo.Create(ctx, req.ToDraft())
	if err != nil {
		c.logger.Error("erro ao criar cliente", "error", err)
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(created))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	found, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(found))
}

// List lista os clientes
// @Summary Listar clientes
// @Description Lista todos os clientes do caderno
// @Tags customers
// @Accept json
// @Produce json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customerRepo.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponseList(customers))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Substitui os dados de um cliente existente, exceto o ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	updated, err := c.customerRepo.Update(ctx, ctx.Param("id"), req.ToDraft())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(updated))
}

// Delete remove um cliente
// @Summary Remover cliente
// @Description Remove um cliente; vendas que o referenciam não são verificadas
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	if err := c.customerRepo.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(i18n.T(lang(ctx), "deleted"), nil))
}
