package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	supplierdomain "github.com/hugohenrick/pos-mercearia/internal/domain/supplier"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor no caderno
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	created, err := c.supplierRepo.Create(ctx, req.ToDraft())
	if err != nil {
		c.logger.Error("erro ao criar fornecedor", "error", err)
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(created))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Retorna os dados de um fornecedor pelo ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	found, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(found))
}

// List lista os fornecedores
// @Summary Listar fornecedores
// @Description Lista todos os fornecedores do caderno
// @Tags suppliers
// @Accept json
// @Produce json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	suppliers, err := c.supplierRepo.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponseList(suppliers))
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Description Substitui os dados de um fornecedor existente, exceto o ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	updated, err := c.supplierRepo.Update(ctx, ctx.Param("id"), req.ToDraft())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(updated))
}

// Delete remove um fornecedor
// @Summary Remover fornecedor
// @Description Remove um fornecedor do caderno
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	if err := c.supplierRepo.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(i18n.T(lang(ctx), "deleted"), nil))
}
