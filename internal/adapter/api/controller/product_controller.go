package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	productdomain "github.com/hugohenrick/pos-mercearia/internal/domain/product"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// Describer gera uma descrição curta de produto no idioma da interface
type Describer interface {
	ProductDescription(ctx context.Context, productName, lang string) string
}

// ProductController gerencia as requisições relacionadas ao catálogo
type ProductController struct {
	productRepo productdomain.Repository
	describer   Describer
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, describer Describer, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		describer:   describer,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		respondError(ctx, err)
		return
	}

	p, err := c.productRepo.Create(ctx, draft)
	if err != nil {
		c.logger.Error("erro ao criar produto", "error", err)
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos do catálogo
// @Summary Listar produtos
// @Description Lista todos os produtos do catálogo
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productRepo.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(products))
}

// Search busca produtos por nome ou código de barras
// @Summary Buscar produtos
// @Description Busca produtos por nome ou código de barras
// @Tags products
// @Accept json
// @Produce json
// @Param q query string true "Termo de busca"
// @Param limit query int false "Limite de resultados"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/search [get]
func (c *ProductController) Search(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	products, err := c.productRepo.Search(ctx, ctx.Query("q"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(products))
}

// Categories lista as categorias em uso
// @Summary Listar categorias
// @Description Lista as categorias distintas em uso, na ordem de primeira ocorrência
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/categories [get]
func (c *ProductController) Categories(ctx *gin.Context) {
	categories, err := c.productRepo.Categories(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// LowStock lista os produtos com estoque baixo
// @Summary Listar produtos com estoque baixo
// @Description Lista os produtos com estoque abaixo ou igual ao limite configurado
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	products, err := c.productRepo.LowStock(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(products))
}

// Expired lista os produtos vencidos
// @Summary Listar produtos vencidos
// @Description Lista os produtos com data de validade vencida
// @Tags products
// @Accept json
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/expired [get]
func (c *ProductController) Expired(ctx *gin.Context) {
	products, err := c.productRepo.Expired(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(products))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Substitui os dados de um produto existente, exceto o ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		respondError(ctx, err)
		return
	}

	p, err := c.productRepo.Update(ctx, ctx.Param("id"), draft)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto
// @Summary Remover produto
// @Description Remove um produto do catálogo; vendas históricas não são afetadas
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(i18n.T(lang(ctx), "deleted"), nil))
}

// Describe gera uma descrição curta para um nome de produto
// @Summary Gerar descrição de produto
// @Description Gera uma descrição curta via IA no idioma da interface; em caso de falha retorna uma mensagem fixa
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.DescribeRequest true "Nome do produto"
// @Success 200 {object} dto.DescribeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /products/describe [post]
func (c *ProductController) Describe(ctx *gin.Context) {
	var req dto.DescribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "invalid_data"), err.Error()))
		return
	}

	description := c.describer.ProductDescription(ctx.Request.Context(), req.Name, lang(ctx))
	ctx.JSON(http.StatusOK, dto.DescribeResponse{Description: description})
}
