package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do histórico de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
	}
}
