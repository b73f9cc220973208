package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/controller"
)

// RegisterCheckoutRoutes registra as rotas da sessão de checkout
func RegisterCheckoutRoutes(r *gin.RouterGroup, checkoutController *controller.CheckoutController) {
	checkout := r.Group("/checkout")
	{
		checkout.GET("", checkoutController.Show)
		checkout.POST("/items", checkoutController.AddItem)
		checkout.PUT("/items/:id", checkoutController.SetQuantity)
		checkout.DELETE("/items/:id", checkoutController.RemoveItem)
		checkout.POST("/commit", checkoutController.Commit)
		checkout.POST("/cancel", checkoutController.Cancel)
	}
}
