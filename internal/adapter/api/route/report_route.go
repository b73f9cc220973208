package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/controller"
)

// RegisterReportRoutes registra as rotas de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportController.Summary)
		reports.GET("/sales-by-day", reportController.SalesByDay)
		reports.GET("/top-products", reportController.TopProducts)
		reports.GET("/sales-by-category", reportController.SalesByCategory)
	}
}
