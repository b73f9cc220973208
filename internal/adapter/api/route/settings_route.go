package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/controller"
)

// RegisterSettingsRoutes registra as rotas de configuração da loja
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController) {
	settings := r.Group("/settings")
	{
		settings.POST("/reset", settingsController.Reset)
	}
}
