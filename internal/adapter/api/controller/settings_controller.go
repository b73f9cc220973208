package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// Resetter apaga todo o estado da loja e recarrega os dados iniciais
type Resetter interface {
	Reset(ctx context.Context) error
}

// SettingsController gerencia as operações de configuração da loja
type SettingsController struct {
	resetter Resetter
	logger   logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(resetter Resetter, logger logger.Logger) *SettingsController {
	return &SettingsController{
		resetter: resetter,
		logger:   logger,
	}
}

// Reset apaga todos os dados e recarrega o conjunto inicial
// @Summary Reiniciar dados
// @Description Apaga as quatro coleções e recarrega os dados iniciais; exige confirm=true
// @Tags settings
// @Accept json
// @Produce json
// @Param confirm query bool true "Confirmação da operação destrutiva"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings/reset [post]
func (c *SettingsController) Reset(ctx *gin.Context) {
	if ctx.Query("confirm") != "true" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, i18n.T(lang(ctx), "confirm_required"), "confirm=true"))
		return
	}

	if err := c.resetter.Reset(ctx); err != nil {
		c.logger.Error("erro ao reiniciar dados da loja", "error", err)
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(i18n.T(lang(ctx), "data_reset"), nil))
}
