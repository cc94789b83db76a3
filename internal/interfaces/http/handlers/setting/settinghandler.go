package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/setting/usecases"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type SettingHandler struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getSettingsUC *usecases.GetSettingsUseCase,
	updateSettingsUC *usecases.UpdateSettingsUseCase,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger.NewLogger(),
	}
}

type UpdateSettingsRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// GetSettings handles GET /settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Values)
}

// UpdateSettings handles PUT /settings. Unknown keys are rejected before any
// value is written.
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		Values: req.Values,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", nil)
}
