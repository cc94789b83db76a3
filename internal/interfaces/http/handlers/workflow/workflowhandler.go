package workflow

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/workflow/usecases"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type WorkflowHandler struct {
	listStatusSetsUC  *usecases.ListStatusSetsUseCase
	createStatusSetUC *usecases.CreateStatusSetUseCase
	deleteStatusSetUC *usecases.DeleteStatusSetUseCase
	addStatusUC       *usecases.AddStatusUseCase
	updateStatusUC    *usecases.UpdateStatusUseCase
	logger            logger.Interface
}

func NewWorkflowHandler(
	listStatusSetsUC *usecases.ListStatusSetsUseCase,
	createStatusSetUC *usecases.CreateStatusSetUseCase,
	deleteStatusSetUC *usecases.DeleteStatusSetUseCase,
	addStatusUC *usecases.AddStatusUseCase,
	updateStatusUC *usecases.UpdateStatusUseCase,
) *WorkflowHandler {
	return &WorkflowHandler{
		listStatusSetsUC:  listStatusSetsUC,
		createStatusSetUC: createStatusSetUC,
		deleteStatusSetUC: deleteStatusSetUC,
		addStatusUC:       addStatusUC,
		updateStatusUC:    updateStatusUC,
		logger:            logger.NewLogger(),
	}
}

// ListStatusSets handles GET /status-sets
func (h *WorkflowHandler) ListStatusSets(c *gin.Context) {
	summaries, err := h.listStatusSetsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sets := make([]StatusSetResponse, 0, len(summaries))
	for _, s := range summaries {
		sets = append(sets, toStatusSetResponse(s))
	}

	utils.SuccessResponse(c, http.StatusOK, "", sets)
}

// CreateStatusSet handles POST /status-sets
func (h *WorkflowHandler) CreateStatusSet(c *gin.Context) {
	var req CreateStatusSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create status set", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createStatusSetUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Status set created successfully")
}

// DeleteStatusSet handles DELETE /status-sets/:id
func (h *WorkflowHandler) DeleteStatusSet(c *gin.Context) {
	setID, err := parseUintParam(c, "id", "invalid status set ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteStatusSetUC.Execute(c.Request.Context(), usecases.DeleteStatusSetCommand{
		StatusSetID: setID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddStatus handles POST /status-sets/:id/statuses
func (h *WorkflowHandler) AddStatus(c *gin.Context) {
	setID, err := parseUintParam(c, "id", "invalid status set ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addStatusUC.Execute(c.Request.Context(), req.ToCommand(setID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Status added successfully")
}

// UpdateStatus handles PATCH /statuses/:id
func (h *WorkflowHandler) UpdateStatus(c *gin.Context) {
	statusID, err := parseUintParam(c, "id", "invalid status ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), req.ToCommand(statusID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

func parseUintParam(c *gin.Context, name, message string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(message)
	}
	return uint(id), nil
}
