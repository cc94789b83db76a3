package board

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/board/usecases"
	"soapbox/internal/interfaces/http/middleware"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type BoardHandler struct {
	listBoardsUC   *usecases.ListBoardsUseCase
	resolveBoardUC *usecases.ResolveBoardUseCase
	resolveViewUC  *usecases.ResolveViewTypeUseCase
	createBoardUC  *usecases.CreateBoardUseCase
	updateBoardUC  *usecases.UpdateBoardUseCase
	deleteBoardUC  *usecases.DeleteBoardUseCase
	logger         logger.Interface
}

func NewBoardHandler(
	listBoardsUC *usecases.ListBoardsUseCase,
	resolveBoardUC *usecases.ResolveBoardUseCase,
	resolveViewUC *usecases.ResolveViewTypeUseCase,
	createBoardUC *usecases.CreateBoardUseCase,
	updateBoardUC *usecases.UpdateBoardUseCase,
	deleteBoardUC *usecases.DeleteBoardUseCase,
) *BoardHandler {
	return &BoardHandler{
		listBoardsUC:   listBoardsUC,
		resolveBoardUC: resolveBoardUC,
		resolveViewUC:  resolveViewUC,
		createBoardUC:  createBoardUC,
		updateBoardUC:  updateBoardUC,
		deleteBoardUC:  deleteBoardUC,
		logger:         logger.NewLogger(),
	}
}

// ListBoards handles GET /boards
func (h *BoardHandler) ListBoards(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listBoardsUC.Execute(c.Request.Context(), usecases.ListBoardsCommand{
		Actor:    middleware.ActorFromContext(c),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Boards, result.Total, result.Page, result.PageSize)
}

// GetBoard handles GET /boards/:board. The parameter is a slug or a numeric
// ID; the response carries the view type resolved for this visitor.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	b, err := h.resolveBoardUC.Execute(c.Request.Context(), usecases.ResolveBoardCommand{
		Param: c.Param("board"),
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var explicitView *string
	if v := c.Query("view"); v != "" {
		explicitView = &v
	}

	view, err := h.resolveViewUC.Execute(c.Request.Context(), usecases.ResolveViewTypeCommand{
		BoardID:       b.ID(),
		SessionKey:    middleware.SessionKeyFromContext(c),
		ExplicitParam: explicitView,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", BoardResponse{
		BoardID:     b.ID(),
		Name:        b.Name(),
		Slug:        b.Slug(),
		Description: b.Description(),
		AdminOnly:   b.AdminOnly(),
		ItemLabel:   b.ItemLabel(),
		StatusSetID: b.StatusSetID(),
		Metadata:    b.Metadata(),
		ViewType:    string(view.ViewType),
		ShowToggle:  view.ShowToggle,
	})
}

// CreateBoard handles POST /boards
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create board", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createBoardUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Board created successfully")
}

// UpdateBoard handles PATCH /boards/:board. Updates address the board by
// numeric ID only.
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, err := parseBoardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update board", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateBoardUC.Execute(c.Request.Context(), req.ToCommand(boardID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Board updated successfully", result)
}

// DeleteBoard handles DELETE /boards/:board. Deletes address the board by
// numeric ID only.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, err := parseBoardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteBoardUC.Execute(c.Request.Context(), usecases.DeleteBoardCommand{
		BoardID: boardID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseBoardID(c *gin.Context) (uint, error) {
	idStr := c.Param("board")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid board ID")
	}
	return uint(id), nil
}
