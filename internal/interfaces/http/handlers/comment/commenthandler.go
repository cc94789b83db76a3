package comment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/comment/usecases"
	"soapbox/internal/domain/ticket"
	"soapbox/internal/interfaces/http/middleware"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type CommentHandler struct {
	addCommentUC    *usecases.AddCommentUseCase
	deleteCommentUC *usecases.DeleteCommentUseCase
	getThreadUC     *usecases.GetThreadUseCase
	logger          logger.Interface
}

func NewCommentHandler(
	addCommentUC *usecases.AddCommentUseCase,
	deleteCommentUC *usecases.DeleteCommentUseCase,
	getThreadUC *usecases.GetThreadUseCase,
) *CommentHandler {
	return &CommentHandler{
		addCommentUC:    addCommentUC,
		deleteCommentUC: deleteCommentUC,
		getThreadUC:     getThreadUC,
		logger:          logger.NewLogger(),
	}
}

type AddCommentRequest struct {
	Content  string `json:"content" binding:"required,max=5000"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

// NavigationResponse tells the caller where to send the user next.
type NavigationResponse struct {
	Kind            string `json:"kind"`
	TicketID        uint   `json:"ticket_id"`
	ThreadRootID    uint   `json:"thread_root_id,omitempty"`
	AnchorCommentID uint   `json:"anchor_comment_id,omitempty"`
}

func toNavigationResponse(target ticket.NavigationTarget) NavigationResponse {
	return NavigationResponse{
		Kind:            string(target.Kind),
		TicketID:        target.TicketID,
		ThreadRootID:    target.ThreadRootID,
		AnchorCommentID: target.AnchorCommentID,
	}
}

type AddCommentResponse struct {
	CommentID  uint               `json:"comment_id"`
	Depth      int                `json:"depth"`
	Navigation NavigationResponse `json:"navigation"`
}

// AddComment handles POST /tickets/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	ticketID, err := parseUintParam(c, "id", "invalid ticket ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		ParentID: req.ParentID,
		Content:  req.Content,
		Actor:    middleware.ActorFromContext(c),
	})
	if err != nil {
		// Validation failures still carry a navigation target pointing back
		// to where the user came from.
		if result != nil && errors.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success":    false,
				"error":      gin.H{"type": "validation", "message": err.Error()},
				"navigation": toNavigationResponse(result.Navigation),
			})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AddCommentResponse{
		CommentID:  result.CommentID,
		Depth:      result.Depth,
		Navigation: toNavigationResponse(result.Navigation),
	}, "Comment added successfully")
}

// GetThread handles GET /tickets/:id/comments/:commentId/thread. The comment
// may be anywhere in the thread; the response is rooted at its thread root.
func (h *CommentHandler) GetThread(c *gin.Context) {
	ticketID, err := parseUintParam(c, "id", "invalid ticket ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentID, err := parseUintParam(c, "commentId", "invalid comment ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getThreadUC.Execute(c.Request.Context(), usecases.GetThreadCommand{
		TicketID:  ticketID,
		CommentID: commentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteComment handles DELETE /comments/:id. The from_thread_view query
// parameter records where the user was, which decides where they land next.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseUintParam(c, "id", "invalid comment ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fromThreadView, _ := strconv.ParseBool(c.Query("from_thread_view"))

	result, err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CommentID:      commentID,
		FromThreadView: fromThreadView,
		Actor:          middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", gin.H{
		"deleted_ids": result.DeletedIDs,
		"navigation":  toNavigationResponse(result.Navigation),
	})
}

func parseUintParam(c *gin.Context, name, message string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(message)
	}
	return uint(id), nil
}
