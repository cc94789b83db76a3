package engagement

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/engagement/usecases"
	"soapbox/internal/domain/engagement"
	"soapbox/internal/interfaces/http/middleware"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type EngagementHandler struct {
	toggleUpvoteUC *usecases.ToggleUpvoteUseCase
	subscribeUC    *usecases.SubscribeUseCase
	unsubscribeUC  *usecases.UnsubscribeUseCase
	logger         logger.Interface
}

func NewEngagementHandler(
	toggleUpvoteUC *usecases.ToggleUpvoteUseCase,
	subscribeUC *usecases.SubscribeUseCase,
	unsubscribeUC *usecases.UnsubscribeUseCase,
) *EngagementHandler {
	return &EngagementHandler{
		toggleUpvoteUC: toggleUpvoteUC,
		subscribeUC:    subscribeUC,
		unsubscribeUC:  unsubscribeUC,
		logger:         logger.NewLogger(),
	}
}

type UpvoteResponse struct {
	Upvoted bool  `json:"upvoted"`
	Count   int64 `json:"count"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SubscriptionResponse struct {
	Outcome string `json:"outcome"`
	Email   string `json:"email,omitempty"`
}

// ToggleTicketUpvote handles POST /tickets/:id/vote
func (h *EngagementHandler) ToggleTicketUpvote(c *gin.Context) {
	h.toggleUpvote(c, engagement.KindTicket, "invalid ticket ID")
}

// ToggleCommentUpvote handles POST /comments/:id/vote
func (h *EngagementHandler) ToggleCommentUpvote(c *gin.Context) {
	h.toggleUpvote(c, engagement.KindComment, "invalid comment ID")
}

func (h *EngagementHandler) toggleUpvote(c *gin.Context, kind engagement.UpvotableKind, invalidMsg string) {
	targetID, err := parseIDParam(c, invalidMsg)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleUpvoteUC.Execute(c.Request.Context(), usecases.ToggleUpvoteCommand{
		Kind:     kind,
		TargetID: targetID,
		Actor:    middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", UpvoteResponse{
		Upvoted: result.Upvoted,
		Count:   result.Count,
	})
}

// Subscribe handles POST /tickets/:id/subscriptions. Subscribing twice with
// the same email refreshes the existing subscription instead of failing.
func (h *EngagementHandler) Subscribe(c *gin.Context) {
	ticketID, err := parseIDParam(c, "invalid ticket ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for subscribe", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribeCommand{
		TicketID: ticketID,
		Email:    req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := SubscriptionResponse{Outcome: string(result.Outcome), Email: result.Email}
	if result.Outcome == usecases.OutcomeCreated {
		utils.CreatedResponse(c, resp, "Subscribed successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Subscription refreshed", resp)
}

// Unsubscribe handles DELETE /tickets/:id/subscriptions?email=
func (h *EngagementHandler) Unsubscribe(c *gin.Context) {
	ticketID, err := parseIDParam(c, "invalid ticket ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	email := c.Query("email")
	if email == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email is required"))
		return
	}

	result, err := h.unsubscribeUC.Execute(c.Request.Context(), usecases.UnsubscribeCommand{
		TicketID: ticketID,
		Email:    email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unsubscribed", SubscriptionResponse{
		Outcome: string(result.Outcome),
	})
}

func parseIDParam(c *gin.Context, message string) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(message)
	}
	return uint(id), nil
}
