package activity

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/activity/usecases"
	boardusecases "soapbox/internal/application/board/usecases"
	"soapbox/internal/domain/activity"
	"soapbox/internal/interfaces/http/middleware"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type ActivityHandler struct {
	globalActivityUC *usecases.GlobalActivityUseCase
	boardActivityUC  *usecases.BoardActivityUseCase
	resolveBoardUC   *boardusecases.ResolveBoardUseCase
	logger           logger.Interface
}

func NewActivityHandler(
	globalActivityUC *usecases.GlobalActivityUseCase,
	boardActivityUC *usecases.BoardActivityUseCase,
	resolveBoardUC *boardusecases.ResolveBoardUseCase,
) *ActivityHandler {
	return &ActivityHandler{
		globalActivityUC: globalActivityUC,
		boardActivityUC:  boardActivityUC,
		resolveBoardUC:   resolveBoardUC,
		logger:           logger.NewLogger(),
	}
}

type EventResponse struct {
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`

	BoardID   uint   `json:"board_id,omitempty"`
	BoardName string `json:"board_name,omitempty"`
	BoardSlug string `json:"board_slug,omitempty"`

	TicketID    uint   `json:"ticket_id"`
	TicketTitle string `json:"ticket_title"`
	TicketSlug  string `json:"ticket_slug"`

	CommentID      uint   `json:"comment_id,omitempty"`
	CommentExcerpt string `json:"comment_excerpt,omitempty"`

	ActorID   uint   `json:"actor_id,omitempty"`
	ActorType string `json:"actor_type,omitempty"`
}

func toEventResponses(events []activity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			Kind:           string(e.Kind),
			OccurredAt:     e.OccurredAt,
			BoardID:        e.BoardID,
			BoardName:      e.BoardName,
			BoardSlug:      e.BoardSlug,
			TicketID:       e.TicketID,
			TicketTitle:    e.TicketTitle,
			TicketSlug:     e.TicketSlug,
			CommentID:      e.CommentID,
			CommentExcerpt: e.CommentExcerpt,
			ActorID:        e.ActorID,
			ActorType:      e.ActorType,
		})
	}
	return out
}

// GlobalActivity handles GET /activity
func (h *ActivityHandler) GlobalActivity(c *gin.Context) {
	result, err := h.globalActivityUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEventResponses(result.Events))
}

// BoardActivity handles GET /boards/:board/activity. Resolving the board
// first enforces admin-only visibility for the requesting actor.
func (h *ActivityHandler) BoardActivity(c *gin.Context) {
	b, err := h.resolveBoardUC.Execute(c.Request.Context(), boardusecases.ResolveBoardCommand{
		Param: c.Param("board"),
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.boardActivityUC.Execute(c.Request.Context(), usecases.BoardActivityCommand{
		BoardID: b.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEventResponses(result.Events))
}
