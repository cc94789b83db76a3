package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	boardusecases "soapbox/internal/application/board/usecases"
	"soapbox/internal/application/ticket/usecases"
	"soapbox/internal/interfaces/http/middleware"
	"soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type TicketHandler struct {
	resolveBoardUC  *boardusecases.ResolveBoardUseCase
	resolveTicketUC *usecases.ResolveTicketUseCase
	createTicketUC  *usecases.CreateTicketUseCase
	getTicketUC     *usecases.GetTicketUseCase
	listTicketsUC   *usecases.ListTicketsUseCase
	updateTicketUC  *usecases.UpdateTicketUseCase
	changeStatusUC  *usecases.ChangeStatusUseCase
	lockTicketUC    *usecases.LockTicketUseCase
	archiveTicketUC *usecases.ArchiveTicketUseCase
	logger          logger.Interface
}

func NewTicketHandler(
	resolveBoardUC *boardusecases.ResolveBoardUseCase,
	resolveTicketUC *usecases.ResolveTicketUseCase,
	createTicketUC *usecases.CreateTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	lockTicketUC *usecases.LockTicketUseCase,
	archiveTicketUC *usecases.ArchiveTicketUseCase,
) *TicketHandler {
	return &TicketHandler{
		resolveBoardUC:  resolveBoardUC,
		resolveTicketUC: resolveTicketUC,
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		updateTicketUC:  updateTicketUC,
		changeStatusUC:  changeStatusUC,
		lockTicketUC:    lockTicketUC,
		archiveTicketUC: archiveTicketUC,
		logger:          logger.NewLogger(),
	}
}

// ListTickets handles GET /boards/:board/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	b, err := h.resolveBoardUC.Execute(c.Request.Context(), boardusecases.ResolveBoardCommand{
		Param: c.Param("board"),
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := parseListTicketsRequest(c)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToCommand(b.ID(), middleware.ActorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// CreateTicket handles POST /boards/:board/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	b, err := h.resolveBoardUC.Execute(c.Request.Context(), boardusecases.ResolveBoardCommand{
		Param: c.Param("board"),
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(b.ID(), middleware.ActorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /boards/:board/tickets/:ticket. Both parameters
// accept a slug or a numeric ID.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	b, err := h.resolveBoardUC.Execute(c.Request.Context(), boardusecases.ResolveBoardCommand{
		Param: c.Param("board"),
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.resolveTicketUC.Execute(c.Request.Context(), usecases.ResolveTicketCommand{
		BoardID: b.ID(),
		Param:   c.Param("ticket"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: t.ID(),
		Actor:    middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Actor:       middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:   ticketID,
		StatusSlug: req.StatusSlug,
		Actor:      middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// LockTicket handles PATCH /tickets/:id/lock
func (h *TicketHandler) LockTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LockTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.lockTicketUC.Execute(c.Request.Context(), usecases.LockTicketCommand{
		TicketID: ticketID,
		Locked:   req.Locked,
		Actor:    middleware.ActorFromContext(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket lock state updated", nil)
}

// ArchiveTicket handles PATCH /tickets/:id/archive
func (h *TicketHandler) ArchiveTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ArchiveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.archiveTicketUC.Execute(c.Request.Context(), usecases.ArchiveTicketCommand{
		TicketID: ticketID,
		Archived: req.Archived,
		Actor:    middleware.ActorFromContext(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket archive state updated", nil)
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
