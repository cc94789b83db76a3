package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/domain/ticket"
	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID   uint
	StatusSlug *string
	Actor      identity.Actor
}

type ChangeStatusResult struct {
	TicketID   uint
	StatusSlug *string
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.Repository
	boardRepo    board.Repository
	workflowRepo workflow.Repository
	permissions  permission.Service
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	boardRepo board.Repository,
	workflowRepo workflow.Repository,
	permissions permission.Service,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		boardRepo:    boardRepo,
		workflowRepo: workflowRepo,
		permissions:  permissions,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	allowed, err := uc.permissions.CanEditTickets(ctx, cmd.Actor)
	if err != nil {
		uc.logger.Errorw("failed to check edit permission", "user_id", cmd.Actor.ID, "error", err)
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("not allowed to change ticket status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	b, err := uc.boardRepo.GetByID(ctx, t.BoardID())
	if err != nil {
		uc.logger.Errorw("failed to load board", "board_id", t.BoardID(), "error", err)
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	var set *workflow.StatusSet
	if b.HasStatusTracking() {
		set, err = uc.workflowRepo.GetSetByID(ctx, *b.StatusSetID())
		if err != nil {
			uc.logger.Errorw("failed to load board status set", "status_set_id", *b.StatusSetID(), "error", err)
			return nil, fmt.Errorf("failed to load board status set: %w", err)
		}
	}

	if !workflow.IsValidTicketStatus(set, cmd.StatusSlug) {
		requested := "<nil>"
		if cmd.StatusSlug != nil {
			requested = *cmd.StatusSlug
		}
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("status %q is not valid for this board", requested),
		)
	}

	t.SetStatusSlug(cmd.StatusSlug)
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "status", cmd.StatusSlug)
	return &ChangeStatusResult{TicketID: t.ID(), StatusSlug: t.StatusSlug()}, nil
}
