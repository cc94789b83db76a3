package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type ArchiveTicketCommand struct {
	TicketID uint
	Archived bool
	Actor    identity.Actor
}

type ArchiveTicketUseCase struct {
	ticketRepo  ticket.Repository
	permissions permission.Service
	logger      logger.Interface
}

func NewArchiveTicketUseCase(
	ticketRepo ticket.Repository,
	permissions permission.Service,
	logger logger.Interface,
) *ArchiveTicketUseCase {
	return &ArchiveTicketUseCase{
		ticketRepo:  ticketRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// Execute soft-removes or restores a ticket. Archiving is the delete
// operation for tickets; rows are never hard-deleted by users.
func (uc *ArchiveTicketUseCase) Execute(ctx context.Context, cmd ArchiveTicketCommand) error {
	uc.logger.Infow("executing archive ticket use case", "ticket_id", cmd.TicketID, "archived", cmd.Archived)

	allowed, err := uc.permissions.CanEditTickets(ctx, cmd.Actor)
	if err != nil {
		uc.logger.Errorw("failed to check edit permission", "user_id", cmd.Actor.ID, "error", err)
		return fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return apperrors.NewForbiddenError("not allowed to archive tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if cmd.Archived {
		t.Archive()
	} else {
		t.Unarchive()
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket archive state changed", "ticket_id", t.ID(), "archived", t.Archived())
	return nil
}
