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

type LockTicketCommand struct {
	TicketID uint
	Locked   bool
	Actor    identity.Actor
}

type LockTicketUseCase struct {
	ticketRepo  ticket.Repository
	permissions permission.Service
	logger      logger.Interface
}

func NewLockTicketUseCase(
	ticketRepo ticket.Repository,
	permissions permission.Service,
	logger logger.Interface,
) *LockTicketUseCase {
	return &LockTicketUseCase{
		ticketRepo:  ticketRepo,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *LockTicketUseCase) Execute(ctx context.Context, cmd LockTicketCommand) error {
	uc.logger.Infow("executing lock ticket use case", "ticket_id", cmd.TicketID, "locked", cmd.Locked)

	allowed, err := uc.permissions.CanEditTickets(ctx, cmd.Actor)
	if err != nil {
		uc.logger.Errorw("failed to check edit permission", "user_id", cmd.Actor.ID, "error", err)
		return fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return apperrors.NewForbiddenError("not allowed to lock tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if cmd.Locked {
		t.Lock()
	} else {
		t.Unlock()
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket lock state changed", "ticket_id", t.ID(), "locked", t.Locked())
	return nil
}
