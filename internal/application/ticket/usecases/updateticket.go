package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Actor       identity.Actor
}

type UpdateTicketResult struct {
	TicketID uint
	Slug     string
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.Repository
	permissions permission.Service
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	permissions permission.Service,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// Authors edit their own tickets; anyone else needs the edit capability.
	if t.UserID() != cmd.Actor.ID || t.UserType() != cmd.Actor.Type {
		allowed, err := uc.permissions.CanEditTickets(ctx, cmd.Actor)
		if err != nil {
			uc.logger.Errorw("failed to check edit permission", "user_id", cmd.Actor.ID, "error", err)
			return nil, fmt.Errorf("failed to check permissions: %w", err)
		}
		if !allowed {
			return nil, apperrors.NewForbiddenError("not allowed to edit this ticket")
		}
	}

	if cmd.Title != nil {
		if err := t.Retitle(*cmd.Title); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	taken := func(ctx context.Context, candidate string) (bool, error) {
		return uc.ticketRepo.SlugInUse(ctx, t.BoardID(), candidate, t.ID())
	}
	if t.NeedsSlug() {
		assigned, err := slug.Unique(ctx, slug.Generate(t.Title()), taken)
		if err != nil {
			uc.logger.Errorw("failed to regenerate ticket slug", "ticket_id", t.ID(), "error", err)
			return nil, fmt.Errorf("failed to regenerate ticket slug: %w", err)
		}
		if err := t.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
			return nil, fmt.Errorf("failed to update ticket: %w", err)
		}
		base, n := slug.ParseSuffix(t.Slug())
		assigned, err := slug.UniqueFrom(ctx, base, n+1, taken)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate ticket slug: %w", err)
		}
		if err := t.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to update ticket after slug retry", "slug", assigned, "error", err)
			return nil, apperrors.NewConflictError("ticket slug conflict", err.Error())
		}
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "slug", t.Slug())
	return &UpdateTicketResult{TicketID: t.ID(), Slug: t.Slug()}, nil
}
