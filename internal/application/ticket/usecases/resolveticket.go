package usecases

import (
	"context"
	"fmt"
	"strconv"

	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type ResolveTicketCommand struct {
	BoardID uint
	Param   string
}

type ResolveTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewResolveTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute resolves a request parameter to a ticket within one board: slug
// match first, then a primary-key lookup for numeric parameters. A ticket
// found by ID but owned by another board stays not found.
func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*ticket.Ticket, error) {
	if cmd.Param == "" {
		return nil, apperrors.NewValidationError("ticket parameter is required")
	}

	t, err := uc.ticketRepo.GetBySlug(ctx, cmd.BoardID, cmd.Param)
	if err == nil {
		return t, nil
	}
	if !apperrors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to resolve ticket by slug", "param", cmd.Param, "error", err)
		return nil, fmt.Errorf("failed to resolve ticket: %w", err)
	}
	if !slug.IsNumeric(cmd.Param) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	id, convErr := strconv.ParseUint(cmd.Param, 10, 64)
	if convErr != nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	t, err = uc.ticketRepo.GetByID(ctx, uint(id))
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to resolve ticket by id", "param", cmd.Param, "error", err)
		return nil, fmt.Errorf("failed to resolve ticket: %w", err)
	}
	if t.BoardID() != cmd.BoardID {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	return t, nil
}
