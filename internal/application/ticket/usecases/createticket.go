package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/ticket"
	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type CreateTicketCommand struct {
	BoardID     uint
	Title       string
	Description string
	// StatusSlug is the explicitly requested status, nil for the default.
	StatusSlug *string
	Actor      identity.Actor
}

type CreateTicketResult struct {
	TicketID   uint
	Slug       string
	StatusSlug *string
	CreatedAt  time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	boardRepo    board.Repository
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	boardRepo board.Repository,
	workflowRepo workflow.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		boardRepo:    boardRepo,
		workflowRepo: workflowRepo,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "board_id", cmd.BoardID, "user_id", cmd.Actor.ID)

	b, err := uc.boardRepo.GetByID(ctx, cmd.BoardID)
	if err != nil {
		uc.logger.Warnw("board not found", "board_id", cmd.BoardID, "error", err)
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, b.ID(), cmd.Actor.ID, cmd.Actor.Type)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	statusSlug, err := uc.initialStatus(ctx, b, cmd.StatusSlug)
	if err != nil {
		return nil, err
	}
	t.SetStatusSlug(statusSlug)

	taken := func(ctx context.Context, candidate string) (bool, error) {
		return uc.ticketRepo.SlugInUse(ctx, b.ID(), candidate, 0)
	}
	assigned, err := slug.Unique(ctx, slug.Generate(cmd.Title), taken)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket slug", "title", cmd.Title, "error", err)
		return nil, fmt.Errorf("failed to generate ticket slug: %w", err)
	}
	if err := t.SetSlug(assigned); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save ticket", "error", err)
			return nil, fmt.Errorf("failed to save ticket: %w", err)
		}
		base, n := slug.ParseSuffix(assigned)
		assigned, err = slug.UniqueFrom(ctx, base, n+1, taken)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate ticket slug: %w", err)
		}
		if err := t.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Save(ctx, t); err != nil {
			uc.logger.Errorw("failed to save ticket after slug retry", "slug", assigned, "error", err)
			return nil, apperrors.NewConflictError("ticket slug conflict", err.Error())
		}
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "slug", t.Slug(), "board_id", b.ID())
	return &CreateTicketResult{
		TicketID:   t.ID(),
		Slug:       t.Slug(),
		StatusSlug: t.StatusSlug(),
		CreatedAt:  t.CreatedAt(),
	}, nil
}

// initialStatus applies the workflow engine's creation rules: boards without
// status tracking force a nil status regardless of input; boards with
// tracking validate an explicit status and otherwise assign the default.
func (uc *CreateTicketUseCase) initialStatus(ctx context.Context, b *board.Board, requested *string) (*string, error) {
	if !b.HasStatusTracking() {
		return nil, nil
	}

	set, err := uc.workflowRepo.GetSetByID(ctx, *b.StatusSetID())
	if err != nil {
		uc.logger.Errorw("failed to load board status set", "status_set_id", *b.StatusSetID(), "error", err)
		return nil, fmt.Errorf("failed to load board status set: %w", err)
	}

	if requested == nil {
		return workflow.DefaultStatusSlug(set), nil
	}
	if !workflow.IsValidTicketStatus(set, requested) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("status %q is not valid for this board", *requested),
		)
	}
	return requested, nil
}
