package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type ToggleUpvoteCommand struct {
	Kind     engagement.UpvotableKind
	TargetID uint
	Actor    identity.Actor
}

type ToggleUpvoteResult struct {
	// Upvoted is the user's state after the toggle.
	Upvoted bool
	Count   int64
}

type ToggleUpvoteUseCase struct {
	upvoteRepo  engagement.UpvoteRepository
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	permissions permission.Service
	logger      logger.Interface
}

func NewToggleUpvoteUseCase(
	upvoteRepo engagement.UpvoteRepository,
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	permissions permission.Service,
	logger logger.Interface,
) *ToggleUpvoteUseCase {
	return &ToggleUpvoteUseCase{
		upvoteRepo:  upvoteRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// Execute flips the actor's upvote on the target. A concurrent duplicate
// insert means someone toggled the same vote in between; the use case
// re-reads and reports the winning state instead of failing.
func (uc *ToggleUpvoteUseCase) Execute(ctx context.Context, cmd ToggleUpvoteCommand) (*ToggleUpvoteResult, error) {
	uc.logger.Infow("executing toggle upvote use case", "kind", cmd.Kind, "target_id", cmd.TargetID, "user_id", cmd.Actor.ID)

	if cmd.Actor.IsAnonymous() {
		return nil, apperrors.NewForbiddenError("voting requires an account")
	}
	allowed, err := uc.permissions.CanVote(ctx, cmd.Actor)
	if err != nil {
		uc.logger.Errorw("failed to check vote permission", "user_id", cmd.Actor.ID, "error", err)
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("not allowed to vote")
	}

	ref, err := engagement.NewUpvotableRef(cmd.Kind, cmd.TargetID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.validateTarget(ctx, ref); err != nil {
		return nil, err
	}

	existing, err := uc.upvoteRepo.Find(ctx, ref, cmd.Actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to look up upvote", "ref", ref.String(), "error", err)
		return nil, fmt.Errorf("failed to look up upvote: %w", err)
	}

	upvoted := false
	if existing != nil {
		if err := uc.upvoteRepo.Delete(ctx, existing.ID()); err != nil {
			uc.logger.Errorw("failed to remove upvote", "ref", ref.String(), "error", err)
			return nil, fmt.Errorf("failed to remove upvote: %w", err)
		}
	} else {
		upvote, err := engagement.NewUpvote(ref, cmd.Actor.ID, cmd.Actor.Type)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.upvoteRepo.Save(ctx, upvote); err != nil {
			if !apperrors.IsDuplicateError(err) {
				uc.logger.Errorw("failed to save upvote", "ref", ref.String(), "error", err)
				return nil, fmt.Errorf("failed to save upvote: %w", err)
			}
			// Lost the race against a concurrent toggle; the vote exists.
			uc.logger.Warnw("concurrent upvote detected", "ref", ref.String(), "user_id", cmd.Actor.ID)
		}
		upvoted = true
	}

	count, err := uc.upvoteRepo.Count(ctx, ref)
	if err != nil {
		uc.logger.Errorw("failed to count upvotes", "ref", ref.String(), "error", err)
		return nil, fmt.Errorf("failed to count upvotes: %w", err)
	}

	uc.logger.Infow("upvote toggled", "ref", ref.String(), "user_id", cmd.Actor.ID, "upvoted", upvoted)
	return &ToggleUpvoteResult{Upvoted: upvoted, Count: count}, nil
}

func (uc *ToggleUpvoteUseCase) validateTarget(ctx context.Context, ref engagement.UpvotableRef) error {
	switch ref.Kind() {
	case engagement.KindTicket:
		t, err := uc.ticketRepo.GetByID(ctx, ref.ID())
		if err != nil {
			return err
		}
		if !t.AcceptsVotes() {
			return apperrors.NewValidationError("ticket does not accept votes")
		}
	case engagement.KindComment:
		c, err := uc.commentRepo.GetByID(ctx, ref.ID())
		if err != nil {
			return err
		}
		t, err := uc.ticketRepo.GetByID(ctx, c.TicketID())
		if err != nil {
			return err
		}
		if !t.AcceptsVotes() {
			return apperrors.NewValidationError("ticket does not accept votes")
		}
	}
	return nil
}
