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

type DeleteCommentCommand struct {
	CommentID uint
	// FromThreadView records whether the user was on the thread page; it
	// decides where they land afterwards.
	FromThreadView bool
	Actor          identity.Actor
}

type DeleteCommentResult struct {
	DeletedIDs []uint
	Navigation ticket.NavigationTarget
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	upvoteRepo  engagement.UpvoteRepository
	permissions permission.Service
	txMgr       TransactionRunner
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo ticket.CommentRepository,
	upvoteRepo engagement.UpvoteRepository,
	permissions permission.Service,
	txMgr TransactionRunner,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		upvoteRepo:  upvoteRepo,
		permissions: permissions,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute hard-deletes a comment together with its entire reply subtree and
// the upvotes attached to every removed comment.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)

	c, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Warnw("comment not found", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	// Authors delete their own comments; anyone else needs the edit capability.
	if c.UserID() != cmd.Actor.ID || c.UserType() != cmd.Actor.Type {
		allowed, err := uc.permissions.CanEditTickets(ctx, cmd.Actor)
		if err != nil {
			uc.logger.Errorw("failed to check edit permission", "user_id", cmd.Actor.ID, "error", err)
			return nil, fmt.Errorf("failed to check permissions: %w", err)
		}
		if !allowed {
			return nil, apperrors.NewForbiddenError("not allowed to delete this comment")
		}
	}

	all, err := uc.commentRepo.GetByTicketID(ctx, c.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", c.TicketID(), "error", err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	root, err := ticket.ThreadRoot(c, ticket.CommentsByID(all))
	if err != nil {
		uc.logger.Errorw("comment thread integrity violation", "comment_id", c.ID(), "error", err)
		return nil, err
	}
	ids := ticket.SubtreeIDs(c, all)

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteMany(txCtx, ids); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		for _, id := range ids {
			ref, err := engagement.CommentRef(id)
			if err != nil {
				return fmt.Errorf("failed to build upvote reference: %w", err)
			}
			if err := uc.upvoteRepo.DeleteByRef(txCtx, ref); err != nil {
				return fmt.Errorf("failed to delete comment upvotes: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete comment subtree", "comment_id", c.ID(), "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("comment deleted", "comment_id", c.ID(), "cascade", len(ids))
	return &DeleteCommentResult{
		DeletedIDs: ids,
		Navigation: ticket.TargetAfterDelete(c, root, cmd.FromThreadView),
	}, nil
}
