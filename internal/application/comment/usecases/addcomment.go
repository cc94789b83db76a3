package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/goroutine"
	"soapbox/internal/shared/logger"
)

const excerptLength = 120

type AddCommentCommand struct {
	TicketID uint
	ParentID *uint
	Content  string
	Actor    identity.Actor
}

/// AddCommentResult always carries a navigation target: on success it points
// at the created comment, on a validation failure it points back to where the
// user came from.
type AddCommentResult struct {
	CommentID  uint
	Depth      int
	Navigation ticket.NavigationTarget
	CreatedAt  time.Time
}

type AddCommentUseCase struct {
	ticketRepo       ticket.Repository
	commentRepo      ticket.CommentRepository
	subscriptionRepo engagement.SubscriptionRepository
	notifier         Notifier
	permissions      permission.Service
	logger           logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	subscriptionRepo engagement.SubscriptionRepository,
	notifier Notifier,
	permissions permission.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:       ticketRepo,
		commentRepo:      commentRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
		permissions:      permissions,
		logger:           logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	allowed, err := uc.permissions.CanComment(ctx, cmd.Actor)
	if err != nil {
		uc.logger.Errorw("failed to check comment permission", "user_id", cmd.Actor.ID, "error", err)
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("not allowed to comment")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if !t.AcceptsComments() {
		return &AddCommentResult{
			Navigation: ticket.TargetAfterCreateFailure(t.ID(), nil),
		}, apperrors.NewValidationError("ticket does not accept comments")
	}

	var parent *ticket.Comment
	var parentRoot *ticket.Comment
	if cmd.ParentID != nil {
		parent, err = uc.commentRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return &AddCommentResult{
					Navigation: ticket.TargetAfterCreateFailure(t.ID(), nil),
				}, apperrors.NewValidationError("reply target does not exist")
			}
			uc.logger.Errorw("failed to load parent comment", "parent_id", *cmd.ParentID, "error", err)
			return nil, fmt.Errorf("failed to load parent comment: %w", err)
		}

		all, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
		if err != nil {
			uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
			return nil, fmt.Errorf("failed to load comments: %w", err)
		}
		parentRoot, err = ticket.ThreadRoot(parent, ticket.CommentsByID(all))
		if err != nil {
			uc.logger.Errorw("comment thread integrity violation", "parent_id", parent.ID(), "error", err)
			return nil, err
		}
	}

	c, err := ticket.NewComment(t.ID(), cmd.Actor.ID, cmd.Actor.Type, cmd.Content, parent)
	if err != nil {
		return &AddCommentResult{
			Navigation: ticket.TargetAfterCreateFailure(t.ID(), parentRoot),
		}, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.notifySubscribers(ctx, t, c, cmd.Actor)

	uc.logger.Infow("comment added", "comment_id", c.ID(), "ticket_id", t.ID(), "depth", c.Depth())
	return &AddCommentResult{
		CommentID:  c.ID(),
		Depth:      c.Depth(),
		Navigation: ticket.TargetAfterCreate(c, parentRoot),
		CreatedAt:  c.CreatedAt(),
	}, nil
}

// notifySubscribers dispatches email notification off the request path. The
// comment is already durable; delivery failure only gets logged.
func (uc *AddCommentUseCase) notifySubscribers(ctx context.Context, t *ticket.Ticket, c *ticket.Comment, actor identity.Actor) {
	subs, err := uc.subscriptionRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load subscriptions", "ticket_id", t.ID(), "error", err)
		return
	}

	recipients := make([]string, 0, len(subs))
	for _, sub := range subs {
		if actor.Email != "" && strings.EqualFold(sub.Email(), actor.Email) {
			continue
		}
		recipients = append(recipients, sub.Email())
	}
	if len(recipients) == 0 {
		return
	}

	notification := NewCommentNotification{
		Recipients:  recipients,
		TicketTitle: t.Title(),
		TicketSlug:  t.Slug(),
		BoardID:     t.BoardID(),
		CommentID:   c.ID(),
		Excerpt:     excerpt(c.Content()),
	}
	log := uc.logger
	notifier := uc.notifier
	goroutine.SafeGo(log, "notify-new-comment", func() {
		if err := notifier.NotifyNewComment(context.WithoutCancel(ctx), notification); err != nil {
			log.Errorw("failed to send comment notification", "comment_id", notification.CommentID, "error", err)
		}
	})
}

func excerpt(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= excerptLength {
		return string(runes)
	}
	return string(runes[:excerptLength]) + "…"
}
