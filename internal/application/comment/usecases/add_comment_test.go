package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func storedTicket(t *testing.T, id uint, locked bool) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, "Dark mode", "dark-mode", "please", nil, locked, false, 3, 10, "User", fixedTime, fixedTime)
	require.NoError(t, err)
	return tk
}

func storedComment(t *testing.T, id uint, parentID *uint, depth int, at time.Time) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, 1, 10, "User", parentID, "content", depth, at, at)
	require.NoError(t, err)
	return c
}

func pid(v uint) *uint { return &v }

func TestAddCommentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	actor := identity.NewActor(10, "User", nil)

	t.Run("top-level comment lands on the ticket view anchored at itself", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, false), nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				return c.SetID(7)
			},
		}
		uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockSubscriptionRepository{}, &mockNotifier{}, &mockPermissionService{}, &mockLogger{})

		result, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, Content: "first!", Actor: actor})
		require.NoError(t, err)

		assert.Equal(t, uint(7), result.CommentID)
		assert.Equal(t, 0, result.Depth)
		assert.Equal(t, ticket.NavTicketView, result.Navigation.Kind)
		assert.Equal(t, uint(7), result.Navigation.AnchorCommentID)
	})

	t.Run("reply lands on its thread view", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, false), nil
			},
		}
		// Parent 2 is itself a reply; the thread root is 1.
		comments := []*ticket.Comment{
			storedComment(t, 1, nil, 0, fixedTime),
			storedComment(t, 2, pid(1), 1, fixedTime.Add(time.Minute)),
		}
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return comments[1], nil
			},
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return comments, nil
			},
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				return c.SetID(9)
			},
		}
		uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockSubscriptionRepository{}, &mockNotifier{}, &mockPermissionService{}, &mockLogger{})

		result, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, ParentID: pid(2), Content: "same here", Actor: actor})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Depth)
		assert.Equal(t, ticket.NavThreadView, result.Navigation.Kind)
		assert.Equal(t, uint(1), result.Navigation.ThreadRootID)
	})

	t.Run("locked ticket rejects the comment but still navigates", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, true), nil
			},
		}
		uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockSubscriptionRepository{}, &mockNotifier{}, &mockPermissionService{}, &mockLogger{})

		result, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, Content: "late", Actor: actor})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		require.NotNil(t, result)
		assert.Equal(t, ticket.NavTicketView, result.Navigation.Kind)
		assert.Equal(t, uint(1), result.Navigation.TicketID)
	})

	t.Run("missing parent is a validation failure, not an internal error", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, false), nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByIDFunc: func(ctx context.Context, commentID uint) (*ticket.Comment, error) {
				return nil, apperrors.NewNotFoundError("comment not found")
			},
		}
		uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockSubscriptionRepository{}, &mockNotifier{}, &mockPermissionService{}, &mockLogger{})

		result, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, ParentID: pid(99), Content: "reply", Actor: actor})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		require.NotNil(t, result)
		assert.Equal(t, ticket.NavTicketView, result.Navigation.Kind)
	})

	t.Run("forbidden when the actor cannot comment", func(t *testing.T) {
		perms := &mockPermissionService{
			CanCommentFunc: func(ctx context.Context, actor identity.Actor) (bool, error) {
				return false, nil
			},
		}
		uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockSubscriptionRepository{}, &mockNotifier{}, perms, &mockLogger{})

		_, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, Content: "hi", Actor: actor})
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("notifies subscribers but never the commenter", func(t *testing.T) {
		self := identity.NewActor(10, "User", nil)
		self.Email = "author@example.com"

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, false), nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				return c.SetID(7)
			},
		}
		subs := &mockSubscriptionRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*engagement.Subscription, error) {
				return []*engagement.Subscription{
					engagement.ReconstructSubscription(1, 1, "author@example.com", fixedTime, fixedTime, fixedTime),
					engagement.ReconstructSubscription(2, 1, "watcher@example.com", fixedTime, fixedTime, fixedTime),
				}, nil
			},
		}
		sent := make(chan NewCommentNotification, 1)
		notifier := &mockNotifier{
			NotifyNewCommentFunc: func(ctx context.Context, n NewCommentNotification) error {
				sent <- n
				return nil
			},
		}
		uc := NewAddCommentUseCase(ticketRepo, commentRepo, subs, notifier, &mockPermissionService{}, &mockLogger{})

		_, err := uc.Execute(ctx, AddCommentCommand{TicketID: 1, Content: "news", Actor: self})
		require.NoError(t, err)

		select {
		case n := <-sent:
			assert.Equal(t, []string{"watcher@example.com"}, n.Recipients)
			assert.Equal(t, "Dark mode", n.TicketTitle)
			assert.Equal(t, uint(7), n.CommentID)
		case <-time.After(time.Second):
			t.Fatal("notification was never dispatched")
		}
	})
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("  short  "))

	long := ""
	for i := 0; i < 130; i++ {
		long += "ä"
	}
	got := excerpt(long)
	assert.Equal(t, excerptLength+1, len([]rune(got)))
}
