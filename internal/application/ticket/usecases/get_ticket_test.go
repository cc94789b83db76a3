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

func storedComment(t *testing.T, id uint, parentID *uint, depth int, at time.Time) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, 1, 10, "User", parentID, "content", depth, at, at)
	require.NoError(t, err)
	return c
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	actor := identity.NewActor(10, "User", nil)
	pid := func(v uint) *uint { return &v }

	t.Run("returns thread roots with recursive reply counts", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, 1, nil), nil
			},
		}
		// A (root) <- B <- C, D (parent A); E is an independent root.
		commentRepo := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return []*ticket.Comment{
					storedComment(t, 1, nil, 0, fixedTime),
					storedComment(t, 2, pid(1), 1, fixedTime.Add(time.Minute)),
					storedComment(t, 3, pid(2), 2, fixedTime.Add(2*time.Minute)),
					storedComment(t, 4, pid(1), 1, fixedTime.Add(3*time.Minute)),
					storedComment(t, 5, nil, 0, fixedTime.Add(4*time.Minute)),
				}, nil
			},
		}
		uc := NewGetTicketUseCase(ticketRepo, &mockBoardRepository{}, &mockWorkflowRepository{}, commentRepo, &mockUpvoteRepository{}, &mockMarkdownRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, GetTicketCommand{TicketID: 1, Actor: actor})
		require.NoError(t, err)

		require.Len(t, result.Threads, 2)
		assert.Equal(t, uint(1), result.Threads[0].CommentID)
		assert.Equal(t, 3, result.Threads[0].ReplyCount)
		assert.Equal(t, uint(5), result.Threads[1].CommentID)
		assert.Equal(t, 0, result.Threads[1].ReplyCount)
	})

	t.Run("carries upvote counts and viewer state", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, 1, nil), nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return []*ticket.Comment{storedComment(t, 1, nil, 0, fixedTime)}, nil
			},
		}
		ref, err := engagement.TicketRef(1)
		require.NoError(t, err)
		upvoteRepo := &mockUpvoteRepository{
			CountFunc: func(ctx context.Context, r engagement.UpvotableRef) (int64, error) {
				return 5, nil
			},
			FindFunc: func(ctx context.Context, r engagement.UpvotableRef, userID uint) (*engagement.Upvote, error) {
				return engagement.ReconstructUpvote(9, ref, userID, "User", fixedTime), nil
			},
			CountManyFunc: func(ctx context.Context, kind engagement.UpvotableKind, ids []uint) (map[uint]int64, error) {
				return map[uint]int64{1: 2}, nil
			},
			ExistsManyFunc: func(ctx context.Context, kind engagement.UpvotableKind, ids []uint, userID uint) (map[uint]bool, error) {
				return map[uint]bool{1: true}, nil
			},
		}
		uc := NewGetTicketUseCase(ticketRepo, &mockBoardRepository{}, &mockWorkflowRepository{}, commentRepo, upvoteRepo, &mockMarkdownRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, GetTicketCommand{TicketID: 1, Actor: actor})
		require.NoError(t, err)

		assert.Equal(t, int64(5), result.Upvotes)
		assert.True(t, result.UpvotedBy)
		require.Len(t, result.Threads, 1)
		assert.Equal(t, int64(2), result.Threads[0].Upvotes)
		assert.True(t, result.Threads[0].UpvotedBy)
	})

	t.Run("depth corruption surfaces as integrity violation", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, 1, nil), nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return []*ticket.Comment{
					storedComment(t, 1, nil, 0, fixedTime),
					storedComment(t, 2, pid(1), 4, fixedTime.Add(time.Minute)),
				}, nil
			},
		}
		uc := NewGetTicketUseCase(ticketRepo, &mockBoardRepository{}, &mockWorkflowRepository{}, commentRepo, &mockUpvoteRepository{}, &mockMarkdownRenderer{}, &mockLogger{})

		_, err := uc.Execute(ctx, GetTicketCommand{TicketID: 1, Actor: actor})
		require.Error(t, err)
		assert.True(t, apperrors.IsIntegrityError(err))
	})

	t.Run("anonymous viewers skip upvote lookups", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, 1, 1, nil), nil
			},
		}
		upvoteRepo := &mockUpvoteRepository{
			FindFunc: func(ctx context.Context, r engagement.UpvotableRef, userID uint) (*engagement.Upvote, error) {
				t.Fatal("anonymous viewer must not trigger a find")
				return nil, nil
			},
		}
		uc := NewGetTicketUseCase(ticketRepo, &mockBoardRepository{}, &mockWorkflowRepository{}, &mockCommentRepository{}, upvoteRepo, &mockMarkdownRenderer{}, &mockLogger{})

		result, err := uc.Execute(ctx, GetTicketCommand{TicketID: 1, Actor: identity.Actor{}})
		require.NoError(t, err)
		assert.False(t, result.UpvotedBy)
	})
}
