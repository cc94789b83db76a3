package usecases

import (
	"context"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/ticket"
	"soapbox/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc      func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc    func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc    func(ctx context.Context, ticketID uint) error
	GetByIDFunc   func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetBySlugFunc func(ctx context.Context, boardID uint, slugValue string) (*ticket.Ticket, error)
	ListFunc      func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	SlugInUseFunc func(ctx context.Context, boardID uint, slugValue string, excludeID uint) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetBySlug(ctx context.Context, boardID uint, slugValue string) (*ticket.Ticket, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, boardID, slugValue)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SlugInUse(ctx context.Context, boardID uint, slugValue string, excludeID uint) (bool, error) {
	if m.SlugInUseFunc != nil {
		return m.SlugInUseFunc(ctx, boardID, slugValue, excludeID)
	}
	return false, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, c *ticket.Comment) error
	UpdateFunc        func(ctx context.Context, c *ticket.Comment) error
	DeleteManyFunc    func(ctx context.Context, commentIDs []uint) error
	GetByIDFunc       func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) DeleteMany(ctx context.Context, commentIDs []uint) error {
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, commentIDs)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUpvoteRepository struct {
	SaveFunc        func(ctx context.Context, upvote *engagement.Upvote) error
	DeleteFunc      func(ctx context.Context, upvoteID uint) error
	FindFunc        func(ctx context.Context, ref engagement.UpvotableRef, userID uint) (*engagement.Upvote, error)
	CountFunc       func(ctx context.Context, ref engagement.UpvotableRef) (int64, error)
	CountManyFunc   func(ctx context.Context, kind engagement.UpvotableKind, ids []uint) (map[uint]int64, error)
	ExistsManyFunc  func(ctx context.Context, kind engagement.UpvotableKind, ids []uint, userID uint) (map[uint]bool, error)
	DeleteByRefFunc func(ctx context.Context, ref engagement.UpvotableRef) error
}

func (m *mockUpvoteRepository) Save(ctx context.Context, upvote *engagement.Upvote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, upvote)
	}
	return nil
}

func (m *mockUpvoteRepository) Delete(ctx context.Context, upvoteID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, upvoteID)
	}
	return nil
}

func (m *mockUpvoteRepository) Find(ctx context.Context, ref engagement.UpvotableRef, userID uint) (*engagement.Upvote, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, ref, userID)
	}
	return nil, nil
}

func (m *mockUpvoteRepository) Count(ctx context.Context, ref engagement.UpvotableRef) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, ref)
	}
	return 0, nil
}

func (m *mockUpvoteRepository) CountMany(ctx context.Context, kind engagement.UpvotableKind, ids []uint) (map[uint]int64, error) {
	if m.CountManyFunc != nil {
		return m.CountManyFunc(ctx, kind, ids)
	}
	return map[uint]int64{}, nil
}

func (m *mockUpvoteRepository) ExistsMany(ctx context.Context, kind engagement.UpvotableKind, ids []uint, userID uint) (map[uint]bool, error) {
	if m.ExistsManyFunc != nil {
		return m.ExistsManyFunc(ctx, kind, ids, userID)
	}
	return map[uint]bool{}, nil
}

func (m *mockUpvoteRepository) DeleteByRef(ctx context.Context, ref engagement.UpvotableRef) error {
	if m.DeleteByRefFunc != nil {
		return m.DeleteByRefFunc(ctx, ref)
	}
	return nil
}

type mockSubscriptionRepository struct {
	SaveFunc           func(ctx context.Context, sub *engagement.Subscription) error
	UpdateFunc         func(ctx context.Context, sub *engagement.Subscription) error
	DeleteFunc         func(ctx context.Context, subscriptionID uint) error
	FindFunc           func(ctx context.Context, ticketID uint, email string) (*engagement.Subscription, error)
	ListByTicketFunc   func(ctx context.Context, ticketID uint) ([]*engagement.Subscription, error)
	DeleteByTicketFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *engagement.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *engagement.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, subscriptionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, subscriptionID)
	}
	return nil
}

func (m *mockSubscriptionRepository) Find(ctx context.Context, ticketID uint, email string) (*engagement.Subscription, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, ticketID, email)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*engagement.Subscription, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) DeleteByTicket(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketFunc != nil {
		return m.DeleteByTicketFunc(ctx, ticketID)
	}
	return nil
}

type mockNotifier struct {
	NotifyNewCommentFunc func(ctx context.Context, n NewCommentNotification) error
}

func (m *mockNotifier) NotifyNewComment(ctx context.Context, n NewCommentNotification) error {
	if m.NotifyNewCommentFunc != nil {
		return m.NotifyNewCommentFunc(ctx, n)
	}
	return nil
}

type mockPermissionService struct {
	CanVoteFunc            func(ctx context.Context, actor identity.Actor) (bool, error)
	CanCommentFunc         func(ctx context.Context, actor identity.Actor) (bool, error)
	CanEditTicketsFunc     func(ctx context.Context, actor identity.Actor) (bool, error)
	CanManageBoardsFunc    func(ctx context.Context, actor identity.Actor) (bool, error)
	CanViewAdminBoardsFunc func(ctx context.Context, actor identity.Actor) (bool, error)
}

func (m *mockPermissionService) CanVote(ctx context.Context, actor identity.Actor) (bool, error) {
	if m.CanVoteFunc != nil {
		return m.CanVoteFunc(ctx, actor)
	}
	return true, nil
}

func (m *mockPermissionService) CanComment(ctx context.Context, actor identity.Actor) (bool, error) {
	if m.CanCommentFunc != nil {
		return m.CanCommentFunc(ctx, actor)
	}
	return true, nil
}

func (m *mockPermissionService) CanEditTickets(ctx context.Context, actor identity.Actor) (bool, error) {
	if m.CanEditTicketsFunc != nil {
		return m.CanEditTicketsFunc(ctx, actor)
	}
	return true, nil
}

func (m *mockPermissionService) CanManageBoards(ctx context.Context, actor identity.Actor) (bool, error) {
	if m.CanManageBoardsFunc != nil {
		return m.CanManageBoardsFunc(ctx, actor)
	}
	return true, nil
}

func (m *mockPermissionService) CanViewAdminBoards(ctx context.Context, actor identity.Actor) (bool, error) {
	if m.CanViewAdminBoardsFunc != nil {
		return m.CanViewAdminBoardsFunc(ctx, actor)
	}
	return true, nil
}

type mockMarkdownRenderer struct {
	RenderFunc func(source string) (string, error)
}

func (m *mockMarkdownRenderer) Render(source string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(source)
	}
	return source, nil
}

// mockTxRunner runs the function directly, no transaction semantics.
type mockTxRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
