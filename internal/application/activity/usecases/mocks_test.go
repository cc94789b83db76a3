package usecases

import (
	"context"

	"soapbox/internal/domain/activity"
	"soapbox/internal/shared/logger"
)

type mockActivityReader struct {
	RecentTicketsFunc  func(ctx context.Context, boardID uint, limit int) ([]activity.TicketRecord, error)
	RecentCommentsFunc func(ctx context.Context, boardID uint, limit int) ([]activity.CommentRecord, error)
	RecentUpvotesFunc  func(ctx context.Context, boardID uint, limit int) ([]activity.UpvoteRecord, error)
}

func (m *mockActivityReader) RecentTickets(ctx context.Context, boardID uint, limit int) ([]activity.TicketRecord, error) {
	if m.RecentTicketsFunc != nil {
		return m.RecentTicketsFunc(ctx, boardID, limit)
	}
	return nil, nil
}

func (m *mockActivityReader) RecentComments(ctx context.Context, boardID uint, limit int) ([]activity.CommentRecord, error) {
	if m.RecentCommentsFunc != nil {
		return m.RecentCommentsFunc(ctx, boardID, limit)
	}
	return nil, nil
}

func (m *mockActivityReader) RecentUpvotes(ctx context.Context, boardID uint, limit int) ([]activity.UpvoteRecord, error) {
	if m.RecentUpvotesFunc != nil {
		return m.RecentUpvotesFunc(ctx, boardID, limit)
	}
	return nil, nil
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
