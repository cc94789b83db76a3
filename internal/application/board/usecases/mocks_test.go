package usecases

import (
	"context"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/workflow"
	"soapbox/internal/shared/logger"
)

type mockBoardRepository struct {
	SaveFunc             func(ctx context.Context, b *board.Board) error
	UpdateFunc           func(ctx context.Context, b *board.Board) error
	DeleteFunc           func(ctx context.Context, boardID uint) error
	GetByIDFunc          func(ctx context.Context, boardID uint) (*board.Board, error)
	GetBySlugFunc        func(ctx context.Context, slugValue string) (*board.Board, error)
	ListFunc             func(ctx context.Context, filter board.Filter) ([]*board.Board, int64, error)
	SlugInUseFunc        func(ctx context.Context, slugValue string, excludeID uint) (bool, error)
	TicketCountFunc      func(ctx context.Context, boardID uint) (int64, error)
	CountByStatusSetFunc func(ctx context.Context, statusSetID uint) (int64, error)
}

func (m *mockBoardRepository) Save(ctx context.Context, b *board.Board) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBoardRepository) Update(ctx context.Context, b *board.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBoardRepository) Delete(ctx context.Context, boardID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID)
	}
	return nil
}

func (m *mockBoardRepository) GetByID(ctx context.Context, boardID uint) (*board.Board, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *mockBoardRepository) GetBySlug(ctx context.Context, slugValue string) (*board.Board, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slugValue)
	}
	return nil, nil
}

func (m *mockBoardRepository) List(ctx context.Context, filter board.Filter) ([]*board.Board, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBoardRepository) SlugInUse(ctx context.Context, slugValue string, excludeID uint) (bool, error) {
	if m.SlugInUseFunc != nil {
		return m.SlugInUseFunc(ctx, slugValue, excludeID)
	}
	return false, nil
}

func (m *mockBoardRepository) TicketCount(ctx context.Context, boardID uint) (int64, error) {
	if m.TicketCountFunc != nil {
		return m.TicketCountFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *mockBoardRepository) CountByStatusSet(ctx context.Context, statusSetID uint) (int64, error) {
	if m.CountByStatusSetFunc != nil {
		return m.CountByStatusSetFunc(ctx, statusSetID)
	}
	return 0, nil
}

type mockWorkflowRepository struct {
	SaveSetFunc         func(ctx context.Context, set *workflow.StatusSet) error
	UpdateSetFunc       func(ctx context.Context, set *workflow.StatusSet) error
	DeleteSetFunc       func(ctx context.Context, setID uint) error
	GetSetByIDFunc      func(ctx context.Context, setID uint) (*workflow.StatusSet, error)
	GetDefaultSetFunc   func(ctx context.Context) (*workflow.StatusSet, error)
	ListSetsFunc        func(ctx context.Context) ([]*workflow.StatusSet, error)
	SaveStatusFunc      func(ctx context.Context, status *workflow.Status) error
	UpdateStatusFunc    func(ctx context.Context, status *workflow.Status) error
	DeleteStatusFunc    func(ctx context.Context, statusID uint) error
	GetStatusByIDFunc   func(ctx context.Context, statusID uint) (*workflow.Status, error)
	GetStatusBySlugFunc func(ctx context.Context, setID uint, slugValue string) (*workflow.Status, error)
	StatusSlugInUseFunc func(ctx context.Context, setID uint, slugValue string, excludeID uint) (bool, error)
}

func (m *mockWorkflowRepository) SaveSet(ctx context.Context, set *workflow.StatusSet) error {
	if m.SaveSetFunc != nil {
		return m.SaveSetFunc(ctx, set)
	}
	return nil
}

func (m *mockWorkflowRepository) UpdateSet(ctx context.Context, set *workflow.StatusSet) error {
	if m.UpdateSetFunc != nil {
		return m.UpdateSetFunc(ctx, set)
	}
	return nil
}

func (m *mockWorkflowRepository) DeleteSet(ctx context.Context, setID uint) error {
	if m.DeleteSetFunc != nil {
		return m.DeleteSetFunc(ctx, setID)
	}
	return nil
}

func (m *mockWorkflowRepository) GetSetByID(ctx context.Context, setID uint) (*workflow.StatusSet, error) {
	if m.GetSetByIDFunc != nil {
		return m.GetSetByIDFunc(ctx, setID)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) GetDefaultSet(ctx context.Context) (*workflow.StatusSet, error) {
	if m.GetDefaultSetFunc != nil {
		return m.GetDefaultSetFunc(ctx)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) ListSets(ctx context.Context) ([]*workflow.StatusSet, error) {
	if m.ListSetsFunc != nil {
		return m.ListSetsFunc(ctx)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) SaveStatus(ctx context.Context, status *workflow.Status) error {
	if m.SaveStatusFunc != nil {
		return m.SaveStatusFunc(ctx, status)
	}
	return nil
}

func (m *mockWorkflowRepository) UpdateStatus(ctx context.Context, status *workflow.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, status)
	}
	return nil
}

func (m *mockWorkflowRepository) DeleteStatus(ctx context.Context, statusID uint) error {
	if m.DeleteStatusFunc != nil {
		return m.DeleteStatusFunc(ctx, statusID)
	}
	return nil
}

func (m *mockWorkflowRepository) GetStatusByID(ctx context.Context, statusID uint) (*workflow.Status, error) {
	if m.GetStatusByIDFunc != nil {
		return m.GetStatusByIDFunc(ctx, statusID)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) GetStatusBySlug(ctx context.Context, setID uint, slugValue string) (*workflow.Status, error) {
	if m.GetStatusBySlugFunc != nil {
		return m.GetStatusBySlugFunc(ctx, setID, slugValue)
	}
	return nil, nil
}

func (m *mockWorkflowRepository) StatusSlugInUse(ctx context.Context, setID uint, slugValue string, excludeID uint) (bool, error) {
	if m.StatusSlugInUseFunc != nil {
		return m.StatusSlugInUseFunc(ctx, setID, slugValue, excludeID)
	}
	return false, nil
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

type mockViewPreferenceStore struct {
	GetFunc func(ctx context.Context, sessionKey, boardSlug string) (board.ViewType, bool, error)
	SetFunc func(ctx context.Context, sessionKey, boardSlug string, v board.ViewType) error
}

func (m *mockViewPreferenceStore) Get(ctx context.Context, sessionKey, boardSlug string) (board.ViewType, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionKey, boardSlug)
	}
	return "", false, nil
}

func (m *mockViewPreferenceStore) Set(ctx context.Context, sessionKey, boardSlug string, v board.ViewType) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, sessionKey, boardSlug, v)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
