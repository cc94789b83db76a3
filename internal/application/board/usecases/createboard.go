package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type CreateBoardCommand struct {
	Name        string
	Description string
	StatusSetID *uint
	AdminOnly   bool
	ItemLabel   string
	SingleView  *string
}

type CreateBoardResult struct {
	BoardID   uint
	Slug      string
	CreatedAt time.Time
}

type CreateBoardUseCase struct {
	boardRepo    board.Repository
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewCreateBoardUseCase(
	boardRepo board.Repository,
	workflowRepo workflow.Repository,
	logger logger.Interface,
) *CreateBoardUseCase {
	return &CreateBoardUseCase{
		boardRepo:    boardRepo,
		workflowRepo: workflowRepo,
		logger:       logger,
	}
}

func (uc *CreateBoardUseCase) Execute(ctx context.Context, cmd CreateBoardCommand) (*CreateBoardResult, error) {
	uc.logger.Infow("executing create board use case", "name", cmd.Name)

	if cmd.StatusSetID != nil {
		if _, err := uc.workflowRepo.GetSetByID(ctx, *cmd.StatusSetID); err != nil {
			uc.logger.Warnw("status set not found", "status_set_id", *cmd.StatusSetID, "error", err)
			return nil, apperrors.NewValidationError("status set does not exist")
		}
	}

	b, err := board.NewBoard(cmd.Name, cmd.Description, cmd.StatusSetID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	b.SetAdminOnly(cmd.AdminOnly)
	if cmd.ItemLabel != "" {
		b.SetItemLabel(cmd.ItemLabel)
	}
	if cmd.SingleView != nil {
		v, ok := board.ParseViewType(*cmd.SingleView)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid view type: %q", *cmd.SingleView))
		}
		if err := b.SetSingleView(&v); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	taken := func(ctx context.Context, candidate string) (bool, error) {
		return uc.boardRepo.SlugInUse(ctx, candidate, 0)
	}
	assigned, err := slug.Unique(ctx, slug.Generate(cmd.Name), taken)
	if err != nil {
		uc.logger.Errorw("failed to generate board slug", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to generate board slug: %w", err)
	}
	if err := b.SetSlug(assigned); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.boardRepo.Save(ctx, b); err != nil {
		// The unique index is the source of truth; a concurrent insert can
		// win the race despite the probe. Regenerate with a higher suffix
		// and retry once.
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save board", "error", err)
			return nil, fmt.Errorf("failed to save board: %w", err)
		}
		base, n := slug.ParseSuffix(assigned)
		assigned, err = slug.UniqueFrom(ctx, base, n+1, taken)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate board slug: %w", err)
		}
		if err := b.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.boardRepo.Save(ctx, b); err != nil {
			uc.logger.Errorw("failed to save board after slug retry", "slug", assigned, "error", err)
			return nil, apperrors.NewConflictError("board slug conflict", err.Error())
		}
	}

	uc.logger.Infow("board created", "board_id", b.ID(), "slug", b.Slug())
	return &CreateBoardResult{
		BoardID:   b.ID(),
		Slug:      b.Slug(),
		CreatedAt: b.CreatedAt(),
	}, nil
}
