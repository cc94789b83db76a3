package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type UpdateBoardCommand struct {
	BoardID     uint
	Name        *string
	Description *string
	AdminOnly   *bool
	ItemLabel   *string

	SingleView      *string
	ClearSingleView bool

	StatusSetID    *uint
	ClearStatusSet bool
}

type UpdateBoardResult struct {
	BoardID uint
	Slug    string
}

type UpdateBoardUseCase struct {
	boardRepo    board.Repository
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewUpdateBoardUseCase(
	boardRepo board.Repository,
	workflowRepo workflow.Repository,
	logger logger.Interface,
) *UpdateBoardUseCase {
	return &UpdateBoardUseCase{
		boardRepo:    boardRepo,
		workflowRepo: workflowRepo,
		logger:       logger,
	}
}

func (uc *UpdateBoardUseCase) Execute(ctx context.Context, cmd UpdateBoardCommand) (*UpdateBoardResult, error) {
	uc.logger.Infow("executing update board use case", "board_id", cmd.BoardID)

	b, err := uc.boardRepo.GetByID(ctx, cmd.BoardID)
	if err != nil {
		uc.logger.Warnw("board not found", "board_id", cmd.BoardID, "error", err)
		return nil, err
	}

	if cmd.Name != nil {
		if err := b.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		b.UpdateDescription(*cmd.Description)
	}
	if cmd.AdminOnly != nil {
		b.SetAdminOnly(*cmd.AdminOnly)
	}
	if cmd.ItemLabel != nil {
		b.SetItemLabel(*cmd.ItemLabel)
	}

	switch {
	case cmd.ClearSingleView:
		if err := b.SetSingleView(nil); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	case cmd.SingleView != nil:
		v, ok := board.ParseViewType(*cmd.SingleView)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid view type: %q", *cmd.SingleView))
		}
		if err := b.SetSingleView(&v); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	switch {
	case cmd.ClearStatusSet:
		if err := b.AssignStatusSet(nil); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	case cmd.StatusSetID != nil:
		if _, err := uc.workflowRepo.GetSetByID(ctx, *cmd.StatusSetID); err != nil {
			uc.logger.Warnw("status set not found", "status_set_id", *cmd.StatusSetID, "error", err)
			return nil, apperrors.NewValidationError("status set does not exist")
		}
		if err := b.AssignStatusSet(cmd.StatusSetID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	taken := func(ctx context.Context, candidate string) (bool, error) {
		return uc.boardRepo.SlugInUse(ctx, candidate, b.ID())
	}
	if b.NeedsSlug() {
		assigned, err := slug.Unique(ctx, slug.Generate(b.Name()), taken)
		if err != nil {
			uc.logger.Errorw("failed to regenerate board slug", "board_id", b.ID(), "error", err)
			return nil, fmt.Errorf("failed to regenerate board slug: %w", err)
		}
		if err := b.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.boardRepo.Update(ctx, b); err != nil {
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to update board", "board_id", b.ID(), "error", err)
			return nil, fmt.Errorf("failed to update board: %w", err)
		}
		base, n := slug.ParseSuffix(b.Slug())
		assigned, err := slug.UniqueFrom(ctx, base, n+1, taken)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate board slug: %w", err)
		}
		if err := b.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.boardRepo.Update(ctx, b); err != nil {
			uc.logger.Errorw("failed to update board after slug retry", "slug", assigned, "error", err)
			return nil, apperrors.NewConflictError("board slug conflict", err.Error())
		}
	}

	uc.logger.Infow("board updated", "board_id", b.ID(), "slug", b.Slug())
	return &UpdateBoardResult{BoardID: b.ID(), Slug: b.Slug()}, nil
}
