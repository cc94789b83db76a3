package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type UpdateStatusCommand struct {
	StatusID uint
	Name     *string
	Color    *string
	Position *int
}

type UpdateStatusResult struct {
	StatusID uint
	Slug     string
}

type UpdateStatusUseCase struct {
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewUpdateStatusUseCase(workflowRepo workflow.Repository, logger logger.Interface) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{workflowRepo: workflowRepo, logger: logger}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case", "status_id", cmd.StatusID)

	s, err := uc.workflowRepo.GetStatusByID(ctx, cmd.StatusID)
	if err != nil {
		uc.logger.Warnw("status not found", "status_id", cmd.StatusID, "error", err)
		return nil, err
	}

	if cmd.Name != nil {
		if err := s.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Color != nil {
		if err := s.ChangeColor(workflow.Color(*cmd.Color)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Position != nil {
		if err := s.Reposition(*cmd.Position); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	taken := func(ctx context.Context, candidate string) (bool, error) {
		return uc.workflowRepo.StatusSlugInUse(ctx, s.StatusSetID(), candidate, s.ID())
	}
	if s.NeedsSlug() {
		assigned, err := slug.Unique(ctx, slug.Generate(s.Name()), taken)
		if err != nil {
			uc.logger.Errorw("failed to regenerate status slug", "status_id", s.ID(), "error", err)
			return nil, fmt.Errorf("failed to regenerate status slug: %w", err)
		}
		if err := s.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.workflowRepo.UpdateStatus(ctx, s); err != nil {
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to update status", "status_id", s.ID(), "error", err)
			return nil, fmt.Errorf("failed to update status: %w", err)
		}
		base, n := slug.ParseSuffix(s.Slug())
		assigned, err := slug.UniqueFrom(ctx, base, n+1, taken)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate status slug: %w", err)
		}
		if err := s.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.workflowRepo.UpdateStatus(ctx, s); err != nil {
			uc.logger.Errorw("failed to update status after slug retry", "slug", assigned, "error", err)
			return nil, apperrors.NewConflictError("status slug conflict", err.Error())
		}
	}

	uc.logger.Infow("status updated", "status_id", s.ID(), "slug", s.Slug())
	return &UpdateStatusResult{StatusID: s.ID(), Slug: s.Slug()}, nil
}
