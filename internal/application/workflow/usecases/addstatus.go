package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type AddStatusCommand struct {
	StatusSetID uint
	Name        string
	Color       string
	Position    int
}

type AddStatusResult struct {
	StatusID uint
	Slug     string
}

type AddStatusUseCase struct {
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewAddStatusUseCase(workflowRepo workflow.Repository, logger logger.Interface) *AddStatusUseCase {
	return &AddStatusUseCase{workflowRepo: workflowRepo, logger: logger}
}

func (uc *AddStatusUseCase) Execute(ctx context.Context, cmd AddStatusCommand) (*AddStatusResult, error) {
	uc.logger.Infow("executing add status use case", "status_set_id", cmd.StatusSetID, "name", cmd.Name)

	set, err := uc.workflowRepo.GetSetByID(ctx, cmd.StatusSetID)
	if err != nil {
		uc.logger.Warnw("status set not found", "status_set_id", cmd.StatusSetID, "error", err)
		return nil, err
	}

	s, err := workflow.NewStatus(set.ID(), cmd.Name, workflow.Color(cmd.Color), cmd.Position)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	taken := func(ctx context.Context, candidate string) (bool, error) {
		return uc.workflowRepo.StatusSlugInUse(ctx, set.ID(), candidate, 0)
	}
	assigned, err := slug.Unique(ctx, slug.Generate(cmd.Name), taken)
	if err != nil {
		uc.logger.Errorw("failed to generate status slug", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to generate status slug: %w", err)
	}
	if err := s.SetSlug(assigned); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.workflowRepo.SaveStatus(ctx, s); err != nil {
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save status", "error", err)
			return nil, fmt.Errorf("failed to save status: %w", err)
		}
		base, n := slug.ParseSuffix(assigned)
		assigned, err = slug.UniqueFrom(ctx, base, n+1, taken)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate status slug: %w", err)
		}
		if err := s.SetSlug(assigned); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.workflowRepo.SaveStatus(ctx, s); err != nil {
			uc.logger.Errorw("failed to save status after slug retry", "slug", assigned, "error", err)
			return nil, apperrors.NewConflictError("status slug conflict", err.Error())
		}
	}

	uc.logger.Infow("status added", "status_id", s.ID(), "slug", s.Slug())
	return &AddStatusResult{StatusID: s.ID(), Slug: s.Slug()}, nil
}
