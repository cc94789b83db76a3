package usecases

import (
	"context"
	"fmt"
	"strconv"

	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type ResolveStatusCommand struct {
	StatusSetID uint
	Param       string
}

type ResolveStatusUseCase struct {
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewResolveStatusUseCase(workflowRepo workflow.Repository, logger logger.Interface) *ResolveStatusUseCase {
	return &ResolveStatusUseCase{workflowRepo: workflowRepo, logger: logger}
}

// Execute resolves a request parameter to a status within one status set:
// slug match first, then a primary-key lookup for numeric parameters. A
// status found by ID but owned by another set stays not found.
func (uc *ResolveStatusUseCase) Execute(ctx context.Context, cmd ResolveStatusCommand) (*workflow.Status, error) {
	if cmd.Param == "" {
		return nil, apperrors.NewValidationError("status parameter is required")
	}

	s, err := uc.workflowRepo.GetStatusBySlug(ctx, cmd.StatusSetID, cmd.Param)
	if err == nil {
		return s, nil
	}
	if !apperrors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to resolve status by slug", "param", cmd.Param, "error", err)
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}
	if !slug.IsNumeric(cmd.Param) {
		return nil, apperrors.NewNotFoundError("status not found")
	}

	id, convErr := strconv.ParseUint(cmd.Param, 10, 64)
	if convErr != nil {
		return nil, apperrors.NewNotFoundError("status not found")
	}
	s, err = uc.workflowRepo.GetStatusByID(ctx, uint(id))
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to resolve status by id", "param", cmd.Param, "error", err)
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}
	if s.StatusSetID() != cmd.StatusSetID {
		return nil, apperrors.NewNotFoundError("status not found")
	}
	return s, nil
}
