package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type StatusInput struct {
	Name     string
	Color    string
	Position int
}

type CreateStatusSetCommand struct {
	Name      string
	IsDefault bool
	Statuses  []StatusInput
}

type CreateStatusSetResult struct {
	StatusSetID uint
	StatusIDs   []uint
}

type CreateStatusSetUseCase struct {
	workflowRepo workflow.Repository
	txMgr        TransactionRunner
	logger       logger.Interface
}

func NewCreateStatusSetUseCase(
	workflowRepo workflow.Repository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *CreateStatusSetUseCase {
	return &CreateStatusSetUseCase{
		workflowRepo: workflowRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateStatusSetUseCase) Execute(ctx context.Context, cmd CreateStatusSetCommand) (*CreateStatusSetResult, error) {
	uc.logger.Infow("executing create status set use case", "name", cmd.Name, "statuses", len(cmd.Statuses))

	set, err := workflow.NewStatusSet(cmd.Name, cmd.IsDefault)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Validate inputs and resolve slug collisions in memory before touching
	// storage. The new set owns no statuses yet, so the suffix sequence is
	// deterministic.
	for _, input := range cmd.Statuses {
		if !workflow.Color(input.Color).IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status color: %q", input.Color))
		}
		if input.Name == "" {
			return nil, apperrors.NewValidationError("status name is required")
		}
		if input.Position < 0 {
			return nil, apperrors.NewValidationError("status position cannot be negative")
		}
	}
	slugs := make([]string, 0, len(cmd.Statuses))
	seen := map[string]bool{}
	for _, input := range cmd.Statuses {
		base := slug.Generate(input.Name)
		assigned := base
		for n := 1; seen[assigned]; n++ {
			assigned = slug.WithSuffix(base, n)
		}
		seen[assigned] = true
		slugs = append(slugs, assigned)
	}

	var statusIDs []uint
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.workflowRepo.SaveSet(txCtx, set); err != nil {
			return fmt.Errorf("failed to save status set: %w", err)
		}
		for i, input := range cmd.Statuses {
			s, err := workflow.NewStatus(set.ID(), input.Name, workflow.Color(input.Color), input.Position)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := s.SetSlug(slugs[i]); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := uc.workflowRepo.SaveStatus(txCtx, s); err != nil {
				return fmt.Errorf("failed to save status %q: %w", s.Name(), err)
			}
			statusIDs = append(statusIDs, s.ID())
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create status set", "name", cmd.Name, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("status set created", "status_set_id", set.ID(), "statuses", len(statusIDs))
	return &CreateStatusSetResult{StatusSetID: set.ID(), StatusIDs: statusIDs}, nil
}
