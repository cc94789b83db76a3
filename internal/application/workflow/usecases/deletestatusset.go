package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/workflow"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type DeleteStatusSetCommand struct {
	StatusSetID uint
}

type DeleteStatusSetUseCase struct {
	workflowRepo workflow.Repository
	boardRepo    board.Repository
	txMgr        TransactionRunner
	logger       logger.Interface
}

func NewDeleteStatusSetUseCase(
	workflowRepo workflow.Repository,
	boardRepo board.Repository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *DeleteStatusSetUseCase {
	return &DeleteStatusSetUseCase{
		workflowRepo: workflowRepo,
		boardRepo:    boardRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *DeleteStatusSetUseCase) Execute(ctx context.Context, cmd DeleteStatusSetCommand) error {
	uc.logger.Infow("executing delete status set use case", "status_set_id", cmd.StatusSetID)

	set, err := uc.workflowRepo.GetSetByID(ctx, cmd.StatusSetID)
	if err != nil {
		uc.logger.Warnw("status set not found", "status_set_id", cmd.StatusSetID, "error", err)
		return err
	}

	refs, err := uc.boardRepo.CountByStatusSet(ctx, set.ID())
	if err != nil {
		uc.logger.Errorw("failed to count referencing boards", "status_set_id", set.ID(), "error", err)
		return fmt.Errorf("failed to count referencing boards: %w", err)
	}
	if refs > 0 {
		uc.logger.Warnw("delete blocked by referencing boards", "status_set_id", set.ID(), "boards", refs)
		return apperrors.NewConflictError(
			"status set is still in use",
			fmt.Sprintf("%d boards reference this status set", refs),
		)
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, s := range set.Statuses() {
			if err := uc.workflowRepo.DeleteStatus(txCtx, s.ID()); err != nil {
				return fmt.Errorf("failed to delete status %d: %w", s.ID(), err)
			}
		}
		if err := uc.workflowRepo.DeleteSet(txCtx, set.ID()); err != nil {
			return fmt.Errorf("failed to delete status set: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete status set", "status_set_id", set.ID(), "error", txErr)
		return txErr
	}

	uc.logger.Infow("status set deleted", "status_set_id", set.ID())
	return nil
}
