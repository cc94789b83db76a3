package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/board"
	"soapbox/internal/shared/config"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type DeleteBoardCommand struct {
	BoardID uint
}

type DeleteBoardUseCase struct {
	boardRepo board.Repository
	cfg       *config.BoardConfig
	logger    logger.Interface
}

func NewDeleteBoardUseCase(
	boardRepo board.Repository,
	cfg *config.BoardConfig,
	logger logger.Interface,
) *DeleteBoardUseCase {
	return &DeleteBoardUseCase{
		boardRepo: boardRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *DeleteBoardUseCase) Execute(ctx context.Context, cmd DeleteBoardCommand) error {
	uc.logger.Infow("executing delete board use case", "board_id", cmd.BoardID)

	b, err := uc.boardRepo.GetByID(ctx, cmd.BoardID)
	if err != nil {
		uc.logger.Warnw("board not found", "board_id", cmd.BoardID, "error", err)
		return err
	}

	count, err := uc.boardRepo.TicketCount(ctx, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to count board tickets", "board_id", b.ID(), "error", err)
		return fmt.Errorf("failed to count board tickets: %w", err)
	}
	if count > 0 && !uc.cfg.AllowDeleteWithTickets {
		uc.logger.Warnw("delete blocked by existing tickets", "board_id", b.ID(), "ticket_count", count)
		return apperrors.NewConflictError(
			"board still has tickets",
			fmt.Sprintf("%d tickets reference this board", count),
		)
	}

	if err := uc.boardRepo.Delete(ctx, b.ID()); err != nil {
		uc.logger.Errorw("failed to delete board", "board_id", b.ID(), "error", err)
		return fmt.Errorf("failed to delete board: %w", err)
	}

	uc.logger.Infow("board deleted", "board_id", b.ID(), "slug", b.Slug())
	return nil
}
