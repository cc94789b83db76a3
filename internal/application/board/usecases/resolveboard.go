package usecases

import (
	"context"
	"fmt"
	"strconv"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/slug"
)

type ResolveBoardCommand struct {
	Param string
	Actor identity.Actor
}

type ResolveBoardUseCase struct {
	boardRepo   board.Repository
	permissions permission.Service
	logger      logger.Interface
}

func NewResolveBoardUseCase(
	boardRepo board.Repository,
	permissions permission.Service,
	logger logger.Interface,
) *ResolveBoardUseCase {
	return &ResolveBoardUseCase{
		boardRepo:   boardRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// Execute resolves a request parameter to a board: exact slug match first,
// then a primary-key lookup when the parameter is entirely numeric.
// Admin-only boards resolve as not found for actors without admin access.
func (uc *ResolveBoardUseCase) Execute(ctx context.Context, cmd ResolveBoardCommand) (*board.Board, error) {
	if cmd.Param == "" {
		return nil, apperrors.NewValidationError("board parameter is required")
	}

	b, err := uc.boardRepo.GetBySlug(ctx, cmd.Param)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to resolve board by slug", "param", cmd.Param, "error", err)
			return nil, fmt.Errorf("failed to resolve board: %w", err)
		}
		if !slug.IsNumeric(cmd.Param) {
			return nil, apperrors.NewNotFoundError("board not found")
		}
		id, convErr := strconv.ParseUint(cmd.Param, 10, 64)
		if convErr != nil {
			return nil, apperrors.NewNotFoundError("board not found")
		}
		b, err = uc.boardRepo.GetByID(ctx, uint(id))
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, err
			}
			uc.logger.Errorw("failed to resolve board by id", "param", cmd.Param, "error", err)
			return nil, fmt.Errorf("failed to resolve board: %w", err)
		}
	}

	if b.AdminOnly() {
		allowed, err := uc.permissions.CanViewAdminBoards(ctx, cmd.Actor)
		if err != nil {
			uc.logger.Errorw("failed to check admin board visibility", "board_id", b.ID(), "error", err)
			return nil, fmt.Errorf("failed to check permissions: %w", err)
		}
		if !allowed {
			// Hidden rather than forbidden so the board's existence leaks nothing.
			return nil, apperrors.NewNotFoundError("board not found")
		}
	}

	return b, nil
}
