package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/permission"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type ListBoardsCommand struct {
	Actor    identity.Actor
	Page     int
	PageSize int
}

type BoardSummary struct {
	BoardID     uint
	Name        string
	Slug        string
	Description string
	AdminOnly   bool
	SingleView  *string
	ItemLabel   string
	TicketCount int64
	CreatedAt   time.Time
}

type ListBoardsResult struct {
	Boards     []BoardSummary
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListBoardsUseCase struct {
	boardRepo   board.Repository
	permissions permission.Service
	logger      logger.Interface
}

func NewListBoardsUseCase(
	boardRepo board.Repository,
	permissions permission.Service,
	logger logger.Interface,
) *ListBoardsUseCase {
	return &ListBoardsUseCase{
		boardRepo:   boardRepo,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *ListBoardsUseCase) Execute(ctx context.Context, cmd ListBoardsCommand) (*ListBoardsResult, error) {
	pagination := utils.ValidatePagination(cmd.Page, cmd.PageSize)
	page, pageSize := pagination.Page, pagination.PageSize

	includeAdmin, err := uc.permissions.CanViewAdminBoards(ctx, cmd.Actor)
	if err != nil {
		uc.logger.Errorw("failed to check admin board visibility", "user_id", cmd.Actor.ID, "error", err)
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}

	boards, total, err := uc.boardRepo.List(ctx, board.Filter{
		IncludeAdminOnly: includeAdmin,
		Page:             page,
		PageSize:         pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list boards", "error", err)
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	summaries := make([]BoardSummary, 0, len(boards))
	for _, b := range boards {
		count, err := uc.boardRepo.TicketCount(ctx, b.ID())
		if err != nil {
			uc.logger.Errorw("failed to count board tickets", "board_id", b.ID(), "error", err)
			return nil, fmt.Errorf("failed to count board tickets: %w", err)
		}
		var singleView *string
		if v := b.SingleView(); v != nil {
			s := string(*v)
			singleView = &s
		}
		summaries = append(summaries, BoardSummary{
			BoardID:     b.ID(),
			Name:        b.Name(),
			Slug:        b.Slug(),
			Description: b.Description(),
			AdminOnly:   b.AdminOnly(),
			SingleView:  singleView,
			ItemLabel:   b.ItemLabel(),
			TicketCount: count,
			CreatedAt:   b.CreatedAt(),
		})
	}

	return &ListBoardsResult{
		Boards:     summaries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: utils.TotalPages(total, pageSize),
	}, nil
}
