package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/ticket"
	"soapbox/internal/shared/logger"
	"soapbox/internal/shared/utils"
)

type ListTicketsCommand struct {
	BoardID         uint
	StatusSlug      *string
	IncludeArchived bool
	Search          string
	Page            int
	PageSize        int
	Actor           identity.Actor
}

type TicketSummary struct {
	TicketID   uint
	Title      string
	Slug       string
	StatusSlug *string
	Locked     bool
	Archived   bool
	AuthorID   uint
	Upvotes    int64
	UpvotedBy  bool
	CreatedAt  time.Time
}

type ListTicketsResult struct {
	Tickets    []TicketSummary
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	upvoteRepo engagement.UpvoteRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	upvoteRepo engagement.UpvoteRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		upvoteRepo: upvoteRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(cmd.Page, cmd.PageSize)
	page, pageSize := pagination.Page, pagination.PageSize

	tickets, total, err := uc.ticketRepo.List(ctx, ticket.Filter{
		BoardID:         cmd.BoardID,
		StatusSlug:      cmd.StatusSlug,
		IncludeArchived: cmd.IncludeArchived,
		Search:          cmd.Search,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "board_id", cmd.BoardID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID())
	}
	counts := map[uint]int64{}
	voted := map[uint]bool{}
	if len(ids) > 0 {
		counts, err = uc.upvoteRepo.CountMany(ctx, engagement.KindTicket, ids)
		if err != nil {
			uc.logger.Errorw("failed to count ticket upvotes", "error", err)
			return nil, fmt.Errorf("failed to count ticket upvotes: %w", err)
		}
		if !cmd.Actor.IsAnonymous() {
			voted, err = uc.upvoteRepo.ExistsMany(ctx, engagement.KindTicket, ids, cmd.Actor.ID)
			if err != nil {
				uc.logger.Errorw("failed to load viewer ticket upvotes", "error", err)
				return nil, fmt.Errorf("failed to load viewer ticket upvotes: %w", err)
			}
		}
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, TicketSummary{
			TicketID:   t.ID(),
			Title:      t.Title(),
			Slug:       t.Slug(),
			StatusSlug: t.StatusSlug(),
			Locked:     t.Locked(),
			Archived:   t.Archived(),
			AuthorID:   t.UserID(),
			Upvotes:    counts[t.ID()],
			UpvotedBy:  voted[t.ID()],
			CreatedAt:  t.CreatedAt(),
		})
	}

	return &ListTicketsResult{
		Tickets:    summaries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: utils.TotalPages(total, pageSize),
	}, nil
}
