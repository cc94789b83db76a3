package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/activity"
	"soapbox/internal/shared/logger"
)

type BoardActivityCommand struct {
	BoardID uint
}

type BoardActivityResult struct {
	Events []activity.Event
}

type BoardActivityUseCase struct {
	reader activity.Reader
	logger logger.Interface
}

func NewBoardActivityUseCase(reader activity.Reader, logger logger.Interface) *BoardActivityUseCase {
	return &BoardActivityUseCase{reader: reader, logger: logger}
}

// Execute builds one board's recent-activity timeline. Each stream is fetched
// up to the cap so the merged result is correct even when a single stream
// could fill the whole timeline.
func (uc *BoardActivityUseCase) Execute(ctx context.Context, cmd BoardActivityCommand) (*BoardActivityResult, error) {
	tickets, comments, upvotes, err := fetchStreams(ctx, uc.reader, cmd.BoardID, activity.BoardTimelineCap)
	if err != nil {
		uc.logger.Errorw("failed to load board activity", "board_id", cmd.BoardID, "error", err)
		return nil, err
	}
	return &BoardActivityResult{Events: activity.BuildBoard(tickets, comments, upvotes)}, nil
}

func fetchStreams(ctx context.Context, reader activity.Reader, boardID uint, limit int) ([]activity.TicketRecord, []activity.CommentRecord, []activity.UpvoteRecord, error) {
	tickets, err := reader.RecentTickets(ctx, boardID, limit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load recent tickets: %w", err)
	}
	comments, err := reader.RecentComments(ctx, boardID, limit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load recent comments: %w", err)
	}
	upvotes, err := reader.RecentUpvotes(ctx, boardID, limit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load recent upvotes: %w", err)
	}
	return tickets, comments, upvotes, nil
}
