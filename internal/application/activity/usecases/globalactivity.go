package usecases

import (
	"context"

	"soapbox/internal/domain/activity"
	"soapbox/internal/shared/logger"
)

type GlobalActivityResult struct {
	Events []activity.Event
}

type GlobalActivityUseCase struct {
	reader activity.Reader
	logger logger.Interface
}

func NewGlobalActivityUseCase(reader activity.Reader, logger logger.Interface) *GlobalActivityUseCase {
	return &GlobalActivityUseCase{reader: reader, logger: logger}
}

// Execute builds the cross-board timeline. The zero board ID makes the reader
// span every non-admin board.
func (uc *GlobalActivityUseCase) Execute(ctx context.Context) (*GlobalActivityResult, error) {
	tickets, comments, upvotes, err := fetchStreams(ctx, uc.reader, 0, activity.GlobalTimelineCap)
	if err != nil {
		uc.logger.Errorw("failed to load global activity", "error", err)
		return nil, err
	}
	return &GlobalActivityResult{Events: activity.BuildGlobal(tickets, comments, upvotes)}, nil
}
