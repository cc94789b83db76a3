package usecases

import (
	"context"

	"soapbox/internal/domain/board"
	"soapbox/internal/shared/logger"
)

type ResolveViewTypeCommand struct {
	BoardID uint
	// SessionKey identifies the visitor's preference bucket.
	SessionKey string
	// ExplicitParam is the raw view request parameter, nil when absent.
	ExplicitParam *string
}

type ResolveViewTypeResult struct {
	ViewType   board.ViewType
	ShowToggle bool
}

type ResolveViewTypeUseCase struct {
	boardRepo board.Repository
	prefs     ViewPreferenceStore
	logger    logger.Interface
}

func NewResolveViewTypeUseCase(
	boardRepo board.Repository,
	prefs ViewPreferenceStore,
	logger logger.Interface,
) *ResolveViewTypeUseCase {
	return &ResolveViewTypeUseCase{
		boardRepo: boardRepo,
		prefs:     prefs,
		logger:    logger,
	}
}

// Execute picks the rendering mode for a board listing. Priority order:
// board-enforced single view, then an explicit request parameter (which also
// updates the remembered preference), then the remembered preference, then
// the list default.
func (uc *ResolveViewTypeUseCase) Execute(ctx context.Context, cmd ResolveViewTypeCommand) (*ResolveViewTypeResult, error) {
	b, err := uc.boardRepo.GetByID(ctx, cmd.BoardID)
	if err != nil {
		uc.logger.Warnw("board not found", "board_id", cmd.BoardID, "error", err)
		return nil, err
	}

	if b.EnforcesSingleView() {
		return &ResolveViewTypeResult{ViewType: *b.SingleView(), ShowToggle: false}, nil
	}

	if cmd.ExplicitParam != nil {
		v := board.NormalizeViewType(*cmd.ExplicitParam)
		if err := uc.prefs.Set(ctx, cmd.SessionKey, b.Slug(), v); err != nil {
			// Preference storage is best-effort; the response stays correct
			// even when remembering fails.
			uc.logger.Warnw("failed to store view preference", "board_slug", b.Slug(), "error", err)
		}
		return &ResolveViewTypeResult{ViewType: v, ShowToggle: true}, nil
	}

	v, found, err := uc.prefs.Get(ctx, cmd.SessionKey, b.Slug())
	if err != nil {
		uc.logger.Warnw("failed to read view preference", "board_slug", b.Slug(), "error", err)
		found = false
	}
	if !found {
		v = board.ViewList
	}
	return &ResolveViewTypeResult{ViewType: v, ShowToggle: true}, nil
}
