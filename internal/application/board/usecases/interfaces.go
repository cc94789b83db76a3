package usecases

import (
	"context"

	"soapbox/internal/domain/board"
)

// ViewPreferenceStore remembers a visitor's per-board view choice in
// session-like storage. Entries expire; a miss is not an error.
type ViewPreferenceStore interface {
	Get(ctx context.Context, sessionKey, boardSlug string) (board.ViewType, bool, error)
	Set(ctx context.Context, sessionKey, boardSlug string, v board.ViewType) error
}
