package board

import "context"

type Repository interface {
	Save(ctx context.Context, b *Board) error
	Update(ctx context.Context, b *Board) error
	Delete(ctx context.Context, boardID uint) error
	GetByID(ctx context.Context, boardID uint) (*Board, error)
	GetBySlug(ctx context.Context, slugValue string) (*Board, error)
	List(ctx context.Context, filter Filter) ([]*Board, int64, error)
	// SlugInUse reports whether a slug is taken by a board other than excludeID.
	SlugInUse(ctx context.Context, slugValue string, excludeID uint) (bool, error)
	// TicketCount reports how many tickets reference the board; deletes are
	// blocked while it is non-zero unless overridden by configuration.
	TicketCount(ctx context.Context, boardID uint) (int64, error)
	// CountByStatusSet reports how many boards reference a status set.
	CountByStatusSet(ctx context.Context, statusSetID uint) (int64, error)
}

type Filter struct {
	IncludeAdminOnly bool
	Page             int
	PageSize         int
}
