package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetBySlug(ctx context.Context, boardID uint, slugValue string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// SlugInUse reports whether a slug is taken inside a board by a ticket
	// other than excludeID.
	SlugInUse(ctx context.Context, boardID uint, slugValue string, excludeID uint) (bool, error)
}

type Filter struct {
	BoardID         uint
	StatusSlug      *string
	IncludeArchived bool
	Search          string
	Page            int
	PageSize        int
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	// DeleteMany removes a comment subtree in one statement.
	DeleteMany(ctx context.Context, commentIDs []uint) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
