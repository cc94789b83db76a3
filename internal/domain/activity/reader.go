package activity

import "context"

// Reader fetches the raw record streams behind activity timelines. Each
// method returns at most limit rows, newest first, and excludes archived
// tickets and anything on them. A zero boardID on the ticket, comment and
// upvote readers means all non-admin boards.
type Reader interface {
	RecentTickets(ctx context.Context, boardID uint, limit int) ([]TicketRecord, error)
	RecentComments(ctx context.Context, boardID uint, limit int) ([]CommentRecord, error)
	RecentUpvotes(ctx context.Context, boardID uint, limit int) ([]UpvoteRecord, error)
}
