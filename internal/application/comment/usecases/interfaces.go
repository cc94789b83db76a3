package usecases

import "context"

// TransactionRunner runs a function inside one storage transaction. Satisfied
// by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MarkdownRenderer turns user-authored markdown into sanitized HTML for the
// host view layer.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}

// NewCommentNotification is the payload handed to the notifier when a comment
// lands on a subscribed ticket.
type NewCommentNotification struct {
	Recipients  []string
	TicketTitle string
	TicketSlug  string
	BoardID     uint
	CommentID   uint
	Excerpt     string
}

// Notifier delivers subscription emails. Dispatch runs outside the request
// transaction; delivery failures are logged, never surfaced to the commenter.
type Notifier interface {
	NotifyNewComment(ctx context.Context, n NewCommentNotification) error
}
