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
