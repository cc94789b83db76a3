package usecases

import "context"

// TransactionRunner runs a function inside one storage transaction. Satisfied
// by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
