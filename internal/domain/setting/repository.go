package setting

import "context"

type Repository interface {
	// Upsert writes the value for key, creating the row when absent.
	Upsert(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (*Setting, error)
	List(ctx context.Context) ([]*Setting, error)
}
