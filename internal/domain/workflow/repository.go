package workflow

import "context"

type Repository interface {
	SaveSet(ctx context.Context, set *StatusSet) error
	UpdateSet(ctx context.Context, set *StatusSet) error
	DeleteSet(ctx context.Context, setID uint) error
	GetSetByID(ctx context.Context, setID uint) (*StatusSet, error)
	GetDefaultSet(ctx context.Context) (*StatusSet, error)
	ListSets(ctx context.Context) ([]*StatusSet, error)

	SaveStatus(ctx context.Context, status *Status) error
	UpdateStatus(ctx context.Context, status *Status) error
	DeleteStatus(ctx context.Context, statusID uint) error
	GetStatusByID(ctx context.Context, statusID uint) (*Status, error)
	GetStatusBySlug(ctx context.Context, setID uint, slugValue string) (*Status, error)
	// StatusSlugInUse reports whether a slug is taken inside a set by a
	// status other than excludeID.
	StatusSlugInUse(ctx context.Context, setID uint, slugValue string, excludeID uint) (bool, error)
}
