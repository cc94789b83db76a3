package engagement

import "context"

type UpvoteRepository interface {
	Save(ctx context.Context, upvote *Upvote) error
	Delete(ctx context.Context, upvoteID uint) error
	// Find returns the user's upvote on the referenced content, or nil when
	// none exists.
	Find(ctx context.Context, ref UpvotableRef, userID uint) (*Upvote, error)
	Count(ctx context.Context, ref UpvotableRef) (int64, error)
	// CountMany returns counts keyed by content ID for one kind, letting list
	// views avoid a query per row.
	CountMany(ctx context.Context, kind UpvotableKind, ids []uint) (map[uint]int64, error)
	// ExistsMany reports which of the referenced contents the user has
	// upvoted, keyed by content ID.
	ExistsMany(ctx context.Context, kind UpvotableKind, ids []uint, userID uint) (map[uint]bool, error)
	DeleteByRef(ctx context.Context, ref UpvotableRef) error
}

type SubscriptionRepository interface {
	Save(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, subscriptionID uint) error
	// Find returns the subscription of email on the ticket, or nil when none
	// exists.
	Find(ctx context.Context, ticketID uint, email string) (*Subscription, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Subscription, error)
	DeleteByTicket(ctx context.Context, ticketID uint) error
}
