package models

type UpvoteModel struct {
	ID            uint   `gorm:"primaryKey"`
	UpvotableKind string `gorm:"size:20;not null;uniqueIndex:idx_upvotes_unique"`
	UpvotableID   uint   `gorm:"not null;uniqueIndex:idx_upvotes_unique"`
	UserID        uint   `gorm:"not null;uniqueIndex:idx_upvotes_unique"`
	UserType      string `gorm:"size:50;not null;default:User"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (UpvoteModel) TableName() string {
	return "upvotes"
}

type SubscriptionModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;uniqueIndex:idx_subscriptions_ticket_email"`
	Email        string `gorm:"size:255;not null;uniqueIndex:idx_subscriptions_ticket_email"`
	LastViewedAt int64  `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
