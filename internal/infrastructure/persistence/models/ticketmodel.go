package models

type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	BoardID     uint    `gorm:"not null;uniqueIndex:idx_tickets_board_slug"`
	Title       string  `gorm:"size:200;not null"`
	Slug        string  `gorm:"size:100;not null;uniqueIndex:idx_tickets_board_slug"`
	Description string  `gorm:"type:text;not null"`
	StatusSlug  *string `gorm:"size:100;index"`
	Locked      bool    `gorm:"not null;default:false"`
	Archived    bool    `gorm:"not null;default:false;index"`
	UserID      uint    `gorm:"not null;index"`
	UserType    string  `gorm:"size:50;not null;default:User"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	UserType  string `gorm:"size:50;not null;default:User"`
	ParentID  *uint  `gorm:"index"`
	Content   string `gorm:"type:text;not null"`
	Depth     int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}
