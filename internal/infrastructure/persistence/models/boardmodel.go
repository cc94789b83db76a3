package models

import "gorm.io/datatypes"

type BoardModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null"`
	Slug        string         `gorm:"uniqueIndex;size:100;not null"`
	Description string         `gorm:"type:text"`
	StatusSetID *uint          `gorm:"index"`
	SingleView  *string        `gorm:"size:20"`
	AdminOnly   bool           `gorm:"not null;default:false"`
	ItemLabel   string         `gorm:"size:50;not null;default:ticket"`
	Metadata    datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (BoardModel) TableName() string {
	return "boards"
}
