package models

type StatusSetModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	IsDefault bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StatusSetModel) TableName() string {
	return "status_sets"
}

type StatusModel struct {
	ID          uint   `gorm:"primaryKey"`
	StatusSetID uint   `gorm:"not null;uniqueIndex:idx_statuses_set_slug"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:100;not null;uniqueIndex:idx_statuses_set_slug"`
	Color       string `gorm:"size:20;not null"`
	Position    int    `gorm:"not null;default:0"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StatusModel) TableName() string {
	return "statuses"
}
