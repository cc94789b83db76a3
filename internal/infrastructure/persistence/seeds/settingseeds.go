package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
)

// SeedDefaultSettings inserts the site settings a fresh installation starts
// with. Existing keys keep whatever value the operator set.
func SeedDefaultSettings(db *gorm.DB) error {
	now := biztime.NowUTC().UnixMilli()
	defaults := []models.SettingModel{
		{Key: "site_name", Value: "Soapbox", CreatedAt: now, UpdatedAt: now},
		{Key: "site_description", Value: "Share feedback and track what we're building.", CreatedAt: now, UpdatedAt: now},
		{Key: "default_board_slug", Value: "", CreatedAt: now, UpdatedAt: now},
		{Key: "allow_anonymous_votes", Value: "false", CreatedAt: now, UpdatedAt: now},
	}

	for _, setting := range defaults {
		err := db.Where(models.SettingModel{Key: setting.Key}).
			FirstOrCreate(&setting).Error
		if err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", setting.Key, err)
		}
	}

	return nil
}
