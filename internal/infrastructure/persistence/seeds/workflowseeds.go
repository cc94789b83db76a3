// Package seeds provisions the rows a fresh installation needs before it can
// serve traffic. Every seed is idempotent and safe to run on each startup.
package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
	"soapbox/internal/shared/slug"
)

//go:embed defaultworkflow.yaml
var defaultWorkflowYAML []byte

type workflowSeed struct {
	Name     string `yaml:"name"`
	Statuses []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"statuses"`
}

// SeedDefaultWorkflow creates the default status set when no default exists
// yet. Installations that already renamed or replaced theirs are left alone.
func SeedDefaultWorkflow(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StatusSetModel{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for default status set: %w", err)
	}
	if count > 0 {
		return nil
	}

	var seed workflowSeed
	if err := yaml.Unmarshal(defaultWorkflowYAML, &seed); err != nil {
		return fmt.Errorf("failed to parse default workflow seed: %w", err)
	}

	now := biztime.NowUTC().UnixMilli()
	return db.Transaction(func(tx *gorm.DB) error {
		set := models.StatusSetModel{
			Name:      seed.Name,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(&set).Error; err != nil {
			return fmt.Errorf("failed to create default status set: %w", err)
		}

		for i, status := range seed.Statuses {
			model := models.StatusModel{
				StatusSetID: set.ID,
				Name:        status.Name,
				Slug:        slug.Generate(status.Name),
				Color:       status.Color,
				Position:    i,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create status %q: %w", status.Name, err)
			}
		}
		return nil
	})
}
