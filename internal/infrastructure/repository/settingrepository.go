package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soapbox/internal/domain/setting"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
	"soapbox/internal/shared/db"
	apperrors "soapbox/internal/shared/errors"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := biztime.NowUTC().UnixMilli()
	model := &models.SettingModel{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("`key` = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("setting not found")
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}

	return toSetting(&model), nil
}

func (r *SettingRepository) List(ctx context.Context) ([]*setting.Setting, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var settingModels []models.SettingModel
	if err := tx.Order("`key` ASC").Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make([]*setting.Setting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = toSetting(&model)
	}
	return settings, nil
}

func toSetting(model *models.SettingModel) *setting.Setting {
	return setting.ReconstructSetting(
		model.ID,
		model.Key,
		model.Value,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
