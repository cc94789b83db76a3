package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soapbox/internal/domain/workflow"
	"soapbox/internal/infrastructure/persistence/mappers"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/db"
	apperrors "soapbox/internal/shared/errors"
)

type WorkflowRepository struct {
	db     *gorm.DB
	mapper mappers.WorkflowMapper
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{
		db:     db,
		mapper: mappers.NewWorkflowMapper(),
	}
}

func (r *WorkflowRepository) SaveSet(ctx context.Context, set *workflow.StatusSet) error {
	model := r.mapper.SetToModel(set)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status set: %w", err)
	}

	return set.SetID(model.ID)
}

func (r *WorkflowRepository) UpdateSet(ctx context.Context, set *workflow.StatusSet) error {
	model := r.mapper.SetToModel(set)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StatusSetModel{}).
		Where("id = ?", model.ID).
		Select("Name", "IsDefault", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update status set: %w", result.Error)
	}

	return nil
}

func (r *WorkflowRepository) DeleteSet(ctx context.Context, setID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.StatusSetModel{}, setID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete status set: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("status set not found")
	}
	return nil
}

func (r *WorkflowRepository) GetSetByID(ctx context.Context, setID uint) (*workflow.StatusSet, error) {
	var model models.StatusSetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, setID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("status set not found")
		}
		return nil, fmt.Errorf("failed to find status set: %w", err)
	}

	statuses, err := r.loadStatuses(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	return r.mapper.SetToDomain(&model, statuses)
}

func (r *WorkflowRepository) GetDefaultSet(ctx context.Context) (*workflow.StatusSet, error) {
	var model models.StatusSetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_default = ?", true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("no default status set configured")
		}
		return nil, fmt.Errorf("failed to find default status set: %w", err)
	}

	statuses, err := r.loadStatuses(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	return r.mapper.SetToDomain(&model, statuses)
}

func (r *WorkflowRepository) ListSets(ctx context.Context) ([]*workflow.StatusSet, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var setModels []models.StatusSetModel
	if err := tx.Order("name ASC").Find(&setModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list status sets: %w", err)
	}

	sets := make([]*workflow.StatusSet, len(setModels))
	for i, model := range setModels {
		statuses, err := r.loadStatuses(ctx, model.ID)
		if err != nil {
			return nil, err
		}
		set, err := r.mapper.SetToDomain(&model, statuses)
		if err != nil {
			return nil, err
		}
		sets[i] = set
	}

	return sets, nil
}

func (r *WorkflowRepository) SaveStatus(ctx context.Context, status *workflow.Status) error {
	model := r.mapper.StatusToModel(status)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return status.SetID(model.ID)
}

func (r *WorkflowRepository) UpdateStatus(ctx context.Context, status *workflow.Status) error {
	model := r.mapper.StatusToModel(status)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StatusModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Slug", "Color", "Position", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	return nil
}

func (r *WorkflowRepository) DeleteStatus(ctx context.Context, statusID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.StatusModel{}, statusID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("status not found")
	}
	return nil
}

func (r *WorkflowRepository) GetStatusByID(ctx context.Context, statusID uint) (*workflow.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, statusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("status not found")
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *WorkflowRepository) GetStatusBySlug(ctx context.Context, setID uint, slugValue string) (*workflow.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("status_set_id = ? AND slug = ?", setID, slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("status not found")
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *WorkflowRepository) StatusSlugInUse(ctx context.Context, setID uint, slugValue string, excludeID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	query := tx.Model(&models.StatusModel{}).Where("status_set_id = ? AND slug = ?", setID, slugValue)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check status slug: %w", err)
	}
	return count > 0, nil
}

func (r *WorkflowRepository) loadStatuses(ctx context.Context, setID uint) ([]*workflow.Status, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var statusModels []models.StatusModel
	if err := tx.
		Where("status_set_id = ?", setID).
		Order("position ASC, id ASC").
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}

	statuses := make([]*workflow.Status, len(statusModels))
	for i, model := range statusModels {
		s, err := r.mapper.StatusToDomain(&model)
		if err != nil {
			return nil, err
		}
		statuses[i] = s
	}
	return statuses, nil
}
