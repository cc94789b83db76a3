package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/infrastructure/persistence/mappers"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/db"
	apperrors "soapbox/internal/shared/errors"
)

type UpvoteRepository struct {
	db     *gorm.DB
	mapper mappers.EngagementMapper
}

func NewUpvoteRepository(db *gorm.DB) *UpvoteRepository {
	return &UpvoteRepository{
		db:     db,
		mapper: mappers.NewEngagementMapper(),
	}
}

func (r *UpvoteRepository) Save(ctx context.Context, upvote *engagement.Upvote) error {
	model := r.mapper.UpvoteToModel(upvote)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save upvote: %w", err)
	}

	return upvote.SetID(model.ID)
}

func (r *UpvoteRepository) Delete(ctx context.Context, upvoteID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.UpvoteModel{}, upvoteID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete upvote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("upvote not found")
	}
	return nil
}

func (r *UpvoteRepository) Find(ctx context.Context, ref engagement.UpvotableRef, userID uint) (*engagement.Upvote, error) {
	var model models.UpvoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("upvotable_kind = ? AND upvotable_id = ? AND user_id = ?", string(ref.Kind()), ref.ID(), userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find upvote: %w", err)
	}

	return r.mapper.UpvoteToDomain(&model)
}

func (r *UpvoteRepository) Count(ctx context.Context, ref engagement.UpvotableRef) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.UpvoteModel{}).
		Where("upvotable_kind = ? AND upvotable_id = ?", string(ref.Kind()), ref.ID()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count upvotes: %w", err)
	}
	return count, nil
}

func (r *UpvoteRepository) CountMany(ctx context.Context, kind engagement.UpvotableKind, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var rows []struct {
		UpvotableID uint
		Total       int64
	}
	err := tx.Model(&models.UpvoteModel{}).
		Select("upvotable_id, COUNT(*) AS total").
		Where("upvotable_kind = ? AND upvotable_id IN ?", string(kind), ids).
		Group("upvotable_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count upvotes: %w", err)
	}

	for _, row := range rows {
		counts[row.UpvotableID] = row.Total
	}
	return counts, nil
}

func (r *UpvoteRepository) ExistsMany(ctx context.Context, kind engagement.UpvotableKind, ids []uint, userID uint) (map[uint]bool, error) {
	exists := make(map[uint]bool, len(ids))
	if len(ids) == 0 || userID == 0 {
		return exists, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var upvotedIDs []uint
	err := tx.Model(&models.UpvoteModel{}).
		Where("upvotable_kind = ? AND upvotable_id IN ? AND user_id = ?", string(kind), ids, userID).
		Pluck("upvotable_id", &upvotedIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check upvotes: %w", err)
	}

	for _, id := range upvotedIDs {
		exists[id] = true
	}
	return exists, nil
}

func (r *UpvoteRepository) DeleteByRef(ctx context.Context, ref engagement.UpvotableRef) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("upvotable_kind = ? AND upvotable_id = ?", string(ref.Kind()), ref.ID()).
		Delete(&models.UpvoteModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete upvotes: %w", err)
	}
	return nil
}
