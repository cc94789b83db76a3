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

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.EngagementMapper
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewEngagementMapper(),
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *engagement.Subscription) error {
	model := r.mapper.SubscriptionToModel(sub)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return sub.SetID(model.ID)
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *engagement.Subscription) error {
	model := r.mapper.SubscriptionToModel(sub)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Select("LastViewedAt", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, subscriptionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SubscriptionModel{}, subscriptionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription not found")
	}
	return nil
}

func (r *SubscriptionRepository) Find(ctx context.Context, ticketID uint, email string) (*engagement.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("ticket_id = ? AND email = ?", ticketID, email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.SubscriptionToDomain(&model), nil
}

func (r *SubscriptionRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*engagement.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var subModels []models.SubscriptionModel
	if err := tx.Where("ticket_id = ?", ticketID).Find(&subModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*engagement.Subscription, len(subModels))
	for i, model := range subModels {
		subs[i] = r.mapper.SubscriptionToDomain(&model)
	}
	return subs, nil
}

func (r *SubscriptionRepository) DeleteByTicket(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.SubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	return nil
}
