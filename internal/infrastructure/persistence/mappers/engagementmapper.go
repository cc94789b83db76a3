package mappers

import (
	"fmt"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
)

// EngagementMapper handles the conversion between upvote/subscription domain
// entities and persistence models.
type EngagementMapper interface {
	UpvoteToModel(u *engagement.Upvote) *models.UpvoteModel
	UpvoteToDomain(model *models.UpvoteModel) (*engagement.Upvote, error)
	SubscriptionToModel(s *engagement.Subscription) *models.SubscriptionModel
	SubscriptionToDomain(model *models.SubscriptionModel) *engagement.Subscription
}

type EngagementMapperImpl struct{}

func NewEngagementMapper() EngagementMapper {
	return &EngagementMapperImpl{}
}

func (m *EngagementMapperImpl) UpvoteToModel(u *engagement.Upvote) *models.UpvoteModel {
	return &models.UpvoteModel{
		ID:            u.ID(),
		UpvotableKind: string(u.Ref().Kind()),
		UpvotableID:   u.Ref().ID(),
		UserID:        u.UserID(),
		UserType:      u.UserType(),
		CreatedAt:     u.CreatedAt().UnixMilli(),
	}
}

func (m *EngagementMapperImpl) UpvoteToDomain(model *models.UpvoteModel) (*engagement.Upvote, error) {
	ref, err := engagement.NewUpvotableRef(engagement.UpvotableKind(model.UpvotableKind), model.UpvotableID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored upvote (id=%d): %w", model.ID, err)
	}
	return engagement.ReconstructUpvote(
		model.ID,
		ref,
		model.UserID,
		model.UserType,
		biztime.FromMillis(model.CreatedAt),
	), nil
}

func (m *EngagementMapperImpl) SubscriptionToModel(s *engagement.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:           s.ID(),
		TicketID:     s.TicketID(),
		Email:        s.Email(),
		LastViewedAt: s.LastViewedAt().UnixMilli(),
		CreatedAt:    s.CreatedAt().UnixMilli(),
		UpdatedAt:    s.UpdatedAt().UnixMilli(),
	}
}

func (m *EngagementMapperImpl) SubscriptionToDomain(model *models.SubscriptionModel) *engagement.Subscription {
	return engagement.ReconstructSubscription(
		model.ID,
		model.TicketID,
		model.Email,
		biztime.FromMillis(model.LastViewedAt),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
