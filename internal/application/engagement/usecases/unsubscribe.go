package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/engagement"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type UnsubscribeCommand struct {
	TicketID uint
	Email    string
}

type UnsubscribeResult struct {
	Outcome SubscriptionOutcome
}

type UnsubscribeUseCase struct {
	subscriptionRepo engagement.SubscriptionRepository
	logger           logger.Interface
}

func NewUnsubscribeUseCase(subscriptionRepo engagement.SubscriptionRepository, logger logger.Interface) *UnsubscribeUseCase {
	return &UnsubscribeUseCase{subscriptionRepo: subscriptionRepo, logger: logger}
}

// Execute removes an email's subscription to a ticket. Unsubscribing an
// address that never subscribed reports not_found rather than erroring, so
// the operation is safe to repeat from a stale email link.
func (uc *UnsubscribeUseCase) Execute(ctx context.Context, cmd UnsubscribeCommand) (*UnsubscribeResult, error) {
	uc.logger.Infow("executing unsubscribe use case", "ticket_id", cmd.TicketID)

	email, err := engagement.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	sub, err := uc.subscriptionRepo.Find(ctx, cmd.TicketID, email)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub == nil {
		return &UnsubscribeResult{Outcome: OutcomeNotFound}, nil
	}

	if err := uc.subscriptionRepo.Delete(ctx, sub.ID()); err != nil {
		uc.logger.Errorw("failed to delete subscription", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	uc.logger.Infow("subscription removed", "ticket_id", cmd.TicketID, "subscription_id", sub.ID())
	return &UnsubscribeResult{Outcome: OutcomeDestroyed}, nil
}
