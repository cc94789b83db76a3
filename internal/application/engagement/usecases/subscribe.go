package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

// SubscriptionOutcome tells the caller whether a subscribe call created a new
// row or refreshed an existing one, and whether an unsubscribe found anything
// to remove.
type SubscriptionOutcome string

const (
	OutcomeCreated   SubscriptionOutcome = "created"
	OutcomeUpdated   SubscriptionOutcome = "updated"
	OutcomeDestroyed SubscriptionOutcome = "destroyed"
	OutcomeNotFound  SubscriptionOutcome = "not_found"
)

type SubscribeCommand struct {
	TicketID uint
	Email    string
}

type SubscribeResult struct {
	Outcome SubscriptionOutcome
	Email   string
}

type SubscribeUseCase struct {
	subscriptionRepo engagement.SubscriptionRepository
	ticketRepo       ticket.Repository
	logger           logger.Interface
}

func NewSubscribeUseCase(
	subscriptionRepo engagement.SubscriptionRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		subscriptionRepo: subscriptionRepo,
		ticketRepo:       ticketRepo,
		logger:           logger,
	}
}

// Execute subscribes an email address to a ticket. Subscribing twice is not
// an error: the existing subscription is touched and reported as updated,
// which also covers losing a duplicate-insert race.
func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*SubscribeResult, error) {
	uc.logger.Infow("executing subscribe use case", "ticket_id", cmd.TicketID)

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	sub, err := engagement.NewSubscription(cmd.TicketID, cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := uc.subscriptionRepo.Find(ctx, cmd.TicketID, sub.Email())
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if existing != nil {
		return uc.refresh(ctx, existing)
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		if !apperrors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save subscription", "ticket_id", cmd.TicketID, "error", err)
			return nil, fmt.Errorf("failed to save subscription: %w", err)
		}
		// A concurrent subscribe beat this one; fall back to refreshing it.
		existing, err := uc.subscriptionRepo.Find(ctx, cmd.TicketID, sub.Email())
		if err != nil || existing == nil {
			uc.logger.Errorw("failed to recover from duplicate subscription", "ticket_id", cmd.TicketID, "error", err)
			return nil, apperrors.NewConflictError("subscription already exists")
		}
		return uc.refresh(ctx, existing)
	}

	uc.logger.Infow("subscription created", "ticket_id", cmd.TicketID, "subscription_id", sub.ID())
	return &SubscribeResult{Outcome: OutcomeCreated, Email: sub.Email()}, nil
}

func (uc *SubscribeUseCase) refresh(ctx context.Context, sub *engagement.Subscription) (*SubscribeResult, error) {
	sub.Touch()
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to refresh subscription", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to refresh subscription: %w", err)
	}
	return &SubscribeResult{Outcome: OutcomeUpdated, Email: sub.Email()}, nil
}
