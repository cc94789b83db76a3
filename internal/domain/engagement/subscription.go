package engagement

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"soapbox/internal/shared/biztime"
)

// Subscription attaches an email address to a ticket so the address receives
// notifications about new comments. One address subscribes to one ticket at
// most once.
type Subscription struct {
	id           uint
	ticketID     uint
	email        string
	lastViewedAt time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSubscription(ticketID uint, email string) (*Subscription, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket id is required")
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Subscription{
		ticketID:     ticketID,
		email:        normalized,
		lastViewedAt: now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructSubscription(id, ticketID uint, email string, lastViewedAt, createdAt, updatedAt time.Time) *Subscription {
	return &Subscription{
		id:           id,
		ticketID:     ticketID,
		email:        email,
		lastViewedAt: biztime.ToUTC(lastViewedAt),
		createdAt:    biztime.ToUTC(createdAt),
		updatedAt:    biztime.ToUTC(updatedAt),
	}
}

// NormalizeEmail lowercases and validates an address the same way
// NewSubscription does, for lookups that must match stored rows.
func NormalizeEmail(email string) (string, error) {
	return normalizeEmail(email)
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(strings.ToLower(email))
	if trimmed == "" {
		return "", fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", fmt.Errorf("invalid email address: %s", email)
	}
	return trimmed, nil
}

func (s *Subscription) ID() uint                { return s.id }
func (s *Subscription) TicketID() uint          { return s.ticketID }
func (s *Subscription) Email() string           { return s.email }
func (s *Subscription) LastViewedAt() time.Time { return s.lastViewedAt }
func (s *Subscription) CreatedAt() time.Time    { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time    { return s.updatedAt }

// Touch records that the subscriber viewed the ticket, so later
// notifications can skip comments the subscriber already saw.
func (s *Subscription) Touch() {
	now := biztime.NowUTC()
	s.lastViewedAt = now
	s.updatedAt = now
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	s.id = id
	return nil
}
