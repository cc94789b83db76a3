package ticket

import (
	"fmt"
	"time"

	"soapbox/internal/shared/biztime"
	"soapbox/internal/shared/slug"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 10000
)

// Ticket is a user-submitted feedback item scoped to a board. Its status
// slug, when set, must belong to the owning board's status set; archiving
// soft-removes the ticket and implies it is locked for voting and commenting.
type Ticket struct {
	id          uint
	title       string
	slug        string
	description string
	statusSlug  *string
	locked      bool
	archived    bool
	boardID     uint
	userID      uint
	userType    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description string, boardID, userID uint, userType string) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if boardID == 0 {
		return nil, fmt.Errorf("board ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if userType == "" {
		userType = "User"
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		boardID:     boardID,
		userID:      userID,
		userType:    userType,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	slugValue string,
	description string,
	statusSlug *string,
	locked bool,
	archived bool,
	boardID uint,
	userID uint,
	userType string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid ticket slug: %q", slugValue)
	}
	if boardID == 0 {
		return nil, fmt.Errorf("board ID is required")
	}
	if userType == "" {
		userType = "User"
	}

	return &Ticket{
		id:          id,
		title:       title,
		slug:        slugValue,
		description: description,
		statusSlug:  statusSlug,
		locked:      locked,
		archived:    archived,
		boardID:     boardID,
		userID:      userID,
		userType:    userType,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint            { return t.id }
func (t *Ticket) Title() string       { return t.title }
func (t *Ticket) Slug() string        { return t.slug }
func (t *Ticket) Description() string { return t.description }
func (t *Ticket) StatusSlug() *string { return t.statusSlug }
func (t *Ticket) Locked() bool        { return t.locked }
func (t *Ticket) Archived() bool      { return t.archived }
func (t *Ticket) BoardID() uint       { return t.boardID }
func (t *Ticket) UserID() uint        { return t.userID }
func (t *Ticket) UserType() string    { return t.userType }

func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetSlug(s string) error {
	if !slug.IsValid(s) {
		return fmt.Errorf("invalid ticket slug: %q", s)
	}
	t.slug = s
	return nil
}

// NeedsSlug reports whether a slug must be (re)generated before saving.
func (t *Ticket) NeedsSlug() bool {
	return t.slug == ""
}

// Retitle changes the title; the slug is cleared for regeneration only when
// the title actually changed.
func (t *Ticket) Retitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if title == t.title {
		return nil
	}
	t.title = title
	t.slug = ""
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

// SetStatusSlug assigns the ticket's status. Validity against the board's
// status set is the caller's responsibility; the entity only records the
// value.
func (t *Ticket) SetStatusSlug(statusSlug *string) {
	t.statusSlug = statusSlug
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) Lock() {
	t.locked = true
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) Unlock() {
	t.locked = false
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) Archive() {
	t.archived = true
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) Unarchive() {
	t.archived = false
	t.updatedAt = biztime.NowUTC()
}

// AcceptsComments reports whether new comments and replies are allowed.
// Archived tickets are effectively locked.
func (t *Ticket) AcceptsComments() bool {
	return !t.locked && !t.archived
}

// AcceptsVotes reports whether upvote toggling is allowed.
func (t *Ticket) AcceptsVotes() bool {
	return !t.archived
}
