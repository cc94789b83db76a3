package ticket

import (
	"fmt"
	"time"

	"soapbox/internal/shared/biztime"
)

const maxCommentLength = 5000

// Comment is one entry in a ticket's threaded discussion. A nil parentID
// marks a thread root; depth is 0 for roots and parent depth + 1 otherwise.
type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	userType  string
	parentID  *uint
	content   string
	depth     int
	createdAt time.Time
	updatedAt time.Time
}

// NewComment creates a top-level comment when parent is nil, or a reply to
// parent otherwise. A reply's parent must belong to the same ticket.
func NewComment(ticketID, userID uint, userType, content string, parent *Comment) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}
	if userType == "" {
		userType = "User"
	}

	depth := 0
	var parentID *uint
	if parent != nil {
		if parent.TicketID() != ticketID {
			return nil, fmt.Errorf("parent comment belongs to a different ticket")
		}
		if parent.ID() == 0 {
			return nil, fmt.Errorf("parent comment has no ID")
		}
		pid := parent.ID()
		parentID = &pid
		depth = parent.Depth() + 1
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		userType:  userType,
		parentID:  parentID,
		content:   content,
		depth:     depth,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	userType string,
	parentID *uint,
	content string,
	depth int,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if depth < 0 {
		return nil, fmt.Errorf("depth cannot be negative")
	}
	if parentID == nil && depth != 0 {
		return nil, fmt.Errorf("top-level comment must have depth 0, got %d", depth)
	}
	if userType == "" {
		userType = "User"
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		userType:  userType,
		parentID:  parentID,
		content:   content,
		depth:     depth,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) UserType() string     { return c.userType }
func (c *Comment) ParentID() *uint      { return c.parentID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) Depth() int           { return c.depth }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

// IsThreadRoot reports whether the comment heads its own thread.
func (c *Comment) IsThreadRoot() bool {
	return c.parentID == nil
}

// IsReply reports whether the comment answers another comment.
func (c *Comment) IsReply() bool {
	return c.parentID != nil
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}
	c.content = content
	c.updatedAt = biztime.NowUTC()
	return nil
}
