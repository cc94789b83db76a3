package workflow

import (
	"fmt"
	"time"

	"soapbox/internal/shared/biztime"
	"soapbox/internal/shared/slug"
)

// Status is one named, colored, ordered stage in a workflow. Its slug is
// unique within the owning status set.
type Status struct {
	id          uint
	statusSetID uint
	name        string
	slug        string
	color       Color
	position    int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStatus(statusSetID uint, name string, color Color, position int) (*Status, error) {
	if statusSetID == 0 {
		return nil, fmt.Errorf("status set ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !color.IsValid() {
		return nil, fmt.Errorf("invalid status color: %s", color)
	}
	if position < 0 {
		return nil, fmt.Errorf("position cannot be negative")
	}

	now := biztime.NowUTC()
	return &Status{
		statusSetID: statusSetID,
		name:        name,
		color:       color,
		position:    position,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructStatus(
	id uint,
	statusSetID uint,
	name string,
	slugValue string,
	color Color,
	position int,
	createdAt, updatedAt time.Time,
) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if statusSetID == 0 {
		return nil, fmt.Errorf("status set ID is required")
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid status slug: %q", slugValue)
	}
	if !color.IsValid() {
		return nil, fmt.Errorf("invalid status color: %s", color)
	}

	return &Status{
		id:          id,
		statusSetID: statusSetID,
		name:        name,
		slug:        slugValue,
		color:       color,
		position:    position,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Status) ID() uint             { return s.id }
func (s *Status) StatusSetID() uint    { return s.statusSetID }
func (s *Status) Name() string         { return s.name }
func (s *Status) Slug() string         { return s.slug }
func (s *Status) Color() Color         { return s.color }
func (s *Status) Position() int        { return s.position }
func (s *Status) CreatedAt() time.Time { return s.createdAt }
func (s *Status) UpdatedAt() time.Time { return s.updatedAt }

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) SetSlug(slugValue string) error {
	if !slug.IsValid(slugValue) {
		return fmt.Errorf("invalid status slug: %q", slugValue)
	}
	s.slug = slugValue
	return nil
}

// NeedsSlug reports whether a slug must be (re)generated before saving.
func (s *Status) NeedsSlug() bool {
	return s.slug == ""
}

// Rename changes the status name, clearing the slug for regeneration when
// the name actually changed.
func (s *Status) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if name == s.name {
		return nil
	}
	s.name = name
	s.slug = ""
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Status) ChangeColor(color Color) error {
	if !color.IsValid() {
		return fmt.Errorf("invalid status color: %s", color)
	}
	s.color = color
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Status) Reposition(position int) error {
	if position < 0 {
		return fmt.Errorf("position cannot be negative")
	}
	s.position = position
	s.updatedAt = biztime.NowUTC()
	return nil
}
