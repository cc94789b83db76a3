package board

import (
	"fmt"
	"time"

	"soapbox/internal/shared/biztime"
	"soapbox/internal/shared/slug"
)

const maxNameLength = 100

// Board is a named container scoping tickets and an optional status workflow.
type Board struct {
	id          uint
	name        string
	slug        string
	description string
	statusSetID *uint
	singleView  *ViewType
	adminOnly   bool
	itemLabel   string
	metadata    map[string]interface{}
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBoard(name, description string, statusSetID *uint) (*Board, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if statusSetID != nil && *statusSetID == 0 {
		return nil, fmt.Errorf("status set ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Board{
		name:        name,
		description: description,
		statusSetID: statusSetID,
		itemLabel:   "ticket",
		metadata:    make(map[string]interface{}),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBoard(
	id uint,
	name string,
	slugValue string,
	description string,
	statusSetID *uint,
	singleView *ViewType,
	adminOnly bool,
	itemLabel string,
	metadata map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Board, error) {
	if id == 0 {
		return nil, fmt.Errorf("board ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !slug.IsValid(slugValue) {
		return nil, fmt.Errorf("invalid board slug: %q", slugValue)
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	if itemLabel == "" {
		itemLabel = "ticket"
	}

	return &Board{
		id:          id,
		name:        name,
		slug:        slugValue,
		description: description,
		statusSetID: statusSetID,
		singleView:  singleView,
		adminOnly:   adminOnly,
		itemLabel:   itemLabel,
		metadata:    metadata,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (b *Board) ID() uint              { return b.id }
func (b *Board) Name() string          { return b.name }
func (b *Board) Slug() string          { return b.slug }
func (b *Board) Description() string   { return b.description }
func (b *Board) StatusSetID() *uint    { return b.statusSetID }
func (b *Board) SingleView() *ViewType { return b.singleView }
func (b *Board) AdminOnly() bool       { return b.adminOnly }
func (b *Board) ItemLabel() string     { return b.itemLabel }
func (b *Board) CreatedAt() time.Time  { return b.createdAt }
func (b *Board) UpdatedAt() time.Time  { return b.updatedAt }

func (b *Board) Metadata() map[string]interface{} {
	metadataCopy := make(map[string]interface{}, len(b.metadata))
	for k, v := range b.metadata {
		metadataCopy[k] = v
	}
	return metadataCopy
}

// HasStatusTracking reports whether tickets on this board carry a status.
func (b *Board) HasStatusTracking() bool {
	return b.statusSetID != nil
}

// EnforcesSingleView reports whether the board forces a fixed view mode,
// which disables the list/card toggle.
func (b *Board) EnforcesSingleView() bool {
	return b.singleView != nil
}

func (b *Board) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("board ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("board ID cannot be zero")
	}
	b.id = id
	return nil
}

// SetSlug assigns the generated slug. Slugs are immutable once assigned
// unless the name changes; see Rename.
func (b *Board) SetSlug(s string) error {
	if !slug.IsValid(s) {
		return fmt.Errorf("invalid board slug: %q", s)
	}
	b.slug = s
	return nil
}

// NeedsSlug reports whether a slug must be (re)generated before saving.
func (b *Board) NeedsSlug() bool {
	return b.slug == ""
}

// Rename changes the board name. When the name actually changes the slug is
// cleared so the caller regenerates it; edits to other fields never touch
// the slug.
func (b *Board) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if name == b.name {
		return nil
	}
	b.name = name
	b.slug = ""
	b.updatedAt = biztime.NowUTC()
	return nil
}

func (b *Board) UpdateDescription(description string) {
	b.description = description
	b.updatedAt = biztime.NowUTC()
}

func (b *Board) SetSingleView(v *ViewType) error {
	if v != nil {
		if _, ok := ParseViewType(string(*v)); !ok {
			return fmt.Errorf("invalid view type: %q", *v)
		}
	}
	b.singleView = v
	b.updatedAt = biztime.NowUTC()
	return nil
}

func (b *Board) SetAdminOnly(adminOnly bool) {
	b.adminOnly = adminOnly
	b.updatedAt = biztime.NowUTC()
}

func (b *Board) SetItemLabel(label string) {
	if label == "" {
		label = "ticket"
	}
	b.itemLabel = label
	b.updatedAt = biztime.NowUTC()
}

// AssignStatusSet switches the board's workflow. Validity of existing
// ticket statuses against the new set is the caller's concern.
func (b *Board) AssignStatusSet(statusSetID *uint) error {
	if statusSetID != nil && *statusSetID == 0 {
		return fmt.Errorf("status set ID cannot be zero")
	}
	b.statusSetID = statusSetID
	b.updatedAt = biztime.NowUTC()
	return nil
}
