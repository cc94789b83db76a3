// Package workflow implements the status workflow engine: ordered sets of
// named, colored statuses, validity checks for ticket status slugs, and
// default initial status computation.
package workflow

import (
	"fmt"
	"sort"
	"time"

	"soapbox/internal/shared/biztime"
)

// StatusSet is a named, ordered collection of statuses representing one
// workflow template, reusable across boards.
type StatusSet struct {
	id        uint
	name      string
	isDefault bool
	statuses  []*Status
	createdAt time.Time
	updatedAt time.Time
}

func NewStatusSet(name string, isDefault bool) (*StatusSet, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &StatusSet{
		name:      name,
		isDefault: isDefault,
		statuses:  []*Status{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStatusSet(
	id uint,
	name string,
	isDefault bool,
	statuses []*Status,
	createdAt, updatedAt time.Time,
) (*StatusSet, error) {
	if id == 0 {
		return nil, fmt.Errorf("status set ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if statuses == nil {
		statuses = []*Status{}
	}

	set := &StatusSet{
		id:        id,
		name:      name,
		isDefault: isDefault,
		statuses:  statuses,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	set.sortStatuses()
	return set, nil
}

func (ss *StatusSet) ID() uint             { return ss.id }
func (ss *StatusSet) Name() string         { return ss.name }
func (ss *StatusSet) IsDefault() bool      { return ss.isDefault }
func (ss *StatusSet) CreatedAt() time.Time { return ss.createdAt }
func (ss *StatusSet) UpdatedAt() time.Time { return ss.updatedAt }

// Statuses returns the statuses ordered by position, ties broken by
// insertion order (id).
func (ss *StatusSet) Statuses() []*Status {
	statusesCopy := make([]*Status, len(ss.statuses))
	copy(statusesCopy, ss.statuses)
	return statusesCopy
}

func (ss *StatusSet) SetID(id uint) error {
	if ss.id != 0 {
		return fmt.Errorf("status set ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status set ID cannot be zero")
	}
	ss.id = id
	return nil
}

func (ss *StatusSet) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	ss.name = name
	ss.updatedAt = biztime.NowUTC()
	return nil
}

func (ss *StatusSet) MarkDefault(isDefault bool) {
	ss.isDefault = isDefault
	ss.updatedAt = biztime.NowUTC()
}

// AddStatus attaches a status to the set, keeping position order.
func (ss *StatusSet) AddStatus(s *Status) error {
	if s == nil {
		return fmt.Errorf("status cannot be nil")
	}
	if ss.id != 0 && s.StatusSetID() != ss.id {
		return fmt.Errorf("status belongs to a different status set")
	}
	for _, existing := range ss.statuses {
		if existing.Slug() != "" && existing.Slug() == s.Slug() {
			return fmt.Errorf("status slug %q already exists in set", s.Slug())
		}
	}
	ss.statuses = append(ss.statuses, s)
	ss.sortStatuses()
	ss.updatedAt = biztime.NowUTC()
	return nil
}

// Slugs returns the ordered status slugs.
func (ss *StatusSet) Slugs() []string {
	slugs := make([]string, 0, len(ss.statuses))
	for _, s := range ss.statuses {
		slugs = append(slugs, s.Slug())
	}
	return slugs
}

// Contains reports whether a slug belongs to the set.
func (ss *StatusSet) Contains(slugValue string) bool {
	for _, s := range ss.statuses {
		if s.Slug() == slugValue {
			return true
		}
	}
	return false
}

// Default returns the lowest-position status, or nil if the set is empty.
func (ss *StatusSet) Default() *Status {
	if len(ss.statuses) == 0 {
		return nil
	}
	return ss.statuses[0]
}

// FindBySlug returns the status with the given slug, or nil.
func (ss *StatusSet) FindBySlug(slugValue string) *Status {
	for _, s := range ss.statuses {
		if s.Slug() == slugValue {
			return s
		}
	}
	return nil
}

func (ss *StatusSet) sortStatuses() {
	sort.SliceStable(ss.statuses, func(i, j int) bool {
		if ss.statuses[i].Position() != ss.statuses[j].Position() {
			return ss.statuses[i].Position() < ss.statuses[j].Position()
		}
		return ss.statuses[i].ID() < ss.statuses[j].ID()
	})
}
