package setting

import (
	"fmt"
	"time"

	"soapbox/internal/shared/biztime"
)

// Known setting keys.
const (
	KeySiteName         = "site_name"
	KeySiteDescription  = "site_description"
	KeyDefaultBoardSlug = "default_board_slug"
	KeyAllowAnonVotes   = "allow_anonymous_votes"
)

// Setting is one key/value pair of site-wide configuration stored in the
// database rather than the config file, so hosts can change it at runtime.
type Setting struct {
	id        uint
	key       string
	value     string
	createdAt time.Time
	updatedAt time.Time
}

func NewSetting(key, value string) (*Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}
	now := biztime.NowUTC()
	return &Setting{
		key:       key,
		value:     value,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSetting(id uint, key, value string, createdAt, updatedAt time.Time) *Setting {
	return &Setting{
		id:        id,
		key:       key,
		value:     value,
		createdAt: biztime.ToUTC(createdAt),
		updatedAt: biztime.ToUTC(updatedAt),
	}
}

func (s *Setting) ID() uint             { return s.id }
func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) CreatedAt() time.Time { return s.createdAt }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func (s *Setting) UpdateValue(value string) {
	if s.value == value {
		return
	}
	s.value = value
	s.updatedAt = biztime.NowUTC()
}

func (s *Setting) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("setting ID already set")
	}
	s.id = id
	return nil
}
