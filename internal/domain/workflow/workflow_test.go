package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStatus(t *testing.T, id uint, setID uint, name, slugValue string, color Color, position int) *Status {
	t.Helper()
	now := time.Now().UTC()
	s, err := ReconstructStatus(id, setID, name, slugValue, color, position, now, now)
	require.NoError(t, err)
	return s
}

func buildSet(t *testing.T, statuses ...*Status) *StatusSet {
	t.Helper()
	now := time.Now().UTC()
	set, err := ReconstructStatusSet(1, "Default workflow", true, statuses, now, now)
	require.NoError(t, err)
	return set
}

func TestStatusSet_OrderedByPosition(t *testing.T) {
	set := buildSet(t,
		mustStatus(t, 3, 1, "Complete", "complete", ColorGreen, 2),
		mustStatus(t, 1, 1, "Open", "open", ColorBlue, 0),
		mustStatus(t, 2, 1, "In Progress", "in-progress", ColorYellow, 1),
	)

	assert.Equal(t, []string{"open", "in-progress", "complete"}, set.Slugs())
}

func TestStatusSet_PositionTiesBrokenByInsertionOrder(t *testing.T) {
	set := buildSet(t,
		mustStatus(t, 2, 1, "Second", "second", ColorBlue, 0),
		mustStatus(t, 1, 1, "First", "first", ColorBlue, 0),
	)

	assert.Equal(t, []string{"first", "second"}, set.Slugs())
}

func TestStatusSet_Default(t *testing.T) {
	set := buildSet(t,
		mustStatus(t, 2, 1, "Closed", "closed", ColorGray, 5),
		mustStatus(t, 1, 1, "Open", "open", ColorGreen, 1),
	)

	def := set.Default()
	require.NotNil(t, def)
	assert.Equal(t, "open", def.Slug())
}

func TestIsValidTicketStatus(t *testing.T) {
	openClosed := buildSet(t,
		mustStatus(t, 1, 1, "Open", "open", ColorGreen, 0),
		mustStatus(t, 2, 1, "Closed", "closed", ColorGray, 1),
	)

	open := "open"
	closed := "closed"
	bogus := "bogus"

	tests := []struct {
		name  string
		set   *StatusSet
		slug  *string
		valid bool
	}{
		{"open is valid", openClosed, &open, true},
		{"closed is valid", openClosed, &closed, true},
		{"bogus is invalid", openClosed, &bogus, false},
		{"nil is invalid with a set", openClosed, nil, false},
		{"nil is valid without a set", nil, nil, true},
		{"anything is invalid without a set", nil, &open, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidTicketStatus(tt.set, tt.slug))
		})
	}
}

func TestDefaultStatusSlug(t *testing.T) {
	set := buildSet(t,
		mustStatus(t, 1, 1, "Planned", "planned", ColorPurple, 1),
		mustStatus(t, 2, 1, "Open", "open", ColorGreen, 0),
	)

	got := DefaultStatusSlug(set)
	require.NotNil(t, got)
	assert.Equal(t, "open", *got)

	assert.Nil(t, DefaultStatusSlug(nil))

	empty := buildSet(t)
	assert.Nil(t, DefaultStatusSlug(empty))
}

func TestStatusesFor_NilSet(t *testing.T) {
	assert.Empty(t, StatusesFor(nil))
}

func TestColor_Validation(t *testing.T) {
	assert.True(t, ColorGreen.IsValid())
	assert.True(t, ColorPink.IsValid())
	assert.False(t, Color("magenta").IsValid())
}

func TestColor_CSSClassFallsBackToGray(t *testing.T) {
	assert.Equal(t, "bg-blue-100 text-blue-800", ColorBlue.CSSClass())
	assert.Equal(t, ColorGray.CSSClass(), Color("magenta").CSSClass())
}

func TestNewStatus_Validation(t *testing.T) {
	_, err := NewStatus(0, "Open", ColorGreen, 0)
	assert.Error(t, err)

	_, err = NewStatus(1, "", ColorGreen, 0)
	assert.Error(t, err)

	_, err = NewStatus(1, "Open", Color("magenta"), 0)
	assert.Error(t, err)

	_, err = NewStatus(1, "Open", ColorGreen, -1)
	assert.Error(t, err)
}

func TestStatus_RenameClearsSlugOnlyOnChange(t *testing.T) {
	s := mustStatus(t, 1, 1, "Open", "open", ColorGreen, 0)

	require.NoError(t, s.Rename("Open"))
	assert.Equal(t, "open", s.Slug())
	assert.False(t, s.NeedsSlug())

	require.NoError(t, s.Rename("Reopened"))
	assert.True(t, s.NeedsSlug())
}

func TestStatusSet_AddStatusRejectsDuplicateSlug(t *testing.T) {
	set := buildSet(t, mustStatus(t, 1, 1, "Open", "open", ColorGreen, 0))

	err := set.AddStatus(mustStatus(t, 2, 1, "Open Again", "open", ColorBlue, 1))
	assert.Error(t, err)
}
