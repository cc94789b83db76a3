package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	zero := uint(0)
	one := uint(1)

	tests := []struct {
		name        string
		boardName   string
		statusSetID *uint
		wantErr     bool
	}{
		{name: "valid without workflow", boardName: "Feature Requests"},
		{name: "valid with workflow", boardName: "Bugs", statusSetID: &one},
		{name: "empty name", boardName: "", wantErr: true},
		{name: "name too long", boardName: strings.Repeat("x", 101), wantErr: true},
		{name: "zero status set", boardName: "Bugs", statusSetID: &zero, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.boardName, "", tt.statusSetID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.boardName, b.Name())
			assert.True(t, b.NeedsSlug())
			assert.Equal(t, "ticket", b.ItemLabel())
			assert.Equal(t, tt.statusSetID != nil, b.HasStatusTracking())
			assert.False(t, b.EnforcesSingleView())
		})
	}
}

func TestBoard_Rename(t *testing.T) {
	b, err := NewBoard("Feature Requests", "", nil)
	require.NoError(t, err)
	require.NoError(t, b.SetSlug("feature-requests"))

	t.Run("same name keeps slug", func(t *testing.T) {
		require.NoError(t, b.Rename("Feature Requests"))
		assert.Equal(t, "feature-requests", b.Slug())
	})

	t.Run("new name clears slug", func(t *testing.T) {
		require.NoError(t, b.Rename("Ideas"))
		assert.True(t, b.NeedsSlug())
	})
}

func TestBoard_SetSingleView(t *testing.T) {
	b, err := NewBoard("Roadmap", "", nil)
	require.NoError(t, err)

	card := ViewCard
	require.NoError(t, b.SetSingleView(&card))
	assert.True(t, b.EnforcesSingleView())
	assert.Equal(t, ViewCard, *b.SingleView())

	bogus := ViewType("grid")
	assert.Error(t, b.SetSingleView(&bogus))

	require.NoError(t, b.SetSingleView(nil))
	assert.False(t, b.EnforcesSingleView())
}

func TestBoard_Metadata_CopiesOut(t *testing.T) {
	b, err := NewBoard("Roadmap", "", nil)
	require.NoError(t, err)

	m := b.Metadata()
	m["theme"] = "dark"
	assert.Empty(t, b.Metadata())
}

func TestBoard_AssignStatusSet(t *testing.T) {
	b, err := NewBoard("Roadmap", "", nil)
	require.NoError(t, err)

	one := uint(1)
	require.NoError(t, b.AssignStatusSet(&one))
	assert.True(t, b.HasStatusTracking())

	zero := uint(0)
	assert.Error(t, b.AssignStatusSet(&zero))

	require.NoError(t, b.AssignStatusSet(nil))
	assert.False(t, b.HasStatusTracking())
}

func TestNormalizeViewType(t *testing.T) {
	tests := []struct {
		raw  string
		want ViewType
	}{
		{raw: "list", want: ViewList},
		{raw: "card", want: ViewCard},
		{raw: "", want: ViewCard},
		{raw: "LIST", want: ViewCard},
		{raw: "grid", want: ViewCard},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeViewType(tt.raw))
		})
	}
}
