package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTemplate(t *testing.T) {
	t.Parallel()

	tpl, err := FindTemplate("tpl-coffee-chat")
	require.NoError(t, err)
	assert.Equal(t, "Coffee Chat", tpl.Title)
	assert.Equal(t, EventTypeOneToOne, tpl.Type)

	_, err = FindTemplate("tpl-404")
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	tpl := EventTemplate{
		Id:                     "tpl-hiking",
		Title:                  "Weekend Hike",
		Description:            "Group hike.",
		Type:                   EventTypeGroup,
		DefaultLocation:        "Eagle Peak Trailhead",
		DefaultTime:            "08:00",
		DefaultMaxParticipants: 12,
		Tags:                   []string{"Weekend Hike", "Outdoors"},
		BannerImage:            "https://example.com/hike.jpg",
	}

	t.Run("seeds an empty draft", func(t *testing.T) {
		t.Parallel()

		draft := ApplyTemplate(EventDraft{TemplateId: tpl.Id}, tpl)

		assert.Equal(t, "Weekend Hike", draft.Title)
		assert.Equal(t, "Eagle Peak Trailhead", draft.Location)
		assert.Equal(t, "08:00", draft.Time)
		assert.Equal(t, EventTypeGroup, draft.Type)
		assert.Equal(t, 12, draft.MaxParticipants)
		assert.Equal(t, []string{"Weekend Hike", "Outdoors"}, draft.Tags)
		assert.Equal(t, "https://example.com/hike.jpg", draft.Image)
	})

	t.Run("user edits win over presets", func(t *testing.T) {
		t.Parallel()

		draft := ApplyTemplate(EventDraft{
			TemplateId:      tpl.Id,
			Title:           "Sunrise Hike",
			Time:            "06:00",
			MaxParticipants: 6,
		}, tpl)

		assert.Equal(t, "Sunrise Hike", draft.Title)
		assert.Equal(t, "06:00", draft.Time)
		assert.Equal(t, 6, draft.MaxParticipants)
		// Untouched fields still come from the template.
		assert.Equal(t, "Eagle Peak Trailhead", draft.Location)
	})
}

func TestTemplatesCatalog(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, tpl := range Templates() {
		assert.NotEmpty(t, tpl.Id)
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.DefaultTime)
		assert.False(t, seen[tpl.Id], "duplicate template id %s", tpl.Id)
		seen[tpl.Id] = true

		if tpl.Type == EventTypeGroup {
			assert.Positive(t, tpl.DefaultMaxParticipants)
		}
	}
}
