package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_ResolveAttendees(t *testing.T) {
	t.Parallel()

	directory := NewDirectory([]Contact{
		{Id: "user-1", Name: "Sarah Chen"},
		{Id: "user-2", Name: "Marcus Johnson"},
	})

	t.Run("selection order is preserved", func(t *testing.T) {
		t.Parallel()

		attendees := directory.ResolveAttendees([]string{"user-2", "user-1"})

		require.Len(t, attendees, 2)
		assert.Equal(t, "Marcus Johnson", attendees[0].Name)
		assert.Equal(t, "Sarah Chen", attendees[1].Name)

		for _, a := range attendees {
			assert.Equal(t, AttendeeStatusPending, a.Status)
		}
	})

	t.Run("unknown ids degrade to placeholder", func(t *testing.T) {
		t.Parallel()

		attendees := directory.ResolveAttendees([]string{"user-404"})

		require.Len(t, attendees, 1)
		assert.Equal(t, EventAttendee{Id: "user-404", Name: PlaceholderInviteeName, Status: AttendeeStatusPending}, attendees[0])
	})

	t.Run("empty selection", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, directory.ResolveAttendees(nil))
	})
}

func TestDirectory_Contacts(t *testing.T) {
	t.Parallel()

	directory := NewDirectory([]Contact{
		{Id: "user-1", Name: "Sarah Chen"},
		{Id: "user-1", Name: "Duplicate"},
		{Id: "user-2", Name: "Marcus Johnson"},
	})

	contacts := directory.Contacts()
	require.Len(t, contacts, 2)
	assert.Equal(t, "Sarah Chen", contacts[0].Name)

	// The returned slice is a copy.
	contacts[0].Name = "Mutated"
	assert.Equal(t, "Sarah Chen", directory.Contacts()[0].Name)
}

func TestSelfAttendee(t *testing.T) {
	t.Parallel()

	self := SelfAttendee()
	assert.Equal(t, SelfAttendeeID, self.Id)
	assert.Equal(t, "You", self.Name)
	assert.Equal(t, AttendeeStatusAccepted, self.Status)
}
