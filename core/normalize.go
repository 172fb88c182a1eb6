package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	oneToOneCapacity     = 2
	defaultGroupCapacity = 10
)

// BuildEventInputs converts one authoring draft into the normalized
// inputs handed to the store: exactly one input for a non-recurring
// draft, one per expanded date otherwise. All inputs of a recurring
// series share every field except the date. Expansion never yields an
// empty result here: when filtering discards every candidate, the
// draft falls back to a single input on its original start date.
func BuildEventInputs(draft EventDraft, directory *Directory) []NewEventInput {
	if draft.Type == "" {
		draft.Type = EventTypeActivity
	}

	attendees := append([]EventAttendee{SelfAttendee()}, directory.ResolveAttendees(draft.Invitees)...)

	base := NewEventInput{
		Title:           draft.Title,
		Date:            draft.Date,
		Time:            FormatDisplayTime(draft.Time),
		Type:            draft.Type,
		Location:        draft.Location,
		Description:     draft.Description,
		Attendees:       attendees,
		MaxParticipants: resolveCapacity(draft.Type, draft.MaxParticipants),
		Tags:            draft.Tags,
		Image:           draft.Image,
	}

	if !draft.Recurrence.Enabled || len(draft.Recurrence.DaysOfWeek) == 0 {
		return []NewEventInput{base}
	}

	dates := ExpandWeekly(draft.Date, draft.Recurrence.DaysOfWeek, draft.Recurrence.Occurrences)
	if len(dates) == 0 {
		return []NewEventInput{base}
	}

	inputs := make([]NewEventInput, 0, len(dates))
	for _, date := range dates {
		input := base
		input.Date = date
		inputs = append(inputs, input)
	}

	return inputs
}

// InvitedCount is the invite count reported by the creation success
// notification: attendees of the first generated input minus the
// creator. Recurring siblings do not get individual counts.
func InvitedCount(inputs []NewEventInput) int {
	if len(inputs) == 0 {
		return 0
	}

	return len(inputs[0].Attendees) - 1
}

func resolveCapacity(eventType EventType, requested int) int {
	if eventType != EventTypeGroup {
		return oneToOneCapacity
	}

	if requested <= 0 {
		return defaultGroupCapacity
	}

	return requested
}

// FormatDisplayTime converts a 24-hour HH:MM input into the 12-hour
// display string stored on the event (e.g. "11:00 AM"). The conversion
// happens once at normalization time and is never re-derived. Inputs
// that do not parse are passed through unchanged.
func FormatDisplayTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return hhmm
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return hhmm
	}

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minutes, suffix)
}
