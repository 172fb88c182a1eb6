package core

import (
	"errors"
	"strings"
)

// ValidateDraft enforces the required-field constraints the authoring
// wizard guarantees before committing: title, location, date and time
// must be present, and an enabled recurrence needs at least one week.
// The normalizer itself does not re-validate.
func ValidateDraft(draft EventDraft) error {
	draft.Title = strings.TrimSpace(draft.Title)
	if len(draft.Title) == 0 {
		return errors.New("title is required")
	}

	if len(draft.Title) > 100 {
		return errors.New("title is too long (100 characters tops)")
	}

	if strings.TrimSpace(draft.Location) == "" {
		return errors.New("location is required")
	}

	if draft.Date.IsZero() {
		return errors.New("date is required")
	}

	if strings.TrimSpace(draft.Time) == "" {
		return errors.New("time is required")
	}

	switch draft.Type {
	case EventTypeOneToOne, EventTypeGroup, EventTypeActivity, "":
	default:
		return errors.New("unknown event type")
	}

	if draft.Recurrence.Enabled && draft.Recurrence.Occurrences < 1 {
		return errors.New("recurrence needs at least one week")
	}

	return nil
}
