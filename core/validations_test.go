package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft(t *testing.T) {
	t.Parallel()

	valid := EventDraft{
		Title:    "Coffee Chat",
		Type:     EventTypeOneToOne,
		Date:     date(2025, time.January, 1),
		Time:     "11:00",
		Location: "Blue Bottle Coffee",
	}

	tests := []struct {
		name    string
		mutate  func(d *EventDraft)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid draft",
			mutate: func(d *EventDraft) {},
		},
		{
			name:    "empty title",
			mutate:  func(d *EventDraft) { d.Title = "   " },
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "title too long",
			mutate:  func(d *EventDraft) { d.Title = strings.Repeat("x", 101) },
			wantErr: true,
			errMsg:  "title is too long (100 characters tops)",
		},
		{
			name:    "missing location",
			mutate:  func(d *EventDraft) { d.Location = " " },
			wantErr: true,
			errMsg:  "location is required",
		},
		{
			name:    "missing date",
			mutate:  func(d *EventDraft) { d.Date = time.Time{} },
			wantErr: true,
			errMsg:  "date is required",
		},
		{
			name:    "missing time",
			mutate:  func(d *EventDraft) { d.Time = "" },
			wantErr: true,
			errMsg:  "time is required",
		},
		{
			name:    "unknown type",
			mutate:  func(d *EventDraft) { d.Type = "webinar" },
			wantErr: true,
			errMsg:  "unknown event type",
		},
		{
			name:   "legacy empty type",
			mutate: func(d *EventDraft) { d.Type = "" },
		},
		{
			name: "recurrence without weeks",
			mutate: func(d *EventDraft) {
				d.Recurrence = RecurrenceConfig{Enabled: true, DaysOfWeek: []int{1}}
			},
			wantErr: true,
			errMsg:  "recurrence needs at least one week",
		},
		{
			name: "valid recurrence",
			mutate: func(d *EventDraft) {
				d.Recurrence = RecurrenceConfig{Enabled: true, DaysOfWeek: []int{1}, Occurrences: 4}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draft := valid
			tt.mutate(&draft)

			err := ValidateDraft(draft)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
