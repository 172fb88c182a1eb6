package core

import (
	"fmt"
	"sync/atomic"
	"time"
)

type EventType string

const (
	EventTypeOneToOne EventType = "one-to-one"
	EventTypeGroup    EventType = "group"
	// EventTypeActivity is the legacy default for events created outside
	// the authoring wizard.
	EventTypeActivity EventType = "activity"
)

type EventStatus string

const (
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCancelled EventStatus = "cancelled"
)

type AttendeeStatus string

const (
	AttendeeStatusAccepted AttendeeStatus = "accepted"
	AttendeeStatusPending  AttendeeStatus = "pending"
	AttendeeStatusDeclined AttendeeStatus = "declined"
)

// SelfAttendeeID identifies the creating user. Attendees[0] of every
// persisted event carries this id.
const SelfAttendeeID = "att-you"

type EventAttendee struct {
	Id     string         `json:"id"`
	Name   string         `json:"name"`
	Status AttendeeStatus `json:"status"`
}

// CalendarEvent is one concrete occurrence of an activity. Recurring
// series are materialized as N independent events, never as a
// series+rule pair.
type CalendarEvent struct {
	Id              string          `json:"id"`
	Title           string          `json:"title"`
	Date            time.Time       `json:"date"`
	Time            string          `json:"time"`
	Type            EventType       `json:"type"`
	Location        string          `json:"location,omitempty"`
	Description     string          `json:"description,omitempty"`
	Attendees       []EventAttendee `json:"attendees"`
	MaxParticipants int             `json:"max_participants"`
	Tags            []string        `json:"tags,omitempty"`
	Image           string          `json:"image,omitempty"`
	IsHost          bool            `json:"is_host"`
	Status          EventStatus     `json:"status"`
}

// NewEventInput is the normalized output of the authoring flow, ready
// to be materialized into a CalendarEvent. Inputs are built by
// BuildEventInputs, which enforces the attendee and capacity rules.
type NewEventInput struct {
	Title           string          `json:"title"`
	Date            time.Time       `json:"date"`
	Time            string          `json:"time"`
	Type            EventType       `json:"type"`
	Location        string          `json:"location,omitempty"`
	Description     string          `json:"description,omitempty"`
	Attendees       []EventAttendee `json:"attendees"`
	MaxParticipants int             `json:"max_participants"`
	Tags            []string        `json:"tags,omitempty"`
	Image           string          `json:"image,omitempty"`
}

var eventSeq atomic.Uint64

// MaterializeEvent turns a normalized input into a persisted event,
// assigning the id and the initial confirmed status.
func MaterializeEvent(input NewEventInput) CalendarEvent {
	return CalendarEvent{
		Id:              fmt.Sprintf("event-%d-%d", time.Now().UnixNano(), eventSeq.Add(1)),
		Title:           input.Title,
		Date:            input.Date,
		Time:            input.Time,
		Type:            input.Type,
		Location:        input.Location,
		Description:     input.Description,
		Attendees:       input.Attendees,
		MaxParticipants: input.MaxParticipants,
		Tags:            input.Tags,
		Image:           input.Image,
		IsHost:          true,
		Status:          EventStatusConfirmed,
	}
}

// EventTemplate is a static catalog entry that seeds the authoring
// wizard. Selecting one overwrites the draft's preset fields but does
// not lock them.
type EventTemplate struct {
	Id                     string    `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description,omitempty"`
	Type                   EventType `json:"type"`
	DefaultLocation        string    `json:"default_location,omitempty"`
	DefaultTime            string    `json:"default_time,omitempty"`
	DefaultMaxParticipants int       `json:"default_max_participants,omitempty"`
	Tags                   []string  `json:"tags,omitempty"`
	BannerImage            string    `json:"banner_image,omitempty"`
	Emoji                  string    `json:"emoji,omitempty"`
}

// RecurrenceConfig is wizard-local state; it is expanded into concrete
// dates at normalization time and never persisted as such.
type RecurrenceConfig struct {
	Enabled     bool  `json:"enabled"`
	DaysOfWeek  []int `json:"days_of_week,omitempty"` // 0=Sun .. 6=Sat
	Occurrences int   `json:"occurrences,omitempty"`  // weeks to generate
}

// EventDraft is the raw authoring form: a template plus user edits.
type EventDraft struct {
	TemplateId      string           `json:"template_id,omitempty"`
	Title           string           `json:"title"`
	Type            EventType        `json:"type"`
	Date            time.Time        `json:"date"`
	Time            string           `json:"time"` // 24-hour HH:MM
	Location        string           `json:"location,omitempty"`
	Description     string           `json:"description,omitempty"`
	MaxParticipants int              `json:"max_participants,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Image           string           `json:"image,omitempty"`
	Invitees        []string         `json:"invitees,omitempty"`
	Recurrence      RecurrenceConfig `json:"recurrence"`
}
