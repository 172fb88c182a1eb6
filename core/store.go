package core

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ChatPinner is a declared extension point: pinning an event into its
// chat thread. The default implementation does nothing; a backing
// implementation can be substituted without changing callers.
type ChatPinner interface {
	PinEventToChat(eventId string)
}

// DateHighlighter is a declared extension point: highlighting a date on
// the calendar grid.
type DateHighlighter interface {
	SetHighlightedDate(date time.Time)
}

type noopChatPinner struct{}

func (noopChatPinner) PinEventToChat(string) {}

type noopDateHighlighter struct{}

func (noopDateHighlighter) SetHighlightedDate(time.Time) {}

// Archiver mirrors store mutations into the relational backend. The
// mirror is fire-and-forget: failures are logged and never fed back
// into the store.
type Archiver interface {
	ArchiveEvents(ctx context.Context, events []CalendarEvent) error
	DeleteEvent(ctx context.Context, id string) error
}

// EventStore is the single shared collection of calendar events, the
// source of truth every consumer surface reads from. Membership is
// append-only except for explicit removal; there is no deduplication
// and no validation of appended events, callers are trusted. The
// source runs single-threaded; here concurrent HTTP handlers share the
// store, so access is guarded explicitly.
type EventStore struct {
	mu          sync.RWMutex
	events      []CalendarEvent
	pinner      ChatPinner
	highlighter DateHighlighter
	archiver    Archiver
}

type StoreOption func(*EventStore)

func WithChatPinner(p ChatPinner) StoreOption {
	return func(s *EventStore) { s.pinner = p }
}

func WithDateHighlighter(h DateHighlighter) StoreOption {
	return func(s *EventStore) { s.highlighter = h }
}

func WithArchiver(a Archiver) StoreOption {
	return func(s *EventStore) { s.archiver = a }
}

func NewEventStore(opts ...StoreOption) *EventStore {
	s := &EventStore{
		pinner:      noopChatPinner{},
		highlighter: noopDateHighlighter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *EventStore) AddEvent(event CalendarEvent) {
	s.AddEvents([]CalendarEvent{event})
}

func (s *EventStore) AddEvents(events []CalendarEvent) {
	if len(events) == 0 {
		return
	}

	s.mu.Lock()
	s.events = append(s.events, events...)
	s.mu.Unlock()

	s.mirror(events)
}

// RemoveEvent drops every event with the given id; absent ids are a
// no-op, not an error. Actual removals are mirrored into the archive.
func (s *EventStore) RemoveEvent(id string) {
	s.mu.Lock()

	kept := s.events[:0]
	for _, event := range s.events {
		if event.Id != id {
			kept = append(kept, event)
		}
	}

	removed := len(kept) != len(s.events)
	s.events = kept

	s.mu.Unlock()

	if removed {
		s.mirrorRemoval(id)
	}
}

// DeleteEvent is the second removal entry point the consumer surfaces
// use; it behaves identically to RemoveEvent.
func (s *EventStore) DeleteEvent(id string) {
	s.RemoveEvent(id)
}

// RespondToInvitation applies the current user's RSVP: accepted
// confirms the event, declined cancels it. The transition is on the
// event's own status, not a per-attendee entry; multi-attendee RSVP
// tracking is not modeled at the store level. Other events are left
// untouched, and unknown ids or responses are a no-op.
func (s *EventStore) RespondToInvitation(id string, response AttendeeStatus) (CalendarEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].Id != id {
			continue
		}

		switch response {
		case AttendeeStatusAccepted:
			s.events[i].Status = EventStatusConfirmed
		case AttendeeStatusDeclined:
			s.events[i].Status = EventStatusCancelled
		}

		return s.events[i], true
	}

	return CalendarEvent{}, false
}

func (s *EventStore) PinEventToChat(eventId string) {
	s.pinner.PinEventToChat(eventId)
}

func (s *EventStore) SetHighlightedDate(date time.Time) {
	s.highlighter.SetHighlightedDate(date)
}

// Events returns a snapshot copy in insertion order.
func (s *EventStore) Events() []CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CalendarEvent, len(s.events))
	copy(out, s.events)

	return out
}

func (s *EventStore) Event(id string) (CalendarEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.Id == id {
			return event, true
		}
	}

	return CalendarEvent{}, false
}

func (s *EventStore) mirror(events []CalendarEvent) {
	if s.archiver == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := s.archiver.ArchiveEvents(ctx, events)
		if err != nil {
			log.Error().Err(err).Int("count", len(events)).Msg("failed to archive events")
		}
	}()
}

func (s *EventStore) mirrorRemoval(id string) {
	if s.archiver == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := s.archiver.DeleteEvent(ctx, id)
		if err != nil {
			log.Error().Err(err).Str("event_id", id).Msg("failed to delete archived event")
		}
	}()
}
