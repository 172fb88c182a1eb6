package core

// PlaceholderInviteeName is used when an invitee id cannot be resolved
// against the contact directory. Resolution is best-effort: the
// directory is a static catalog, so unknown ids degrade to a
// placeholder instead of failing the authoring flow.
const PlaceholderInviteeName = "Invitee"

type Contact struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Directory is the static catalog of connected users the authoring
// wizard invites from.
type Directory struct {
	contacts map[string]Contact
	ordered  []Contact
}

func NewDirectory(contacts []Contact) *Directory {
	d := &Directory{contacts: make(map[string]Contact, len(contacts))}
	for _, c := range contacts {
		if _, ok := d.contacts[c.Id]; ok {
			continue
		}

		d.contacts[c.Id] = c
		d.ordered = append(d.ordered, c)
	}

	return d
}

func (d *Directory) Contacts() []Contact {
	out := make([]Contact, len(d.ordered))
	copy(out, d.ordered)

	return out
}

// ResolveAttendees maps selected contact ids to pending attendee
// records, preserving selection order. Unknown ids are never an error.
func (d *Directory) ResolveAttendees(ids []string) []EventAttendee {
	attendees := make([]EventAttendee, 0, len(ids))
	for _, id := range ids {
		name := PlaceholderInviteeName
		if c, ok := d.contacts[id]; ok {
			name = c.Name
		}

		attendees = append(attendees, EventAttendee{Id: id, Name: name, Status: AttendeeStatusPending})
	}

	return attendees
}

// SelfAttendee is the synthesized record for the creating user; it is
// always attendees[0] of a normalized input.
func SelfAttendee() EventAttendee {
	return EventAttendee{Id: SelfAttendeeID, Name: "You", Status: AttendeeStatusAccepted}
}

// ConnectedUsers returns the default mock contact catalog shipped with
// the app.
func ConnectedUsers() []Contact {
	return []Contact{
		{Id: "user-1", Name: "Sarah Chen"},
		{Id: "user-2", Name: "Marcus Johnson"},
		{Id: "user-3", Name: "Emma Wilson"},
		{Id: "user-4", Name: "David Kim"},
		{Id: "user-5", Name: "Olivia Martinez"},
		{Id: "user-6", Name: "James Taylor"},
		{Id: "user-7", Name: "Sophia Anderson"},
		{Id: "user-8", Name: "Liam Brown"},
	}
}
