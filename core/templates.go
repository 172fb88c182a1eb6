package core

// Templates returns the static catalog seeding the authoring wizard.
func Templates() []EventTemplate {
	return []EventTemplate{
		{
			Id:              "tpl-coffee-chat",
			Title:           "Coffee Chat",
			Description:     "Casual one-to-one over coffee.",
			Type:            EventTypeOneToOne,
			DefaultLocation: "Blue Bottle Coffee",
			DefaultTime:     "10:00",
			Tags:            []string{"Coffee Chat", "Social"},
			BannerImage:     "https://images.connectsphere.app/banners/coffee.jpg",
			Emoji:           "☕",
		},
		{
			Id:              "tpl-lunch",
			Title:           "Lunch Meetup",
			Description:     "Grab lunch together.",
			Type:            EventTypeOneToOne,
			DefaultLocation: "Downtown Food Hall",
			DefaultTime:     "12:30",
			Tags:            []string{"Lunch Meetup", "Food"},
			BannerImage:     "https://images.connectsphere.app/banners/lunch.jpg",
			Emoji:           "🍜",
		},
		{
			Id:                     "tpl-hiking",
			Title:                  "Weekend Hike",
			Description:            "Group hike on local trails.",
			Type:                   EventTypeGroup,
			DefaultLocation:        "Eagle Peak Trailhead",
			DefaultTime:            "08:00",
			DefaultMaxParticipants: 12,
			Tags:                   []string{"Weekend Hike", "Outdoors"},
			BannerImage:            "https://images.connectsphere.app/banners/hiking.jpg",
			Emoji:                  "🥾",
		},
		{
			Id:                     "tpl-book-club",
			Title:                  "Book Club",
			Description:            "Monthly book discussion.",
			Type:                   EventTypeGroup,
			DefaultLocation:        "Central Library, Room 2",
			DefaultTime:            "18:30",
			DefaultMaxParticipants: 8,
			Tags:                   []string{"Book Club", "Reading"},
			BannerImage:            "https://images.connectsphere.app/banners/books.jpg",
			Emoji:                  "📚",
		},
		{
			Id:                     "tpl-board-games",
			Title:                  "Board Game Night",
			Description:            "Bring your favorite game.",
			Type:                   EventTypeGroup,
			DefaultLocation:        "The Game Parlor",
			DefaultTime:            "19:00",
			DefaultMaxParticipants: 10,
			Tags:                   []string{"Board Game Night", "Games"},
			BannerImage:            "https://images.connectsphere.app/banners/games.jpg",
			Emoji:                  "🎲",
		},
	}
}

// FindTemplate looks a template up by id in the static catalog.
func FindTemplate(id string) (EventTemplate, error) {
	for _, tpl := range Templates() {
		if tpl.Id == id {
			return tpl, nil
		}
	}

	return EventTemplate{}, ErrTemplateNotFound
}

// ApplyTemplate seeds a draft from a template: the template's presets
// overwrite the draft's title, description, location, time, type,
// capacity, tags and banner, leaving the user free to edit afterwards.
// Fields the draft already carries a non-zero edit for are kept.
func ApplyTemplate(draft EventDraft, tpl EventTemplate) EventDraft {
	if draft.Title == "" {
		draft.Title = tpl.Title
	}

	if draft.Description == "" {
		draft.Description = tpl.Description
	}

	if draft.Location == "" {
		draft.Location = tpl.DefaultLocation
	}

	if draft.Time == "" {
		draft.Time = tpl.DefaultTime
	}

	if draft.Type == "" {
		draft.Type = tpl.Type
	}

	if draft.MaxParticipants == 0 {
		draft.MaxParticipants = tpl.DefaultMaxParticipants
	}

	if len(draft.Tags) == 0 {
		draft.Tags = append([]string(nil), tpl.Tags...)
	}

	if draft.Image == "" {
		draft.Image = tpl.BannerImage
	}

	return draft
}
