package view

import (
	"html/template"
	"sort"
	"strings"

	"rtalks.io/rtalks-web/internal/backend"
	"rtalks.io/rtalks-web/internal/content"
)

// PlaceholderSpeakerImage is the inline SVG shown when a speaker has no photo.
// Typed template.URL so the data URI survives attribute escaping.
const PlaceholderSpeakerImage template.URL = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMTIwIiBoZWlnaHQ9IjEyMCIgdmlld0JveD0iMCAwIDEyMCAxMjAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+CjxyZWN0IHdpZHRoPSIxMjAiIGhlaWdodD0iMTIwIiBmaWxsPSIjNkI0NkMxIi8+Cjx0ZXh0IHg9IjYwIiB5PSI2MCIgZm9udC1mYW1pbHk9IkFyaWFsLCBzYW5zLXNlcmlmIiBmb250LXNpemU9IjE0IiBmaWxsPSJ3aGl0ZSIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZHk9Ii4zZW0iPlNwZWFrZXI8L3RleHQ+Cjwvc3ZnPg=="

// Carousel pacing: five seconds per speaker, never under thirty total.
const (
	secondsPerSpeaker  = 5
	minDurationSeconds = 30
)

// SpeakerCard is one carousel entry. Optional fields stay empty and the
// template omits their tags entirely.
type SpeakerCard struct {
	Name     string
	Title    string
	Company  string
	Bio      string
	ImageURL template.URL
}

// SpeakersView is the carousel view model. Cards holds the doubled track;
// Count is the visible number of speakers before doubling.
type SpeakersView struct {
	Cards           []SpeakerCard
	Count           int
	DurationSeconds int
	Message         string
}

// BuildSpeakers sorts speakers by id for a deterministic order, doubles the
// sequence so the CSS loop can shift by half the track seamlessly, and
// computes the animation duration from the visible count.
func BuildSpeakers(section content.SpeakersSection) SpeakersView {
	if section.State != content.StateLoaded {
		return SpeakersView{Message: content.Message(content.WidgetSpeakers, section.State)}
	}

	speakers := make([]backend.Speaker, len(section.Items))
	copy(speakers, section.Items)
	sort.Slice(speakers, func(i, j int) bool { return speakers[i].ID < speakers[j].ID })

	cards := make([]SpeakerCard, 0, len(speakers)*2)
	for _, s := range speakers {
		cards = append(cards, speakerCard(s))
	}
	cards = append(cards, cards...)

	return SpeakersView{
		Cards:           cards,
		Count:           len(speakers),
		DurationSeconds: CarouselDuration(len(speakers)),
	}
}

// CarouselDuration returns the loop duration in seconds for n speakers.
func CarouselDuration(n int) int {
	d := n * secondsPerSpeaker
	if d < minDurationSeconds {
		return minDurationSeconds
	}
	return d
}

func speakerCard(s backend.Speaker) SpeakerCard {
	card := SpeakerCard{
		Name:    s.Name,
		Title:   s.Title,
		Company: s.Company,
		Bio:     s.Bio,
	}
	// Only http(s) photo URLs are trusted; anything else gets the placeholder.
	if strings.HasPrefix(s.ImageURL, "http://") || strings.HasPrefix(s.ImageURL, "https://") {
		card.ImageURL = template.URL(s.ImageURL)
	} else {
		card.ImageURL = PlaceholderSpeakerImage
	}
	return card
}
