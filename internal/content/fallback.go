package content

// Widget identifies one independently loaded region of the page.
type Widget string

const (
	WidgetEvent    Widget = "event"
	WidgetStats    Widget = "stats"
	WidgetPackages Widget = "packages"
	WidgetSections Widget = "sections"
	WidgetSpeakers Widget = "speakers"
	WidgetContact  Widget = "contact"
)

// Fallback pairs the two user-facing strings a widget can degrade to. The
// empty-state and error-state messages are deliberately distinct: an empty
// collection is an announcement gap, a failed fetch is an outage.
type Fallback struct {
	Empty string
	Error string
}

var fallbacks = map[Widget]Fallback{
	WidgetEvent: {
		Empty: "Coming Soon",
		Error: "Coming Soon",
	},
	WidgetStats: {
		Empty: "Event statistics will be updated soon",
		Error: "Event statistics will be updated soon",
	},
	WidgetPackages: {
		Empty: "Event packages are temporarily unavailable. Please try refreshing the page or contact support.",
		Error: "Event packages are temporarily unavailable. Please try refreshing the page or contact support.",
	},
	WidgetSections: {
		Empty: "",
		Error: "",
	},
	WidgetSpeakers: {
		Empty: "No speakers announced yet. Check back soon!",
		Error: "Speakers information will be available soon.",
	},
	WidgetContact: {
		Empty: "Contact information temporarily unavailable",
		Error: "Contact information temporarily unavailable",
	},
}

// Hero fallback copy used when every parallel load fails.
const (
	HeroFallbackTitle       = "R-Talks Event Tickets"
	HeroFallbackDescription = "Unable to load event details. Please refresh the page or try again later."
)

// Message returns the fallback string for a widget in a given state, or ""
// when the widget loaded.
func Message(w Widget, s State) string {
	fb, ok := fallbacks[w]
	if !ok {
		return ""
	}
	switch s {
	case StateEmpty:
		return fb.Empty
	case StateFailed:
		return fb.Error
	}
	return ""
}
