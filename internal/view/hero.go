package view

import (
	"fmt"

	"rtalks.io/rtalks-web/internal/content"
	"rtalks.io/rtalks-web/internal/format"
)

// Default copy matching the original page.
const (
	defaultHeroTitle       = "R-Talks Event Tickets"
	defaultHeroDescription = "Join us for the premier talent acquisition summit."
	defaultSectionTitle    = "Event Packages"
	defaultSectionDesc     = "Choose the package that suits you best."
	defaultEventTitle      = "R-Talks Summit"
)

// HeroView is the top-of-page view model: hero copy, event headline, and the
// packages section heading.
type HeroView struct {
	Title              string
	Description        string
	EventTitle         string
	DateLabel          string
	TimeLabel          string
	LocationLabel      string
	PriceLabel         string
	SectionTitle       string
	SectionDescription RichText
}

// BuildHero merges the event fetch with the keyed copy blocks. When every
// parallel load failed, the hero shows the top-level error fallback instead.
func BuildHero(page content.PageContent, allFailed bool) HeroView {
	hero := HeroView{
		Title:              defaultHeroTitle,
		Description:        defaultHeroDescription,
		EventTitle:         defaultEventTitle,
		DateLabel:          "Coming Soon",
		SectionTitle:       defaultSectionTitle,
		SectionDescription: PlainText(defaultSectionDesc),
	}
	if allFailed {
		hero.Title = content.HeroFallbackTitle
		hero.Description = content.HeroFallbackDescription
		return hero
	}

	if s, ok := page.Sections.Section("hero"); ok {
		if s.Title != "" {
			hero.Title = s.Title
		}
		if s.Description != "" {
			hero.Description = s.Description
		}
	}
	if s, ok := page.Sections.Section("event_info"); ok {
		if s.Title != "" {
			hero.SectionTitle = s.Title
		}
		if s.Description != "" {
			hero.SectionDescription = Markdown(s.Description)
		}
	}

	if page.Event.State == content.StateLoaded {
		ev := page.Event.Data
		if ev.Title != "" {
			hero.EventTitle = ev.Title
		}
		if ev.Date.IsZero() {
			hero.DateLabel = "Date TBD"
		} else {
			hero.DateLabel = format.EventDate(ev.Date)
		}
		hero.TimeLabel = ev.Time
		hero.LocationLabel = ev.Location
		if ev.Price > 0 {
			hero.PriceLabel = format.Rupees(ev.Price)
		}
	}
	return hero
}

// StatsView is the single hero counters line.
type StatsView struct {
	Line string
}

// BuildStats renders the counters line or its fallback.
func BuildStats(section content.StatsSection) StatsView {
	if section.State != content.StateLoaded {
		return StatsView{Line: content.Message(content.WidgetStats, section.State)}
	}
	s := section.Data
	return StatsView{
		Line: fmt.Sprintf("%d+ Attendees | %d+ Industrial Partners | %d+ Speakers",
			s.Attendees, s.Partners, s.Speakers),
	}
}
