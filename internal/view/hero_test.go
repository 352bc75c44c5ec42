package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rtalks.io/rtalks-web/internal/backend"
	"rtalks.io/rtalks-web/internal/content"
	"rtalks.io/rtalks-web/internal/view"
)

func TestBuildHeroAllFailedShowsOutageCopy(t *testing.T) {
	t.Parallel()

	hero := view.BuildHero(content.PageContent{}, true)
	require.Equal(t, "R-Talks Event Tickets", hero.Title)
	require.Equal(t, "Unable to load event details. Please refresh the page or try again later.", hero.Description)
	require.Equal(t, "Coming Soon", hero.DateLabel)
}

func TestBuildHeroMergesEventAndCopy(t *testing.T) {
	t.Parallel()

	page := content.PageContent{
		Event: content.EventSection{
			State: content.StateLoaded,
			Data: backend.EventInfo{
				Title:    "R-Talks Summit 2026",
				Date:     time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
				Time:     "9:00 AM - 6:00 PM",
				Location: "Rathinam Grand Hall",
				Price:    299,
			},
		},
		Sections: content.CopySections{
			State: content.StateLoaded,
			Items: []backend.ContentSection{
				{Section: "hero", Title: "Custom Hero", Description: "Custom blurb"},
				{Section: "event_info", Title: "Pick a Pass", Description: "**Choose** wisely"},
			},
		},
	}
	hero := view.BuildHero(page, false)

	require.Equal(t, "Custom Hero", hero.Title)
	require.Equal(t, "Custom blurb", hero.Description)
	require.Equal(t, "R-Talks Summit 2026", hero.EventTitle)
	require.Equal(t, "20th September", hero.DateLabel)
	require.Equal(t, "9:00 AM - 6:00 PM", hero.TimeLabel)
	require.Equal(t, "Rathinam Grand Hall", hero.LocationLabel)
	require.Equal(t, "₹299", hero.PriceLabel)
	require.Equal(t, "Pick a Pass", hero.SectionTitle)
	require.Contains(t, string(hero.SectionDescription.HTML), "<strong>Choose</strong>")
}

func TestBuildHeroEventWithoutDate(t *testing.T) {
	t.Parallel()

	page := content.PageContent{
		Event: content.EventSection{
			State: content.StateLoaded,
			Data:  backend.EventInfo{Title: "R-Talks Summit"},
		},
	}
	hero := view.BuildHero(page, false)
	require.Equal(t, "Date TBD", hero.DateLabel)
	require.Empty(t, hero.PriceLabel)
}

func TestBuildStats(t *testing.T) {
	t.Parallel()

	sv := view.BuildStats(content.StatsSection{
		State: content.StateLoaded,
		Data:  backend.Stats{Attendees: 500, Partners: 40, Speakers: 25},
	})
	require.Equal(t, "500+ Attendees | 40+ Industrial Partners | 25+ Speakers", sv.Line)

	fallback := view.BuildStats(content.StatsSection{State: content.StateFailed})
	require.Equal(t, "Event statistics will be updated soon", fallback.Line)
}
