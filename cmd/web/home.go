package main

import (
	"fmt"
	"html/template"
	"net/http"

	"rtalks.io/rtalks-web/internal/content"
	"rtalks.io/rtalks-web/internal/seo"
	"rtalks.io/rtalks-web/internal/view"
)

// HomePageData is the view model for the landing page.
type HomePageData struct {
	Meta     seo.Meta
	Hero     view.HeroView
	Stats    view.StatsView
	Packages view.PackagesView
	Speakers view.SpeakersView
	Contact  view.ContactView
	Banner   view.Banner
	JSONLD   template.JS

	// Loading mirrors the content-loading body class; by the time the page
	// renders, every fetch has settled, so it is always cleared here.
	Loading bool
}

// HomeHandler fans out the six content fetches, joins them, and renders the
// page. Partial failures degrade to per-widget fallbacks; the page itself is
// always revealed.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	api := apiClientFor(r)
	page := content.NewLoader(api, appLogger).Load(r.Context())

	q := r.URL.Query()
	banner := view.BuildBanner(q.Get("payment"), q.Get("order"))
	if banner.Show {
		// Send the browser back to the clean URL once the banner has been seen.
		w.Header().Set("Refresh", fmt.Sprintf("%d; url=%s", siteConfig.BannerDelaySeconds, r.URL.Path))
	}

	var jsonld template.JS
	if page.Event.State == content.StateLoaded {
		jsonld = seo.JSON(seo.Event(page.Event.Data, page.Packages.Items, ""))
	} else {
		jsonld = seo.JSON(seo.Organization(siteConfig.SiteName, ""))
	}

	hero := view.BuildHero(page, page.AllFailed())
	vm := HomePageData{
		Meta:     seo.ForEventPage(siteConfig.SiteName+" Event Tickets", hero.Description),
		JSONLD:   jsonld,
		Hero:     hero,
		Stats:    view.BuildStats(page.Stats),
		Packages: view.BuildPackages(page.Packages),
		Speakers: view.BuildSpeakers(page.Speakers),
		Contact:  view.BuildContact(page.Contact),
		Banner:   banner,
	}
	render(w, r, "home", vm)
}
