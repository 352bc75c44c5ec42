package seo

import (
	"encoding/json"
	"html/template"
	"time"

	"rtalks.io/rtalks-web/internal/backend"
)

// JSON marshals v for embedding in a ld+json script tag. It returns an empty
// value on error so a broken schema never breaks the page.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Event builds schema.org Event markup for the summit, with one Offer per
// purchasable package.
func Event(ev backend.EventInfo, packages []backend.Package, pageURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Event",
		"name":     ev.Title,
	}
	if ev.Description != "" {
		m["description"] = ev.Description
	}
	if !ev.Date.IsZero() {
		m["startDate"] = ev.Date.Format(time.RFC3339)
	}
	if ev.Location != "" {
		m["location"] = map[string]any{
			"@type": "Place",
			"name":  ev.Location,
		}
	}
	if pageURL != "" {
		m["url"] = pageURL
	}
	if len(packages) > 0 {
		offers := make([]map[string]any, 0, len(packages))
		for _, pkg := range packages {
			offers = append(offers, map[string]any{
				"@type":         "Offer",
				"name":          pkg.Name,
				"price":         pkg.Price,
				"priceCurrency": "INR",
			})
		}
		m["offers"] = offers
	}
	return m
}

// Organization is the fallback schema when no event data loaded.
func Organization(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}
