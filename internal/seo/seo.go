package seo

// OpenGraph holds the social sharing card fields.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Meta is the head metadata for a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// ForEventPage builds the landing page metadata from the hero copy.
func ForEventPage(title, description string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
		},
	}
}
