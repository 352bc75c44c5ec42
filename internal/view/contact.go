package view

import (
	"rtalks.io/rtalks-web/internal/content"
)

// ContactView feeds the three contact cards. LocationLines holds only the
// address lines that were present, in venue → city order.
type ContactView struct {
	Phones        []string
	Email         string
	LocationLines []string
	Message       string
}

// BuildContact maps the contact fetch onto its cards or the shared fallback.
func BuildContact(section content.ContactSection) ContactView {
	if section.State != content.StateLoaded {
		return ContactView{Message: content.Message(content.WidgetContact, section.State)}
	}
	info := section.Data
	cv := ContactView{
		Phones: info.PhoneNumbers,
		Email:  info.Email,
	}
	for _, line := range []string{
		info.Location.Venue,
		info.Location.Area,
		info.Location.Building,
		info.Location.Address,
		info.Location.City,
	} {
		if line != "" {
			cv.LocationLines = append(cv.LocationLines, line)
		}
	}
	return cv
}
