package backend

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Fake responses keep the site browsable when no backend is configured. Orders
// created against the fake always come back in test mode so the purchase flow
// never reaches a real payment provider.

func fakeEvent() EventInfo {
	return EventInfo{
		Title:       "R-Talks Summit",
		Description: "Join us for the premier talent acquisition summit.",
		Date:        time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Time:        "9:00 AM - 6:00 PM",
		Location:    "Rathinam Grand Hall, Coimbatore",
		Price:       299,
	}
}

func fakeStats() Stats {
	return Stats{Attendees: 500, Partners: 40, Speakers: 25}
}

func fakePackages() []Package {
	return []Package{
		{
			PackageType: "professional",
			Name:        "Professional Pass",
			Category:    "Individual",
			Price:       299,
			Features:    FeatureList{"Full day access", "Lunch and refreshments", "Networking session"},
		},
		{
			PackageType: "executive",
			Name:        "Executive Pass",
			Category:    "Premium",
			Price:       2999,
			Features:    FeatureList{"Front-row seating", "Speaker meet and greet", "Recorded sessions"},
		},
		{
			PackageType: "leadership",
			Name:        "Leadership Pass",
			Category:    "Enterprise",
			Price:       4999,
			Features:    FeatureList{"Private roundtable", "1:1 mentoring slot", "Partner dinner invite"},
		},
	}
}

func fakeContentSections() []ContentSection {
	return []ContentSection{
		{Section: "hero", Title: "R-Talks Event Tickets", Description: "Join us for the premier talent acquisition summit."},
		{Section: "event_info", Title: "Event Packages", Description: "Choose the package that suits you best."},
	}
}

func fakeSpeakers() []Speaker {
	return []Speaker{
		{ID: 1, Name: "Asha Venkat", Title: "VP of Talent", Company: "Northwind Labs"},
		{ID: 2, Name: "Dev Raman", Title: "Head of Recruiting", Company: "Arcline"},
		{ID: 3, Name: "Meera Pillai", Title: "People Ops Lead"},
	}
}

func fakeContactInfo() ContactInfo {
	return ContactInfo{
		PhoneNumbers: []string{"+91 98400 00001", "+91 98400 00002"},
		Email:        "hello@rtalks.io",
		Location: ContactLocation{
			Venue:   "Rathinam Grand Hall",
			Address: "Pollachi Main Rd, Eachanari",
			City:    "Coimbatore",
		},
	}
}

func fakeOrderResult() OrderResult {
	return OrderResult{
		OrderID:  randomID("ord"),
		TestMode: true,
	}
}

func randomID(prefix string) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err == nil {
		return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b))
	}
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}
