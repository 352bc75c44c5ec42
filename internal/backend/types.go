package backend

import (
	"encoding/json"
	"strings"
	"time"
)

// EventInfo describes the headline event. Every field is optional; the
// renderer substitutes placeholders for anything missing.
type EventInfo struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    string
	Price       int64
}

// Stats carries the aggregate counters shown in the hero strip.
type Stats struct {
	Attendees int `json:"attendees"`
	Partners  int `json:"partners"`
	Speakers  int `json:"speakers"`
}

// Speaker is a single carousel entry. ID orders the carousel; title, company,
// and bio are omitted from the markup when blank.
type Speaker struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// Package is one purchasable tier. PackageType keys the price table used by
// the purchase flow.
type Package struct {
	PackageType string      `json:"package_type"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Price       int64       `json:"price"`
	Features    FeatureList `json:"features"`
}

// FeatureList accepts either a JSON string array or a JSON-encoded string
// containing one; both decode to the same slice.
type FeatureList []string

func (f *FeatureList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*f = items
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		*f = nil
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return err
	}
	*f = items
	return nil
}

// ContentSection is a keyed block of homepage copy ("hero", "event_info").
type ContentSection struct {
	Section     string `json:"section"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactInfo holds the contact cards' data.
type ContactInfo struct {
	PhoneNumbers []string        `json:"phone_numbers"`
	Email        string          `json:"email"`
	Location     ContactLocation `json:"location"`
}

// ContactLocation lists venue address lines; blank lines are skipped.
type ContactLocation struct {
	Venue    string `json:"venue"`
	Area     string `json:"area"`
	Building string `json:"building"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// OrderRequest is the purchase submission sent to the backend.
type OrderRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Package string `json:"package"`
	Price   int64  `json:"price"`
}

// OrderResult is returned by order creation and consumed only by the payment
// redirector.
type OrderResult struct {
	OrderID       string `json:"orderId"`
	UseHostedPage bool   `json:"useHostedPage"`
	PaymentLink   string `json:"paymentLink"`
	TestMode      bool   `json:"testMode"`
}

// PaymentConfig is the redirector's last-resort configuration lookup.
type PaymentConfig struct {
	TestMode      bool `json:"testMode"`
	UseHostedPage bool `json:"useHostedPage"`
}

// VerifyRequest carries the provider callback fields for one order.
type VerifyRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyResult reports whether the backend confirmed the payment.
type VerifyResult struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

type eventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Price       int64  `json:"price"`
}

func (p eventPayload) toEventInfo() EventInfo {
	return EventInfo{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Date:        parseEventDate(p.Date),
		Time:        strings.TrimSpace(p.Time),
		Location:    strings.TrimSpace(p.Location),
		Price:       p.Price,
	}
}

func parseEventDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
