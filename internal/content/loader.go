package content

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"rtalks.io/rtalks-web/internal/backend"
)

// State describes how one widget's fetch settled.
type State int

const (
	// StateLoaded means usable data arrived.
	StateLoaded State = iota
	// StateEmpty means the fetch succeeded but the collection was empty.
	StateEmpty
	// StateFailed means transport, status, or decode failure; the widget
	// renders its error fallback.
	StateFailed
)

// PageContent is the joined result of the six independent content fetches.
// Each widget settles on its own; a failure in one never blocks another.
type PageContent struct {
	Event    EventSection
	Stats    StatsSection
	Packages PackagesSection
	Sections CopySections
	Speakers SpeakersSection
	Contact  ContactSection
}

// EventSection holds the headline event fetch outcome.
type EventSection struct {
	State State
	Data  backend.EventInfo
}

// StatsSection holds the hero counters fetch outcome.
type StatsSection struct {
	State State
	Data  backend.Stats
}

// PackagesSection holds the purchasable tiers fetch outcome.
type PackagesSection struct {
	State State
	Items []backend.Package
}

// CopySections holds the keyed homepage copy blocks fetch outcome.
type CopySections struct {
	State State
	Items []backend.ContentSection
}

// SpeakersSection holds the carousel fetch outcome.
type SpeakersSection struct {
	State State
	Items []backend.Speaker
}

// ContactSection holds the contact cards fetch outcome.
type ContactSection struct {
	State State
	Data  backend.ContactInfo
}

// AllFailed reports whether every fetch failed, which triggers the top-level
// hero error fallback instead of per-widget ones.
func (p PageContent) AllFailed() bool {
	return p.Event.State == StateFailed &&
		p.Stats.State == StateFailed &&
		p.Packages.State == StateFailed &&
		p.Sections.State == StateFailed &&
		p.Speakers.State == StateFailed &&
		p.Contact.State == StateFailed
}

// Section looks up a copy block by its key.
func (c CopySections) Section(key string) (backend.ContentSection, bool) {
	for _, s := range c.Items {
		if s.Section == key {
			return s, true
		}
	}
	return backend.ContentSection{}, false
}

// Loader fans the content fetches out concurrently and joins them.
type Loader struct {
	api    *backend.Client
	logger *zap.Logger
}

// NewLoader builds a Loader around the backend client.
func NewLoader(api *backend.Client, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{api: api, logger: logger}
}

// Load issues all six fetches concurrently and waits for every one to settle.
// Errors are absorbed into per-widget states; Load itself never fails. There
// is no retry and no cross-request cancellation: a widget timing out routes to
// its own fallback while the others render normally.
func (l *Loader) Load(ctx context.Context) PageContent {
	var page PageContent
	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		data, err := l.api.GetEvent(ctx)
		page.Event = EventSection{State: l.settle("event", err, data.Title == "" && data.Date.IsZero()), Data: data}
	}()
	go func() {
		defer wg.Done()
		data, err := l.api.GetStats(ctx)
		page.Stats = StatsSection{State: l.settle("stats", err, data == backend.Stats{}), Data: data}
	}()
	go func() {
		defer wg.Done()
		items, err := l.api.GetPackages(ctx)
		page.Packages = PackagesSection{State: l.settle("packages", err, len(items) == 0), Items: items}
	}()
	go func() {
		defer wg.Done()
		items, err := l.api.GetContentSections(ctx)
		page.Sections = CopySections{State: l.settle("content", err, len(items) == 0), Items: items}
	}()
	go func() {
		defer wg.Done()
		items, err := l.api.GetSpeakers(ctx)
		page.Speakers = SpeakersSection{State: l.settle("speakers", err, len(items) == 0), Items: items}
	}()
	go func() {
		defer wg.Done()
		data, err := l.api.GetContactInfo(ctx)
		empty := data.Email == "" && len(data.PhoneNumbers) == 0
		page.Contact = ContactSection{State: l.settle("contact-info", err, empty), Data: data}
	}()

	wg.Wait()
	return page
}

// settle folds a fetch result into a widget state. All failure kinds collapse
// to StateFailed; the distinction only matters for the log line.
func (l *Loader) settle(widget string, err error, empty bool) State {
	if err != nil {
		l.logger.Warn("content fetch failed",
			zap.String("widget", widget),
			zap.Int("kind", int(backend.Classify(err))),
			zap.Error(err))
		return StateFailed
	}
	if empty {
		return StateEmpty
	}
	return StateLoaded
}
