package piwik

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Provider drives one Piwik tracker on a page by pushing commands into the
// page's queue.
type Provider struct {
	name     string
	settings Settings
	page     *Page
	tracker  Tracker
	log      logrus.FieldLogger
}

type ProviderOption func(*Provider)

// WithTracker sets the tracker handle instead of deriving it from
// Settings.Version.
func WithTracker(t Tracker) ProviderOption {
	return func(p *Provider) {
		p.tracker = t
	}
}

func WithProviderLogger(log logrus.FieldLogger) ProviderOption {
	return func(p *Provider) {
		p.log = log
	}
}

func newProvider(name string, page *Page, settings Settings, opts ...ProviderOption) *Provider {
	p := &Provider{
		name:     name,
		settings: settings.clone(),
		page:     page,
		log:      logrus.StandardLogger(),
	}
	t, err := TrackerForVersion(settings.Version)
	p.tracker = t
	for _, opt := range opts {
		opt(p)
	}
	if err != nil {
		p.log.WithError(err).Warn("falling back to page view event tracking")
	}
	return p
}

// Name is the namespace used for instance-specific calls. It is empty for the
// default tracker.
func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Settings() Settings {
	return p.settings.clone()
}

func (p *Provider) Account() string {
	return p.settings.Account
}

func (p *Provider) Tracker() Tracker {
	return p.tracker
}

func (p *Provider) SetTracker(t Tracker) {
	p.tracker = t
}

// Initialize queues the tracker setup commands. Missing settings are passed
// through as empty values.
func (p *Provider) Initialize() {
	q := p.page.Queue()
	q.Push(SetTrackerURL, p.settings.TrackerURLFor(p.page))
	q.Push(SetSiteID, p.settings.Account)
	if len(p.settings.LinkTracking) > 0 {
		q.Push(EnableLinkTracking)
	}
	q.Push(SetDownloadClasses, p.settings.DownloadClass)
	q.Push(SetLinkClasses, p.settings.ExternalClass)
}

// Track records a page view, titled label when label is not empty.
func (p *Provider) Track(label string) {
	q := p.page.Queue()
	if label != "" {
		q.Push(SetDocumentTitle, label)
	}
	q.Push(TrackPageView)
}

func (p *Provider) TrackEvent(e Event) error {
	if !e.valid() {
		return errors.Wrap(ErrTooFewArgs, "trackEvent requires at least 2 parameters")
	}
	if !p.tracker.SupportsEvents() {
		p.Track(e.label(p.page.Domain))
		return nil
	}
	p.page.Queue().Push(namespaced(p.name, TrackEvent), e.args()...)
	return nil
}

// TrackSocial reports a social interaction as a generic event.
func (p *Provider) TrackSocial(e Event) error {
	if !e.valid() {
		return errors.Wrap(ErrTooFewArgs, "trackSocial requires at least 2 parameters")
	}
	return p.TrackEvent(e)
}

func (p *Provider) Close() error {
	return nil
}
