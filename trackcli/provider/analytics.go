package provider

import (
	"go.jetpack.io/trackpad/piwik"
)

// Analytics is the vendor-neutral tracking surface. Callers record page views
// and events without knowing which analytics service receives them.
type Analytics interface {
	Name() string
	Settings() piwik.Settings
	Account() string

	Initialize()
	Track(label string)
	TrackEvent(e piwik.Event) error
	TrackSocial(e piwik.Event) error
	Close() error
}

var _ Analytics = (*piwik.Provider)(nil)
