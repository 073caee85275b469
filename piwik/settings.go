package piwik

import (
	"strings"

	"golang.org/x/exp/slices"
)

const (
	DefaultDownloadClass = "track-download"
	DefaultExternalClass = "track-external"

	trackerEndpoint = "piwik.php"
)

// Settings configure a single Piwik tracker.
type Settings struct {
	// Account is the Piwik site id.
	Account string `yaml:"account,omitempty"`

	// TrackerURL is the host (and optional path) of the Piwik install used
	// over plain http. Any scheme given here is ignored.
	TrackerURL string `yaml:"trackerUrl,omitempty"`

	// SecureTrackerURL is used instead of TrackerURL when the page is secure.
	SecureTrackerURL string `yaml:"secureTrackerUrl,omitempty"`

	// LinkTracking enables outbound and download link tracking when non-empty.
	LinkTracking []string `yaml:"linkTracking,omitempty"`

	DownloadClass string `yaml:"downloadClass,omitempty"`
	ExternalClass string `yaml:"externalClass,omitempty"`

	// Version of the deployed piwik.js. Decides whether native event tracking
	// is available. Empty means a current release.
	Version string `yaml:"version,omitempty"`
}

func (s Settings) clone() Settings {
	s.LinkTracking = slices.Clone(s.LinkTracking)
	return s
}

// TrackerURLFor returns the piwik.php endpoint for a page. The secure URL is
// only used when the page is secure and one is configured. In every other
// case the plain URL is used over http, including secure pages without a
// secure URL.
func (s Settings) TrackerURLFor(page *Page) string {
	if page.Secure && s.SecureTrackerURL != "" {
		return "https://" + trimHost(s.SecureTrackerURL) + "/" + trackerEndpoint
	}
	return "http://" + trimHost(s.TrackerURL) + "/" + trackerEndpoint
}

func trimHost(u string) string {
	if i := strings.Index(u, "//"); i >= 0 {
		u = u[i+2:]
	}
	return strings.TrimRight(u, "/")
}
