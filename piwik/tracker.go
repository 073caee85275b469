package piwik

import (
	"github.com/pkg/errors"
	"go.jetpack.io/trackpad/pkg/semver"
)

// Capability describes what the loaded vendor tracker can do.
type Capability int

const (
	// LegacyPageViewOnly trackers predate event tracking. Events are sent
	// as page views with a synthesized title.
	LegacyPageViewOnly Capability = iota
	// NativeEventCapable trackers accept trackEvent commands.
	NativeEventCapable
)

func (c Capability) String() string {
	if c == NativeEventCapable {
		return "native-events"
	}
	return "legacy-page-view"
}

// piwik.js gained trackEvent in 2.0.0
const firstEventVersion = "2.0.0"

// Tracker is the handle to the vendor tracker a provider drives. Its
// capability is fixed when the handle is created.
type Tracker struct {
	Version    string
	Capability Capability
}

func NativeTracker() Tracker {
	return Tracker{Capability: NativeEventCapable}
}

func LegacyTracker() Tracker {
	return Tracker{Capability: LegacyPageViewOnly}
}

// TrackerForVersion picks the capability of a piwik.js release. An empty
// version is treated as a current release.
func TrackerForVersion(version string) (Tracker, error) {
	if version == "" {
		return NativeTracker(), nil
	}
	native, err := semver.AtLeast(version, firstEventVersion)
	if err != nil {
		return LegacyTracker(), errors.Wrapf(err, "invalid piwik version %q", version)
	}
	t := Tracker{Version: version, Capability: LegacyPageViewOnly}
	if native {
		t.Capability = NativeEventCapable
	}
	return t, nil
}

func (t Tracker) SupportsEvents() bool {
	return t.Capability == NativeEventCapable
}
