package piwik

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Command names understood by the Piwik tracker. They must match the vendor
// documentation exactly.
const (
	SetTrackerURL      = "setTrackerUrl"
	SetSiteID          = "setSiteId"
	EnableLinkTracking = "enableLinkTracking"
	SetDownloadClasses = "setDownloadClasses"
	SetLinkClasses     = "setLinkClasses"
	SetDocumentTitle   = "setDocumentTitle"
	TrackPageView      = "trackPageView"
	TrackEvent         = "trackEvent"
)

var knownCommands = []string{
	SetTrackerURL,
	SetSiteID,
	EnableLinkTracking,
	SetDownloadClasses,
	SetLinkClasses,
	SetDocumentTitle,
	TrackPageView,
	TrackEvent,
}

// Command is a single entry of the _paq buffer: the command name followed by
// its arguments.
type Command []any

func NewCommand(name string, args ...any) Command {
	c := make(Command, 0, len(args)+1)
	c = append(c, name)
	return append(c, args...)
}

func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	name, _ := c[0].(string)
	return name
}

func (c Command) Args() []any {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// IsKnownCommand reports whether name is a vendor command. Namespaced names
// such as "pwk2.trackEvent" are checked by their method part.
func IsKnownCommand(name string) bool {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return slices.Contains(knownCommands, name)
}

// namespaced prefixes method with the tracker instance name. The default
// instance has no name and calls the method unqualified.
func namespaced(instance, method string) string {
	if instance == "" {
		return method
	}
	return instance + "." + method
}
