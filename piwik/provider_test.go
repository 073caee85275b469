package piwik

import (
	"github.com/stretchr/testify/require"
)

func (s *Suite) TestInitialize() {
	cases := []struct {
		name         string
		secure       bool
		linkTracking []string
		secureURL    string
		want         []Command
	}{
		{
			name:      "plain page",
			secureURL: "//secure.example.com",
			want: []Command{
				{SetTrackerURL, "http://stats.example.com/piwik.php"},
				{SetSiteID, "7"},
				{SetDownloadClasses, DefaultDownloadClass},
				{SetLinkClasses, DefaultExternalClass},
			},
		},
		{
			name:         "secure page with link tracking",
			secure:       true,
			secureURL:    "//secure.example.com",
			linkTracking: []string{"outbound"},
			want: []Command{
				{SetTrackerURL, "https://secure.example.com/piwik.php"},
				{SetSiteID, "7"},
				{EnableLinkTracking},
				{SetDownloadClasses, DefaultDownloadClass},
				{SetLinkClasses, DefaultExternalClass},
			},
		},
		{
			name:   "secure page without secure url",
			secure: true,
			want: []Command{
				{SetTrackerURL, "http://stats.example.com/piwik.php"},
				{SetSiteID, "7"},
				{SetDownloadClasses, DefaultDownloadClass},
				{SetLinkClasses, DefaultExternalClass},
			},
		},
		{
			name:         "empty link tracking list",
			linkTracking: []string{},
			want: []Command{
				{SetTrackerURL, "http://stats.example.com/piwik.php"},
				{SetSiteID, "7"},
				{SetDownloadClasses, DefaultDownloadClass},
				{SetLinkClasses, DefaultExternalClass},
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			page := NewPage("example.com", tc.secure)
			settings := s.settings()
			settings.SecureTrackerURL = tc.secureURL
			settings.LinkTracking = tc.linkTracking

			NewRegistry(page).NewProvider(settings).Initialize()
			s.Require().Equal(tc.want, page.Queue().Commands())
		})
	}
}

func (s *Suite) TestInitializeWithMissingSettings() {
	s.registry.NewProvider(Settings{}).Initialize()
	s.Require().Equal([]Command{
		{SetTrackerURL, "http:///piwik.php"},
		{SetSiteID, ""},
		{SetDownloadClasses, ""},
		{SetLinkClasses, ""},
	}, s.page.Queue().Commands())
}

func (s *Suite) TestSettingsAreCopied() {
	settings := s.settings()
	settings.LinkTracking = []string{"outbound"}
	p := s.registry.NewProvider(settings)

	settings.Account = "changed"
	settings.LinkTracking[0] = "changed"
	s.Require().Equal("7", p.Account())
	s.Require().Equal([]string{"outbound"}, p.Settings().LinkTracking)
}

func (s *Suite) TestTrack() {
	req := s.Require()
	p := s.registry.NewProvider(s.settings())

	p.Track("")
	req.Equal([]Command{{TrackPageView}}, s.page.Queue().Commands())

	p.Track("Home")
	req.Equal([]Command{
		{TrackPageView},
		{SetDocumentTitle, "Home"},
		{TrackPageView},
	}, s.page.Queue().Commands())
}

func (s *Suite) TestTrackEventNative() {
	cases := []struct {
		name  string
		event Event
		want  Command
	}{
		{"two", NewEvent("c", "a"), Command{TrackEvent, "c", "a"}},
		{"three", NewEvent("c", "a").WithName("n"), Command{TrackEvent, "c", "a", "n"}},
		{"four", NewEvent("c", "a").WithName("n").WithValue(5), Command{TrackEvent, "c", "a", "n", float64(5)}},
		{"value without name", NewEvent("c", "a").WithValue(1.5), Command{TrackEvent, "c", "a", nil, 1.5}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			page := NewPage("example.com", false)
			p := NewRegistry(page).NewProvider(s.settings(), WithTracker(NativeTracker()))
			s.Require().NoError(p.TrackEvent(tc.event))
			s.Require().Equal([]Command{tc.want}, page.Queue().Commands())
		})
	}
}

func (s *Suite) TestTrackEventNamespacedInstance() {
	req := s.Require()
	s.registry.NewProvider(s.settings())
	second := s.registry.NewProvider(s.settings(), WithTracker(NativeTracker()))

	req.NoError(second.TrackEvent(NewEvent("c", "a")))
	req.Equal([]Command{{"pwk2.trackEvent", "c", "a"}}, s.page.Queue().Commands())
}

func (s *Suite) TestTrackEventTooFewArgs() {
	req := s.Require()
	p := s.registry.NewProvider(s.settings(), WithTracker(NativeTracker()))

	err := p.TrackEvent(Event{Category: "x"})
	req.ErrorIs(err, ErrTooFewArgs)
	req.Contains(err.Error(), "trackEvent")
	req.Zero(s.page.Queue().Len())
}

func (s *Suite) TestTrackEventLegacyFallback() {
	req := s.Require()
	p := s.registry.NewProvider(s.settings(), WithTracker(LegacyTracker()))

	req.NoError(p.TrackEvent(NewEvent("Cat", "Act").WithName("Name")))

	expected := NewPage("Example.com", false)
	NewRegistry(expected).NewProvider(s.settings()).Track("example.com/cat/act/name")
	req.Equal(expected.Queue().Commands(), s.page.Queue().Commands())
	req.Equal([]Command{
		{SetDocumentTitle, "example.com/cat/act/name"},
		{TrackPageView},
	}, s.page.Queue().Commands())
}

func (s *Suite) TestTrackEventLegacyFallbackWithoutName() {
	p := s.registry.NewProvider(s.settings(), WithTracker(LegacyTracker()))

	s.Require().NoError(p.TrackEvent(NewEvent("Video", "Play")))
	s.Require().Equal([]string{SetDocumentTitle, TrackPageView}, s.names())
	s.Require().Equal(
		Command{SetDocumentTitle, "example.com/video/play"},
		s.page.Queue().Commands()[0],
	)
}

func (s *Suite) TestTrackSocial() {
	req := s.Require()
	for _, tracker := range []Tracker{NativeTracker(), LegacyTracker()} {
		social := NewPage("example.com", false)
		event := NewPage("example.com", false)

		sp := NewRegistry(social).NewProvider(s.settings(), WithTracker(tracker))
		ep := NewRegistry(event).NewProvider(s.settings(), WithTracker(tracker))

		req.NoError(sp.TrackSocial(NewEvent("share", "twitter")))
		req.NoError(ep.TrackEvent(NewEvent("share", "twitter")))
		req.Equal(event.Queue().Commands(), social.Queue().Commands(), tracker.Capability.String())
	}
}

func (s *Suite) TestTrackSocialTooFewArgs() {
	p := s.registry.NewProvider(s.settings(), WithTracker(NativeTracker()))

	err := p.TrackSocial(Event{Action: "twitter"})
	require.ErrorIs(s.T(), err, ErrTooFewArgs)
	require.Contains(s.T(), err.Error(), "trackSocial")
	require.Zero(s.T(), s.page.Queue().Len())
}

func (s *Suite) TestTrackerFromVersion() {
	req := s.Require()

	settings := s.settings()
	settings.Version = "1.12.0"
	req.False(s.registry.NewProvider(settings).Tracker().SupportsEvents())

	settings.Version = "2.16.0"
	req.True(s.registry.NewProvider(settings).Tracker().SupportsEvents())

	settings.Version = "not-a-version"
	req.False(s.registry.NewProvider(settings).Tracker().SupportsEvents())

	p := s.registry.NewProvider(settings)
	p.SetTracker(NativeTracker())
	req.True(p.Tracker().SupportsEvents())
}

func (s *Suite) TestProvidersShareQueue() {
	req := s.Require()
	first := s.registry.NewProvider(s.settings())
	second := s.registry.NewProvider(s.settings(), WithTracker(NativeTracker()))

	first.Track("a")
	req.NoError(second.TrackEvent(NewEvent("c", "a")))
	first.Track("")

	req.Equal(
		[]string{SetDocumentTitle, TrackPageView, "pwk2.trackEvent", TrackPageView},
		s.names(),
	)
}
