package piwik

func (s *Suite) TestInstanceNames() {
	req := s.Require()

	req.Equal("", s.registry.NewProvider(s.settings()).Name())
	req.Equal("pwk2", s.registry.NewProvider(s.settings()).Name())
	req.Equal("pwk3", s.registry.NewProvider(s.settings()).Name())

	names := []string{}
	for _, p := range s.registry.Providers() {
		names = append(names, p.Name())
	}
	req.Equal([]string{"", "pwk2", "pwk3"}, names)
}

func (s *Suite) TestRegistriesCountIndependently() {
	other := NewRegistry(NewPage("example.com", false))
	s.registry.NewProvider(s.settings())
	s.registry.NewProvider(s.settings())

	s.Require().Equal("", other.NewProvider(s.settings()).Name())
}
