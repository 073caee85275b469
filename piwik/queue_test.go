package piwik

import (
	"encoding/json"
	"sync"
)

func (s *Suite) TestPageQueueIsCreatedOnce() {
	req := s.Require()
	page := NewPage("example.com", false)
	q := page.Queue()
	q.Push(TrackPageView)
	req.Same(q, page.Queue())
	req.Equal(1, page.Queue().Len())
}

func (s *Suite) TestPageAdoptsExistingQueue() {
	req := s.Require()
	existing := NewQueue()
	existing.Push(TrackPageView)

	page := NewPage("example.com", false, WithQueue(existing))
	NewRegistry(page).NewProvider(s.settings()).Track("")

	req.Same(existing, page.Queue())
	req.Equal(2, existing.Len())
}

func (s *Suite) TestQueueKeepsOrderAndDrains() {
	req := s.Require()
	q := NewQueue()
	q.Push(SetSiteID, "1")
	q.Push(TrackPageView)

	snapshot := q.Commands()
	snapshot[0] = Command{"mutated"}
	req.Equal(Command{SetSiteID, "1"}, q.Commands()[0])

	drained := q.Drain()
	req.Equal([]Command{{SetSiteID, "1"}, {TrackPageView}}, drained)
	req.Zero(q.Len())
}

func (s *Suite) TestQueueJSON() {
	req := s.Require()
	q := NewQueue()
	q.Push(SetTrackerURL, "http://stats.example.com/piwik.php")
	q.Push(TrackEvent, "c", "a", "n", float64(5))
	q.Push(EnableLinkTracking)

	b, err := json.Marshal(q)
	req.NoError(err)
	req.JSONEq(
		`[["setTrackerUrl","http://stats.example.com/piwik.php"],["trackEvent","c","a","n",5],["enableLinkTracking"]]`,
		string(b),
	)
}

func (s *Suite) TestQueueConcurrentPush() {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Push(TrackPageView)
		}()
	}
	wg.Wait()
	s.Require().Equal(50, q.Len())
}

func (s *Suite) TestIsKnownCommand() {
	req := s.Require()
	req.True(IsKnownCommand(TrackPageView))
	req.True(IsKnownCommand("pwk3.trackEvent"))
	req.False(IsKnownCommand("trackGoal"))
	req.False(IsKnownCommand(""))
}

func (s *Suite) TestCommandAccessors() {
	req := s.Require()
	c := NewCommand(SetSiteID, "3")
	req.Equal(SetSiteID, c.Name())
	req.Equal([]any{"3"}, c.Args())
	req.Nil(NewCommand(TrackPageView).Args())
	req.Equal("", Command{}.Name())
}
