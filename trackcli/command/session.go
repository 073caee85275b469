package command

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.jetpack.io/trackpad/goutil"
	"go.jetpack.io/trackpad/goutil/errorutil"
	"go.jetpack.io/trackpad/piwik"
	"go.jetpack.io/trackpad/trackcli/provider"
	"go.jetpack.io/trackpad/trackcli/terminal"
	"go.jetpack.io/trackpad/trackcli/trackconfig"
)

// session is one page with every configured tracker initialized on it.
type session struct {
	page     *piwik.Page
	trackers []provider.Analytics
}

func newSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	path := env.GetString(configKey)

	cfg, err := cmdOpts.ConfigLoader().Require(ctx, path)
	if errors.Is(err, trackconfig.ErrConfigNotFound) {
		return nil, errorutil.AddUserMessagef(
			err,
			"No trackpad.yaml found at %s. Run `trackpad init` to create one",
			path,
		)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	domain := goutil.Coalesce(env.GetString(domainKey), cfg.Domain)
	if domain == "" {
		return nil, errorutil.NewUserError(
			"A domain is required. Set domain in trackpad.yaml, pass --domain or set TRACKPAD_DOMAIN",
		)
	}
	secure := cfg.Secure
	if env.IsSet(secureKey) {
		secure = env.GetBool(secureKey)
	}

	settings, err := cfg.TrackerSettings()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	page := piwik.NewPage(domain, secure, piwik.WithQueue(piwik.NewQueue(piwik.WithLogger(runLog))))
	registry := piwik.NewRegistry(page)
	s := &session{page: page}
	for i, st := range settings {
		p := registry.NewProvider(st, piwik.WithProviderLogger(runLog.WithField("tracker", i)))
		if err := cmdOpts.Hooks().Initialize(ctx, p); err != nil {
			return nil, errors.WithStack(err)
		}
		s.trackers = append(s.trackers, p)
	}
	return s, nil
}

// selected returns the tracker at index, or all of them when index is
// negative.
func (s *session) selected(index int) ([]provider.Analytics, error) {
	if index < 0 {
		return s.trackers, nil
	}
	if index >= len(s.trackers) {
		return nil, errorutil.NewUserErrorf(
			"Tracker %d does not exist. %d trackers are configured",
			index,
			len(s.trackers),
		)
	}
	return s.trackers[index : index+1], nil
}

// print writes the queue as the JSON _paq array.
func (s *session) print(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	var b []byte
	var err error
	if terminal.IsTerminal(out) {
		b, err = json.MarshalIndent(s.page.Queue(), "", "  ")
	} else {
		b, err = json.Marshal(s.page.Queue())
	}
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return errors.WithStack(err)
}

func (s *session) close() error {
	for _, t := range s.trackers {
		if err := t.Close(); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// runSession initializes the page, calls f with the selected trackers and
// prints the resulting queue.
func runSession(
	cmd *cobra.Command,
	tracker int,
	f func(trackers []provider.Analytics) error,
) (err error) {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
	}()

	trackers, err := s.selected(tracker)
	if err != nil {
		return err
	}
	if err := f(trackers); err != nil {
		return err
	}
	return s.print(cmd)
}
