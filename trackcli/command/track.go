package command

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.jetpack.io/trackpad/goutil/errorutil"
	"go.jetpack.io/trackpad/piwik"
	"go.jetpack.io/trackpad/trackcli/provider"
)

type trackFlags struct {
	tracker int
}

func registerTrackFlags(fs *pflag.FlagSet, f *trackFlags) {
	fs.IntVarP(
		&f.tracker,
		"tracker",
		"t",
		-1,
		"Index of the tracker to use, in config order. Defaults to all trackers",
	)
}

func queueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Print the setup commands queued for every tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, -1, func([]provider.Analytics) error { return nil })
		},
	}
}

func pageviewCmd() *cobra.Command {
	f := &trackFlags{}
	cmd := &cobra.Command{
		Use:   "pageview [title]",
		Short: "Queue a page view, optionally with a document title",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := ""
			if len(args) > 0 {
				label = args[0]
			}
			return runSession(cmd, f.tracker, func(trackers []provider.Analytics) error {
				for _, t := range trackers {
					t.Track(label)
				}
				return nil
			})
		},
	}
	registerTrackFlags(cmd.Flags(), f)
	return cmd
}

func eventCmd() *cobra.Command {
	f := &trackFlags{}
	cmd := &cobra.Command{
		Use:   "event <category> <action> [name] [value]",
		Short: "Queue an event",
		Long: heredoc.Doc(`
			Queue an event.

			Trackers running piwik.js 2.0.0 or newer get a trackEvent command.
			Older trackers get a page view titled
			<domain>/<category>/<action>/<name>, lower-cased.
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEvent(args)
			if err != nil {
				return err
			}
			return runSession(cmd, f.tracker, func(trackers []provider.Analytics) error {
				for _, t := range trackers {
					if err := t.TrackEvent(e); err != nil {
						return errorutil.ConvertToUserError(err)
					}
				}
				return nil
			})
		},
	}
	registerTrackFlags(cmd.Flags(), f)
	return cmd
}

func socialCmd() *cobra.Command {
	f := &trackFlags{}
	cmd := &cobra.Command{
		Use:   "social <network> <action> [target]",
		Short: "Queue a social interaction",
		Long: heredoc.Doc(`
			Queue a social interaction.

			Social interactions are sent as events with the network as the
			category, e.g. "trackpad social twitter share /blog/post".
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 3 {
				return errorutil.NewUserError("social takes at most 3 arguments: network, action and target")
			}
			e, err := parseEvent(args)
			if err != nil {
				return err
			}
			return runSession(cmd, f.tracker, func(trackers []provider.Analytics) error {
				for _, t := range trackers {
					if err := t.TrackSocial(e); err != nil {
						return errorutil.ConvertToUserError(err)
					}
				}
				return nil
			})
		},
	}
	registerTrackFlags(cmd.Flags(), f)
	return cmd
}

func parseEvent(args []string) (piwik.Event, error) {
	e, err := piwik.ParseEvent(args...)
	if err != nil {
		return piwik.Event{}, errorutil.ConvertToUserError(errors.WithStack(err))
	}
	return e, nil
}
