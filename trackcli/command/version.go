package command

import (
	"github.com/spf13/cobra"
	"go.jetpack.io/trackpad/pkg/buildstamp"
	"go.jetpack.io/trackpad/pkg/tracklog"
)

const binaryName = "trackpad"

type versionFlags struct {
	verbose bool
	short   bool
}

func versionCmd() *cobra.Command {
	f := &versionFlags{}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the trackpad version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion(cmd, f)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Also print build details and the loaded config")
	cmd.Flags().BoolVarP(&f.short, "short", "s", false, "Print the version number only")
	return cmd
}

func printVersion(cmd *cobra.Command, f *versionFlags) {
	out := tracklog.New(cmd.OutOrStdout())
	v := buildstamp.Get().Version()
	if f.short {
		out.Println(v)
		return
	}
	out.Printf("%s %s\n", binaryName, v)
	if !f.verbose {
		return
	}
	buildstamp.PrintVerboseVersion(out)

	// A missing or invalid config is not an error here.
	path := env.GetString(configKey)
	cfg, err := cmdOpts.ConfigLoader().Require(cmd.Context(), path)
	if err != nil {
		out.Printf("Config:         none at %s\n", path)
		return
	}
	out.Printf("Config:         %s (%d trackers)\n", cfg.Path, len(cfg.Trackers))
}
