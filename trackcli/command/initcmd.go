package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.jetpack.io/trackpad/goutil/errorutil"
	"go.jetpack.io/trackpad/piwik"
	"go.jetpack.io/trackpad/pkg/tracklog"
	"go.jetpack.io/trackpad/trackcli/provider"
	"go.jetpack.io/trackpad/trackcli/trackconfig"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create a trackpad.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := env.GetString(configKey)
			if len(args) > 0 && args[0] != "" {
				path = args[0]
			}
			return initConfig(cmd, path)
		},
	}
}

func initConfig(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	loader := cmdOpts.ConfigLoader()
	if loader.Exists(path) {
		return errorutil.NewUserErrorf("A config already exists at %s", path)
	}

	answers, err := cmdOpts.InitSurvey().Run(ctx, env.GetString(domainKey))
	if err != nil {
		return errors.WithStack(err)
	}

	filePath, err := loader.Save(configFromAnswers(answers), path)
	if err != nil {
		return errors.WithStack(err)
	}
	tracklog.New(cmd.ErrOrStderr()).SuccessPrintf("Created %s", filePath)
	return nil
}

func configFromAnswers(a *provider.SurveyAnswers) *trackconfig.Config {
	return &trackconfig.Config{
		ConfigVersion: trackconfig.CurrentVersion,
		Domain:        a.Domain,
		Secure:        a.Secure,
		Defaults: piwik.Settings{
			DownloadClass: piwik.DefaultDownloadClass,
			ExternalClass: piwik.DefaultExternalClass,
		},
		Trackers: []piwik.Settings{{
			Account:          a.Account,
			TrackerURL:       a.TrackerURL,
			SecureTrackerURL: a.SecureTrackerURL,
			LinkTracking:     a.LinkTracking,
			Version:          a.Version,
		}},
	}
}
