package command

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	surveyterminal "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.jetpack.io/trackpad/goutil/errorutil"
	"go.jetpack.io/trackpad/pkg/runid"
	"go.jetpack.io/trackpad/trackcli/flags"
	"go.jetpack.io/trackpad/trackcli/hook"
	"go.jetpack.io/trackpad/trackcli/provider"
	"go.jetpack.io/trackpad/trackcli/trackconfig"
	"golang.org/x/sys/unix"
)

// These options allow the CLI to be customized with additional commands and
// providers.
type cmdOptions interface {
	provider.Providers
	AdditionalCommands() []*cobra.Command
	ConfigLoader() *trackconfig.Loader
	RootCommand() *cobra.Command
	RootFlags() *flags.RootCmdFlags
	Hooks() *hook.Hooks
	PersistentPreRunE(cmd *cobra.Command, args []string) error
	PersistentPostRunE(cmd *cobra.Command, args []string) error
}

// This is global for now (for expediency). We could pass these options down
// to every function that needs them.
var cmdOpts cmdOptions

// env resolves settings that can come from flags or TRACKPAD_* variables.
var env *viper.Viper

// runLog carries the run id of the current invocation.
var runLog logrus.FieldLogger = logrus.StandardLogger()

const (
	envPrefix = "TRACKPAD"

	configKey = "config"
	domainKey = "domain"
	secureKey = "secure"
)

func registerRootCmdFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(
		&cmdOpts.RootFlags().Debug,
		"debug",
		"d",
		false,
		"print debug output",
	)
	cmd.PersistentFlags().StringVarP(
		&cmdOpts.RootFlags().ConfigPath,
		configKey,
		"c",
		".",
		"Path to trackpad.yaml or the directory holding it",
	)
	cmd.PersistentFlags().StringVar(
		&cmdOpts.RootFlags().Domain,
		domainKey,
		"",
		"Domain of the tracked pages. Overrides the config file",
	)
	cmd.PersistentFlags().BoolVar(
		&cmdOpts.RootFlags().Secure,
		secureKey,
		false,
		"Treat the page as loaded over https. Overrides the config file",
	)
	cmd.PersistentFlags().StringVar(
		&cmdOpts.RootFlags().EnvFile,
		"env-file",
		"",
		"Load TRACKPAD_* variables from a dotenv file",
	)

	for _, key := range []string{configKey, domainKey, secureKey} {
		_ = env.BindPFlag(key, cmd.PersistentFlags().Lookup(key))
	}
}

func NewRootCmd(opts cmdOptions) *cobra.Command {
	cmdOpts = opts
	env = viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "trackpad",
		Short: "Queue Piwik tracking commands for your pages",
		Long:  "Queue Piwik tracking commands for your pages",
		// If an error occurs then cobra will print the Usage (i.e. --help)
		// but we don't want that. This still prints usage if user types
		// --help, or `trackpad help <cmd>`.
		SilenceUsage: true,
		// Errors are printed by Execute().
		SilenceErrors:     true,
		PersistentPreRunE: persistentPreRunE,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.WithStack(cmd.Help())
		},
		PersistentPostRunE: cmdOpts.PersistentPostRunE,
	}

	rootCmd.AddCommand(
		eventCmd(),
		initCmd(),
		pageviewCmd(),
		queueCmd(),
		socialCmd(),
		versionCmd(),
	)

	rootCmd.AddCommand(cmdOpts.AdditionalCommands()...)

	registerRootCmdFlags(rootCmd)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

// Execute is the entry point for CLI app.
func Execute(ctx context.Context, opts cmdOptions) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, unix.SIGTERM)
	defer stop()

	span := sentry.StartSpan(ctx, "cliCommand")
	err := opts.RootCommand().ExecuteContext(ctx)
	span.Finish()

	if err == nil {
		return
	}

	cmdOpts.ErrorLogger().CaptureException(err)
	if opts.RootFlags().Debug {
		stackTrace := errorutil.EarliestStackTrace(err)
		errChainMsg := fmt.Sprintf("Error chain is:\n\t %s.\n\n", err.Error())
		if stackTrace != nil {
			log.Fatalf("%sStacktrace:\n%+v\n", errChainMsg, stackTrace)
		}
		log.Fatalf("%sFailed to get Stacktrace:\n%+v\n", errChainMsg, errors.Cause(err))
	}

	if cmdOpts.ErrorLogger().DisplayException(err) {
		os.Exit(1)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, surveyterminal.InterruptErr) {
		fmt.Println("ABORT: Operation cancelled by user interruption.")
		stop()
		os.Exit(1)
	}

	if msg := errorutil.GetUserErrorMessage(err); msg != "" {
		color.Red("\nError: %s\n\nCaused by:\n\n %s\n\nRun with --debug for more information", msg, err)
		os.Exit(1)
	}
	log.Fatalf(
		"ABORT: There was an error. The cause is:\n\t %s. \n"+
			"Run with --debug for more information",
		errors.Cause(err),
	)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	if err := cmdOpts.PersistentPreRunE(cmd, args); err != nil {
		return err
	}

	if cmdOpts.RootFlags().Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	id := runid.New("run")
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", id.String())
	})
	runLog = logrus.WithField("run", id.Slug())
	runLog.Debugf("running %s", cmd.CommandPath())

	if envFile := cmdOpts.RootFlags().EnvFile; envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errorutil.AddUserMessagef(err, "Could not load env file %s", envFile)
		}
	}

	// deliberately ignore error: the hook is informational
	_ = cmdOpts.Hooks().CommandStart(env.GetString(configKey))
	return nil
}
