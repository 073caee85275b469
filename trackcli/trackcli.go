// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package trackcli

import (
	"context"

	"github.com/spf13/cobra"
	"go.jetpack.io/trackpad/trackcli/command"
	"go.jetpack.io/trackpad/trackcli/flags"
	"go.jetpack.io/trackpad/trackcli/hook"
	"go.jetpack.io/trackpad/trackcli/provider"
	"go.jetpack.io/trackpad/trackcli/trackconfig"
)

type Trackcli struct {
	additionalCommands []*cobra.Command
	configLoader       *trackconfig.Loader
	errorLogger        provider.ErrorLogger
	hooks              *hook.Hooks
	initSurvey         provider.InitSurvey
	persistentPreRunE  func(cmd *cobra.Command, args []string) error
	persistentPostRunE func(cmd *cobra.Command, args []string) error
	rootCommand        *cobra.Command
	rootFlags          *flags.RootCmdFlags
}

type Option func(*Trackcli)

func New(opts ...Option) *Trackcli {
	t := &Trackcli{
		configLoader: trackconfig.NewLoader(),
		errorLogger:  &provider.NoOpLogger{},
		hooks:        hook.New(),
		initSurvey:   provider.DefaultInitSurvey(),
		rootFlags:    &flags.RootCmdFlags{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Trackcli) Run(ctx context.Context) {
	command.Execute(ctx, t)
}

func (t *Trackcli) ConfigLoader() *trackconfig.Loader {
	return t.configLoader
}

func (t *Trackcli) ErrorLogger() provider.ErrorLogger {
	return t.errorLogger
}

func (t *Trackcli) Hooks() *hook.Hooks {
	return t.hooks
}

func (t *Trackcli) InitSurvey() provider.InitSurvey {
	return t.initSurvey
}

func (t *Trackcli) RootFlags() *flags.RootCmdFlags {
	return t.rootFlags
}

func (t *Trackcli) RootCommand() *cobra.Command {
	if t.rootCommand == nil {
		t.rootCommand = command.NewRootCmd(t)
	}
	return t.rootCommand
}

func (t *Trackcli) AdditionalCommands() []*cobra.Command {
	return t.additionalCommands
}

func (t *Trackcli) PersistentPreRunE(cmd *cobra.Command, args []string) error {
	if t == nil || t.persistentPreRunE == nil {
		return nil
	}
	return t.persistentPreRunE(cmd, args)
}

func (t *Trackcli) PersistentPostRunE(cmd *cobra.Command, args []string) error {
	if t == nil || t.persistentPostRunE == nil {
		return nil
	}
	return t.persistentPostRunE(cmd, args)
}

// Options
type cmdFunc func(t *Trackcli) *cobra.Command

func WithAdditionalCommands(cmds ...cmdFunc) Option {
	return func(t *Trackcli) {
		for _, cmd := range cmds {
			t.additionalCommands = append(t.additionalCommands, cmd(t))
		}
	}
}

func WithConfigLoader(l *trackconfig.Loader) Option {
	return func(t *Trackcli) {
		t.configLoader = l
	}
}

func WithErrorLogger(logger provider.ErrorLogger) Option {
	return func(t *Trackcli) {
		t.errorLogger = logger
	}
}

func WithHooks(hooks *hook.Hooks) Option {
	return func(t *Trackcli) {
		t.hooks = hooks
	}
}

func WithInitSurvey(s provider.InitSurvey) Option {
	return func(t *Trackcli) {
		t.initSurvey = s
	}
}

func WithPersistentPreRunE(r func(cmd *cobra.Command, args []string) error) Option {
	return func(t *Trackcli) {
		t.persistentPreRunE = r
	}
}

func WithPersistentPostRunE(r func(cmd *cobra.Command, args []string) error) Option {
	return func(t *Trackcli) {
		t.persistentPostRunE = r
	}
}
