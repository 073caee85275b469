package mock

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.jetpack.io/trackpad/trackcli/flags"
	"go.jetpack.io/trackpad/trackcli/hook"
	"go.jetpack.io/trackpad/trackcli/provider"
	"go.jetpack.io/trackpad/trackcli/trackconfig"
)

// MockCmdOptions runs commands against an in-memory filesystem with canned
// survey answers.
type MockCmdOptions struct {
	Fs            afero.Fs
	RootCMDFlags  *flags.RootCmdFlags
	SurveyAnswers *provider.SurveyAnswers
	TestHooks     *hook.Hooks
}

type mockInitSurvey struct {
	answers *provider.SurveyAnswers
}

func NewCmdOptions() *MockCmdOptions {
	return &MockCmdOptions{
		Fs:           afero.NewMemMapFs(),
		RootCMDFlags: &flags.RootCmdFlags{},
		TestHooks:    hook.New(),
	}
}

func (*MockCmdOptions) AdditionalCommands() []*cobra.Command {
	return nil
}

func (m *MockCmdOptions) ConfigLoader() *trackconfig.Loader {
	return trackconfig.NewLoaderForTest(m.Fs)
}

func (*MockCmdOptions) ErrorLogger() provider.ErrorLogger {
	return &provider.NoOpLogger{}
}

func (m *MockCmdOptions) Hooks() *hook.Hooks {
	return m.TestHooks
}

func (m *MockCmdOptions) InitSurvey() provider.InitSurvey {
	return &mockInitSurvey{answers: m.SurveyAnswers}
}

func (m *MockCmdOptions) RootFlags() *flags.RootCmdFlags {
	return m.RootCMDFlags
}

func (m *MockCmdOptions) RootCommand() *cobra.Command {
	return &cobra.Command{}
}

func (*MockCmdOptions) PersistentPreRunE(cmd *cobra.Command, args []string) error {
	return nil
}

func (*MockCmdOptions) PersistentPostRunE(cmd *cobra.Command, args []string) error {
	return nil
}

func (s *mockInitSurvey) Run(ctx context.Context, domain string) (*provider.SurveyAnswers, error) {
	answers := *s.answers
	if answers.Domain == "" {
		answers.Domain = domain
	}
	return &answers, nil
}
