package provider

import (
	"context"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.jetpack.io/trackpad/goutil"
	"go.jetpack.io/trackpad/pkg/semver"
)

type SurveyAnswers struct {
	Domain           string
	Secure           bool
	Account          string
	TrackerURL       string
	SecureTrackerURL string
	LinkTracking     []string
	Version          string
}

type InitSurvey interface {
	Run(ctx context.Context, domain string) (*SurveyAnswers, error)
}

type initSurvey struct{}

func DefaultInitSurvey() InitSurvey {
	return &initSurvey{}
}

func (p *initSurvey) Run(ctx context.Context, domain string) (*SurveyAnswers, error) {
	qs := surveyQuestions(domain)
	answers := &SurveyAnswers{}

	if err := survey.Ask([]*survey.Question{qs["Domain"]}, &answers.Domain); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := survey.Ask([]*survey.Question{qs["Secure"]}, &answers.Secure); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := survey.Ask([]*survey.Question{qs["Account"]}, &answers.Account); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := survey.Ask([]*survey.Question{qs["TrackerURL"]}, &answers.TrackerURL); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := survey.Ask([]*survey.Question{qs["SecureTrackerURL"]}, &answers.SecureTrackerURL); err != nil {
		return nil, errors.WithStack(err)
	}

	linkTracking := ""
	if err := survey.Ask([]*survey.Question{qs["LinkTracking"]}, &linkTracking); err != nil {
		return nil, errors.WithStack(err)
	}
	answers.LinkTracking = SplitClassList(linkTracking)

	if err := survey.Ask([]*survey.Question{qs["Version"]}, &answers.Version); err != nil {
		return nil, errors.WithStack(err)
	}
	return answers, nil
}

// SplitClassList turns "a, b  c" into ["a", "b", "c"].
func SplitClassList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	return lo.Filter(fields, goutil.NonEmptyFilter[string])
}

func surveyQuestions(domain string) map[string]*survey.Question {
	return map[string]*survey.Question{
		"Domain": {
			Name: "Domain",
			Prompt: &survey.Input{
				Message: "Which domain are the pages served from?",
				Default: domain,
			},
			Validate: survey.Required,
		},
		"Secure": {
			Name: "Secure",
			Prompt: &survey.Confirm{
				Message: "Are the pages served over https?",
				Default: true,
			},
		},
		"Account": {
			Name: "Account",
			Prompt: &survey.Input{
				Message: "What is the Piwik site id?",
				Default: "1",
			},
			Validate: survey.Required,
		},
		"TrackerURL": {
			Name: "TrackerURL",
			Prompt: &survey.Input{
				Message: "Host of your Piwik install (e.g. stats.example.com)",
			},
			Validate: survey.Required,
		},
		"SecureTrackerURL": {
			Name: "SecureTrackerURL",
			Prompt: &survey.Input{
				Message: "Host used over https. Leave empty to always use the plain host",
			},
		},
		"LinkTracking": {
			Name: "LinkTracking",
			Prompt: &survey.Input{
				Message: "Link tracking classes, comma separated. Leave empty to disable",
			},
		},
		"Version": {
			Name: "Version",
			Prompt: &survey.Input{
				Message: "Version of the deployed piwik.js. Leave empty for a current release",
			},
			Validate: func(val any) error {
				v, _ := val.(string)
				if v == "" || semver.IsValid(v) {
					return nil
				}
				return errors.Errorf("%q is not a valid version", v)
			},
		},
	}
}
