package trackconfig

import (
	"github.com/pkg/errors"
	"go.jetpack.io/trackpad/goutil/errorutil"
	"go.jetpack.io/trackpad/pkg/semver"
)

func (cfg *Config) validate() error {
	checkers := []func(cfg *Config) error{
		validConfigVersionRule,
		requireTrackersRule,
		trackerSettingsRule,
	}
	for _, checker := range checkers {
		if err := checker(cfg); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func validConfigVersionRule(cfg *Config) error {
	if cfg.ConfigVersion == "" || semver.IsValid(cfg.ConfigVersion) {
		return nil
	}
	return validationError("configVersion %q is not a valid version", cfg.ConfigVersion)
}

func requireTrackersRule(cfg *Config) error {
	if len(cfg.Trackers) == 0 {
		return validationError("at least one tracker is required")
	}
	return nil
}

func trackerSettingsRule(cfg *Config) error {
	trackers, err := cfg.TrackerSettings()
	if err != nil {
		return errors.WithStack(err)
	}
	for i, t := range trackers {
		if t.Account == "" {
			return validationError("tracker %d: account is required", i)
		}
		if t.TrackerURL == "" {
			return validationError("tracker %d: trackerUrl is required", i)
		}
		if t.Version != "" && !semver.IsValid(t.Version) {
			return validationError("tracker %d: version %q is not a valid version", i, t.Version)
		}
	}
	return nil
}

func validationError(msg string, args ...any) error {
	return errorutil.NewUserErrorf("Invalid config: "+msg, args...)
}
