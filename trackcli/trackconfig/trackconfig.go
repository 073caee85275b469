package trackconfig

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.jetpack.io/trackpad/piwik"
	"gopkg.in/yaml.v3"
)

const defaultFileName = "trackpad.yaml"

// CurrentVersion is written by `trackpad init`.
const CurrentVersion = "0.1.0"

type Config struct {
	ConfigVersion string `yaml:"configVersion,omitempty"`

	// Domain of the pages being tracked. Used in fallback event titles.
	Domain string `yaml:"domain,omitempty"`

	// Secure pages select each tracker's secureTrackerUrl when one is set.
	Secure bool `yaml:"secure,omitempty"`

	// Defaults fill in any field a tracker leaves empty.
	Defaults piwik.Settings `yaml:"defaults,omitempty"`

	// The first tracker is the default instance; the rest are namespaced.
	Trackers []piwik.Settings `yaml:"trackers,omitempty"`

	// The file path to this config
	Path string `yaml:"-"`
}

// Loader reads and writes configs on a filesystem.
type Loader struct {
	fs afero.Fs
}

func NewLoader() *Loader {
	return &Loader{fs: afero.NewOsFs()}
}

func NewLoaderForTest(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// isPathFormatAConfigFile returns true if the path looks like a config file
// even if the file doesn't exist
func (l *Loader) isPathFormatAConfigFile(path string) bool {
	fi, err := l.fs.Stat(path)
	if err == nil && !fi.IsDir() {
		return true
	}
	return strings.ContainsRune(filepath.Base(path), '.')
}

func (l *Loader) configPath(path string) string {
	if l.isPathFormatAConfigFile(path) {
		return path
	}
	return filepath.Join(path, defaultFileName)
}

func (l *Loader) Exists(path string) bool {
	ok, err := afero.Exists(l.fs, l.configPath(path))
	return err == nil && ok
}

// Require reads the config at path (a file, or a directory holding
// trackpad.yaml), merges tracker defaults and validates the result.
func (l *Loader) Require(ctx context.Context, path string) (*Config, error) {
	filePath := l.configPath(path)
	contents, err := afero.ReadFile(l.fs, filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.WithStack(ErrConfigNotFound)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file at %s", filePath)
	}

	cfg := &Config{Path: filePath}
	if err := cfg.loadConfigFromYamlContents(contents); err != nil {
		return nil, errors.WithStack(err)
	}
	return cfg, cfg.validate()
}

func (l *Loader) Save(cfg *Config, path string) (string, error) {
	marshalled, err := cfg.marshalYaml()
	if err != nil {
		return "", errors.WithStack(err)
	}
	filePath := l.configPath(path)
	if err := afero.WriteFile(l.fs, filePath, marshalled, 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write config to %s", filePath)
	}
	cfg.Path = filePath
	return filePath, nil
}

// TrackerSettings returns every tracker with empty fields filled from
// Defaults and then from the built-in class names. An explicit
// `linkTracking: []` opts the tracker out of the default link tracking.
func (cfg *Config) TrackerSettings() ([]piwik.Settings, error) {
	builtin := piwik.Settings{
		DownloadClass: piwik.DefaultDownloadClass,
		ExternalClass: piwik.DefaultExternalClass,
	}
	result := make([]piwik.Settings, 0, len(cfg.Trackers))
	for i, t := range cfg.Trackers {
		// mergo treats an empty slice as unset
		noLinkTracking := t.LinkTracking != nil && len(t.LinkTracking) == 0
		if err := mergo.Merge(&t, cfg.Defaults); err != nil {
			return nil, errors.Wrapf(err, "unable to merge defaults into tracker %d", i)
		}
		if err := mergo.Merge(&t, builtin); err != nil {
			return nil, errors.Wrapf(err, "unable to merge defaults into tracker %d", i)
		}
		if noLinkTracking {
			t.LinkTracking = []string{}
		}
		result = append(result, t)
	}
	return result, nil
}

func (cfg *Config) HasDefaultFileName() bool {
	return strings.HasSuffix(cfg.Path, defaultFileName)
}

// pulled out for testing
func (cfg *Config) marshalYaml() ([]byte, error) {
	var marshalledYaml bytes.Buffer
	yamlEncoder := yaml.NewEncoder(&marshalledYaml)
	yamlEncoder.SetIndent(2)
	err := yamlEncoder.Encode(cfg)
	return marshalledYaml.Bytes(), errors.Wrap(err, "failed to yaml marshal config")
}

func (cfg *Config) loadConfigFromYamlContents(contents []byte) error {
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return errors.Wrap(err, "failed to parse config. yaml fields do not match the trackpad schema")
	}
	return nil
}
