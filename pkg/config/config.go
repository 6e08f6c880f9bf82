package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/precheck-tools/kdrc/pkg/checks"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	KLayout   *KLayout `json:"klayout,omitempty" jsonschema:"description=KLayout executable settings"`
	ScriptDir string   `json:"script_dir,omitempty" yaml:"script_dir" jsonschema:"description=Directory rule scripts are resolved against. By default the directory of the kdrc executable"`
	Checks    []*Check `json:"checks,omitempty" jsonschema:"description=Per-check overrides of the rule script and the extra arguments"`
}

type KLayout struct {
	Executable string `json:"executable,omitempty" jsonschema:"description=KLayout executable name or path. The default is klayout"`
	MinVersion string `json:"min_version,omitempty" yaml:"min_version" jsonschema:"description=Version constraint KLayout must satisfy (e.g. >= 0.28)"`
}

type Check struct {
	Key       string   `json:"key" jsonschema:"description=Check key (e.g. feol)"`
	Script    string   `json:"script,omitempty" jsonschema:"description=Rule script path. Relative paths are resolved against script_dir"`
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args" jsonschema:"description=Arguments passed to KLayout instead of the default ones"`
}

func (c *Config) Executable() string {
	if c == nil || c.KLayout == nil {
		return ""
	}
	return c.KLayout.Executable
}

func (c *Config) MinVersion() string {
	if c == nil || c.KLayout == nil {
		return ""
	}
	return c.KLayout.MinVersion
}

// Override returns the override for a check key, or nil. Keys are compared ignoring case.
func (c *Config) Override(key string) *Check {
	if c == nil {
		return nil
	}
	for _, check := range c.Checks {
		if strings.EqualFold(check.Key, key) {
			return check
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if v := c.MinVersion(); v != "" {
		if _, err := version.NewConstraint(v); err != nil {
			return fmt.Errorf("parse klayout.min_version as a version constraint: %w", err)
		}
	}
	keys := make(map[string]struct{}, len(c.Checks))
	for _, check := range c.Checks {
		if err := check.Validate(); err != nil {
			return fmt.Errorf("validate checks: %w", err)
		}
		if _, ok := keys[check.Key]; ok {
			return fmt.Errorf("check %s is duplicated", check.Key)
		}
		keys[check.Key] = struct{}{}
	}
	return nil
}

// Validate normalizes Key to the catalog key.
func (c *Check) Validate() error {
	if c.Key == "" {
		return errors.New("key is required")
	}
	check, err := checks.Get(c.Key)
	if err != nil {
		return err //nolint:wrapcheck
	}
	c.Key = check.Key
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".kdrc.yaml", ".kdrc.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}
