package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
)

const (
	// ConfigFileName is looked up in the working directory before the user config dir.
	ConfigFileName = "confgen.toml"

	// DefaultMaxRetries is how many times a generated secret is replaced after
	// failing round-trip validation.
	DefaultMaxRetries = 3
)

// Config holds the defaults for the generate command. Command-line arguments
// take precedence over every field.
type Config struct {
	// TemplatePath is the settings template to read. No default.
	TemplatePath string `toml:"template_path"`

	// OutputPath is where the settings file is written. No default.
	OutputPath string `toml:"output_path"`

	// ForceSecretKey generates the master secret without asking. Default false.
	ForceSecretKey bool `toml:"force_secret_key"`

	// StrictDirectives fails on unknown placeholder directives instead of
	// writing an empty value. Default false.
	StrictDirectives bool `toml:"strict_directives"`

	// MaxRetries bounds secret regeneration when the secret is generated. Default 3.
	MaxRetries int `toml:"max_retries"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

type configFile struct {
	Settings Config `toml:"settings"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{MaxRetries: DefaultMaxRetries}
}

// LoadConfig reads the config file at path. With an empty path it tries
// ./confgen.toml and then the user config file, falling back to defaults
// when neither exists. Relative paths inside the file are resolved against
// the file's directory.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigNotFound, path)
		}
		return loadConfigFile(path)
	}

	for _, candidate := range []string{ConfigFileName, UserConfigPath()} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return loadConfigFile(candidate)
		}
	}

	config := DefaultConfig()
	return &config, nil
}

func loadConfigFile(path string) (*Config, error) {
	file := configFile{Settings: DefaultConfig()}

	undecoded, err := LoadTOML(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}
	if len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", kerrors.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	config := file.Settings
	if config.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: %s: max_retries must not be negative", kerrors.ErrInvalidConfig, path)
	}

	dir := filepath.Dir(path)
	config.TemplatePath = resolveRelative(dir, config.TemplatePath)
	config.OutputPath = resolveRelative(dir, config.OutputPath)
	config.Source = path

	return &config, nil
}

// SaveConfig writes config to path under a [settings] table.
func SaveConfig(path string, config Config) error {
	if err := SaveTOML(path, configFile{Settings: config}); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// WithArgs returns a copy of c with command-line overrides applied. Empty
// arguments keep the configured value; force can only switch forcing on.
func (c Config) WithArgs(templatePath, outputPath string, force bool) Config {
	if templatePath != "" {
		c.TemplatePath = templatePath
	}
	if outputPath != "" {
		c.OutputPath = outputPath
	}
	if force {
		c.ForceSecretKey = true
	}
	return c
}

func resolveRelative(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
