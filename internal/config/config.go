// Package config provides configuration management for stylekit using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration names the stylesheet to maintain, the import target to
// keep in it, the theme file whose @theme block is merged in, and the watch
// and logging settings. Environment overrides use the STYLEKIT_ prefix.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/stylekit/internal/errors"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".stylekit.yml"

// EnvPrefix prefixes every environment override, e.g. STYLEKIT_STYLESHEET_PATH.
const EnvPrefix = "STYLEKIT"

const (
	DefaultStylesheetPath = "assets/css/app.css"
	DefaultImportTarget   = "../vendor/components.css"
	DefaultThemeFile      = "assets/vendor/theme.css"
	DefaultDebounce       = 200 * time.Millisecond
)

type Config struct {
	Stylesheet StylesheetConfig `yaml:"stylesheet" json:"stylesheet" mapstructure:"stylesheet"`
	Watch      WatchConfig      `yaml:"watch" json:"watch" mapstructure:"watch"`
	Log        LogConfig        `yaml:"log" json:"log" mapstructure:"log"`
}

type StylesheetConfig struct {
	Path          string `yaml:"path" json:"path" mapstructure:"path" validate:"required,safepath"`
	Import        string `yaml:"import" json:"import" mapstructure:"import" validate:"required,safepath"`
	ThemeFile     string `yaml:"theme_file" json:"theme_file" mapstructure:"theme_file" validate:"omitempty,safepath"`
	Backup        bool   `yaml:"backup" json:"backup" mapstructure:"backup"`
	CreateMissing bool   `yaml:"create_missing" json:"create_missing" mapstructure:"create_missing"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" json:"debounce" mapstructure:"debounce" validate:"gte=0,lte=1m"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" json:"format" mapstructure:"format" validate:"omitempty,oneof=text json logfmt"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Stylesheet: StylesheetConfig{
			Path:          DefaultStylesheetPath,
			Import:        DefaultImportTarget,
			ThemeFile:     DefaultThemeFile,
			CreateMissing: true,
		},
		Watch: WatchConfig{Debounce: DefaultDebounce},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration from the global viper instance, fills in
// defaults for unset values and validates the result.
func Load() (*Config, error) {
	config := Default()
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	// Unmarshal overwrites with zero values only for keys that are present,
	// so an explicit empty string in the file still needs a default.
	if strings.TrimSpace(config.Stylesheet.Path) == "" {
		config.Stylesheet.Path = DefaultStylesheetPath
	}
	if strings.TrimSpace(config.Stylesheet.Import) == "" {
		config.Stylesheet.Import = DefaultImportTarget
	}
	if !viper.IsSet("stylesheet.theme_file") {
		config.Stylesheet.ThemeFile = DefaultThemeFile
	}
	if !viper.IsSet("watch.debounce") {
		config.Watch.Debounce = DefaultDebounce
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// HasTheme reports whether a theme file is configured.
func (c *Config) HasTheme() bool {
	return strings.TrimSpace(c.Stylesheet.ThemeFile) != ""
}

// WriteDefault writes the default configuration to path. An existing file
// is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "configuration file already exists").
			WithLocation(path, 0)
	}

	data, err := Marshal(Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ErrWriteFailed(path, err)
	}

	return nil
}

// Marshal renders cfg as a commented YAML document.
func Marshal(cfg *Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	header := "# stylekit configuration\n# Every key can be overridden with a " + EnvPrefix + "_ environment variable.\n\n"
	return append([]byte(header), body...), nil
}
