// Package config loads ircor settings from an optional YAML file and
// IRCOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("output format must be text, json or yaml")
	ErrInvalidLogLevel  = errors.New("log level must be debug, info, warn or error")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)

// Default configuration values.
const (
	defaultFormat     = "text"
	defaultDecreasing = true
	defaultLogLevel   = "warn"
	defaultLogFormat  = "text"

	envPrefix  = "IRCOR"
	configName = "ircor"
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml"}

var logFormats = []string{"text", "json"}

// Config holds all ircor settings.
type Config struct {
	Output     OutputConfig `mapstructure:"output"`
	Log        LogConfig    `mapstructure:"log"`
	Decreasing bool         `mapstructure:"decreasing"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path, or from ircor.yaml in the working
// directory or $HOME/.config/ircor when path is empty. A missing file in the
// search paths is not an error; a missing explicit path is.
// Environment variables override the file: IRCOR_OUTPUT_FORMAT,
// IRCOR_DECREASING, IRCOR_LOG_LEVEL, IRCOR_LOG_FORMAT.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Output:     OutputConfig{Format: defaultFormat},
		Log:        LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Decreasing: defaultDecreasing,
	}
}

// Validate checks every field against its accepted values.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	return lvl, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("decreasing", d.Decreasing)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
