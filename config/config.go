package config

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/philipp01105/logline/core"
	"github.com/philipp01105/logline/formatter"
	"github.com/philipp01105/logline/handler"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "LOGLINE"

// Config is the root configuration structure
type Config struct {
	// Color is on, off or auto
	Color string `mapstructure:"color"`
	// Level is the minimum level a host adapter passes on
	Level string     `mapstructure:"level"`
	File  FileConfig `mapstructure:"file"`
}

// FileConfig contains file output settings
type FileConfig struct {
	// IncludeLevel selects the file formatter that writes the level name
	IncludeLevel bool `mapstructure:"include_level"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Color: formatter.ColorAuto.String(),
		Level: core.InfoLevel.String(),
		File:  FileConfig{IncludeLevel: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("color", d.Color)
	v.SetDefault("level", d.Level)
	v.SetDefault("file.include_level", d.File.IncludeLevel)
}

// Load reads configuration from path, if not empty, and applies
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Color: v.GetString("color"),
		Level: v.GetString("level"),
		File: FileConfig{
			IncludeLevel: v.GetBool("file.include_level"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured values are understood
func (c *Config) Validate() error {
	if _, err := formatter.ParseColorMode(c.Color); err != nil {
		return errors.Wrap(err, "config color")
	}
	return nil
}

// ColorMode returns the color mode resolved for output w
func (c *Config) ColorMode(w io.Writer) (formatter.ColorMode, error) {
	mode, err := formatter.ParseColorMode(c.Color)
	if err != nil {
		return formatter.ColorOff, errors.Wrap(err, "config color")
	}
	return formatter.ResolveColorMode(mode, w), nil
}

// ConsoleFormatter builds the console formatter for output w
func (c *Config) ConsoleFormatter(w io.Writer) (*formatter.ConsoleFormatter, error) {
	mode, err := c.ColorMode(w)
	if err != nil {
		return nil, err
	}
	return formatter.NewConsoleFormatter(formatter.Config{Color: mode}), nil
}

// FileFormatter builds the file formatter selected by File.IncludeLevel
func (c *Config) FileFormatter() *formatter.FileFormatter {
	if c.File.IncludeLevel {
		return formatter.NewFileFormatterWithLevel()
	}
	return formatter.NewFileFormatterWithoutLevel()
}

// SlogOptions builds the options of a handler.SlogHandler. Unknown level
// names select info.
func (c *Config) SlogOptions(thread string) *handler.SlogOptions {
	return &handler.SlogOptions{
		Level:  handler.SlogLevel(core.ParseLevel(c.Level)),
		Thread: thread,
	}
}
