// Package config loads application settings from defaults, an optional
// config file, TIMETABLE_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexanderramin/timetable/internal/nav"
)

// EnvPrefix prefixes every environment override, e.g. TIMETABLE_LOG_LEVEL.
const EnvPrefix = "TIMETABLE"

// Config holds all settings.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	StartPage    string `mapstructure:"start_page"`
	Collapsed    bool   `mapstructure:"collapsed"`
	ToastSeconds int    `mapstructure:"toast_seconds"`
}

// ToastDuration is how long a notification stays on screen.
func (c UIConfig) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

// LogConfig holds logging settings. An empty File disables logging since
// the terminal itself belongs to the UI.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"page":      "ui.start_page",
	"collapsed": "ui.collapsed",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.start_page", nav.PathDashboard)
	v.SetDefault("ui.collapsed", false)
	v.SetDefault("ui.toast_seconds", 4)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
}

// Load reads configuration. Priority: flags > environment > file > defaults.
// path may be empty, in which case no file is read. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := nav.Lookup(c.UI.StartPage); err != nil {
		errs = append(errs, fmt.Errorf("ui.start_page: %w", err))
	}
	if c.UI.ToastSeconds <= 0 {
		errs = append(errs, fmt.Errorf("ui.toast_seconds must be positive, got %d", c.UI.ToastSeconds))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
