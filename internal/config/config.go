// Package config loads settings from defaults, a config file, DISC_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/disc/internal/export"
	"github.com/abhisek/disc/internal/i18n"
)

// EnvPrefix prefixes every environment variable, e.g. DISC_LOG_LEVEL.
const EnvPrefix = "DISC"

// LanguageAuto defers to the stored preference, then the locale.
const LanguageAuto = "auto"

// Config is the resolved configuration.
type Config struct {
	DB               string        `mapstructure:"db"`
	Language         string        `mapstructure:"language"`
	Log              LogConfig     `mapstructure:"log"`
	OutputDir        string        `mapstructure:"output_dir"`
	AutoAdvanceDelay time.Duration `mapstructure:"auto_advance_delay"`
	Sheet            SheetConfig   `mapstructure:"sheet"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SheetConfig is the spreadsheet export fallback used until one is saved
// with `disc export configure`.
type SheetConfig struct {
	ScriptURL   string        `mapstructure:"script_url"`
	SecretToken string        `mapstructure:"secret_token"`
	Delay       time.Duration `mapstructure:"delay"`
}

// Export returns the sheet settings in the exporter's shape.
func (s SheetConfig) Export() export.SheetConfig {
	return export.SheetConfig{ScriptURL: s.ScriptURL, SecretToken: s.SecretToken}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"lang":      "language",
	"log-level": "log.level",
	"log-file":  "log.file",
	"out":       "output_dir",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("language", LanguageAuto)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("output_dir", ".")
	v.SetDefault("auto_advance_delay", 500*time.Millisecond)
	v.SetDefault("sheet.script_url", export.DefaultScriptURL)
	v.SetDefault("sheet.secret_token", export.DefaultToken)
	v.SetDefault("sheet.delay", export.DefaultDelay)
}

// Load resolves the configuration. file, when non-empty, must exist;
// otherwise the default locations are searched. flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	used, err := readConfigFile(v, file)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = used

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// SearchPaths lists the config files tried when none is given.
func SearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "disc", "config.yaml"))
	}
	return append(paths, ".discrc.yaml")
}

func readConfigFile(v *viper.Viper, file string) (string, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", file, err)
		}
		return file, nil
	}
	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

func validateConfig(cfg *Config) error {
	var errs []error

	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))
	if cfg.Language != LanguageAuto {
		if _, err := i18n.Parse(cfg.Language); err != nil {
			errs = append(errs, fmt.Errorf("language: must be auto, en or es, got %q", cfg.Language))
		}
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if cfg.AutoAdvanceDelay < 0 {
		errs = append(errs, fmt.Errorf("auto_advance_delay: must not be negative"))
	}
	if cfg.Sheet.Delay < 0 {
		errs = append(errs, fmt.Errorf("sheet.delay: must not be negative"))
	}
	if err := export.ValidateScriptURL(cfg.Sheet.ScriptURL); err != nil {
		errs = append(errs, fmt.Errorf("sheet.script_url: %w", err))
	}
	return errors.Join(errs...)
}

// Lang resolves the configured language. Auto yields ok=false so callers
// can fall back to the stored preference and then the locale.
func (c *Config) Lang() (lang i18n.Lang, ok bool) {
	if c.Language == "" || c.Language == LanguageAuto {
		return "", false
	}
	l, err := i18n.Parse(c.Language)
	if err != nil {
		return "", false
	}
	return l, true
}
