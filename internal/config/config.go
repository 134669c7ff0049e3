package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"

	"github.com/xolan/tlreport/internal/osutil"
	"github.com/xolan/tlreport/internal/stats"
	"github.com/xolan/tlreport/internal/timeutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "tlreport"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DotEnvFile is read from the working directory when present
	DotEnvFile = ".env"
	// EnvPrefix prefixes environment overrides, e.g. TLREPORT_TIMEZONE
	EnvPrefix = "TLREPORT_"
	// HourlyEnv is the bare hourly rate variable
	HourlyEnv = "HOURLY"
)

// Config represents the application configuration
type Config struct {
	// HourlyRate is the price of one hour at coefficient 1
	HourlyRate float64 `toml:"hourly_rate" koanf:"hourly_rate" json:"hourly_rate"`
	// Timezone is used for offset-less timestamps and report headers (IANA name or "Local")
	Timezone string `toml:"timezone" koanf:"timezone" json:"timezone"`
	// DateLayout is an extra Go time layout tried before the built-in ones
	DateLayout string `toml:"date_layout" koanf:"date_layout" json:"date_layout"`
	// Theme is the bubbletint theme used by the interactive view
	Theme string `toml:"theme" koanf:"theme" json:"theme"`
	// Debug enables debug logging
	Debug bool `toml:"debug" koanf:"debug" json:"debug"`
}

// LoadInfo records where the effective configuration came from.
type LoadInfo struct {
	ConfigPath  string
	ConfigFound bool
	DotEnvPath  string
	DotEnvFound bool
}

// DefaultConfig returns a Config with defaults.
// - hourly_rate: 0 (report hours and coefficients without cost)
// - timezone: "Local"
// - theme: "dracula"
func DefaultConfig() Config {
	return Config{
		HourlyRate: 0,
		Timezone:   "Local",
		DateLayout: "",
		Theme:      "dracula",
		Debug:      false,
	}
}

// Validate checks the configuration for values the report cannot use.
func (c Config) Validate() error {
	var errs []error

	if err := stats.ValidateRate(c.HourlyRate); err != nil {
		errs = append(errs, err)
	}
	if _, err := timeutil.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	return timeutil.LoadLocation(c.Timezone)
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.OS.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.OS.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Loader layers configuration sources. Later sources win:
// defaults, the TOML file, HOURLY, then TLREPORT_* variables. Variables from
// DotEnvPath are used when the process environment does not set them.
type Loader struct {
	ConfigPath string
	DotEnvPath string
}

// Load reads the config file at path and the .env file in the working directory.
func Load(path string) (Config, LoadInfo, error) {
	return Loader{ConfigPath: path, DotEnvPath: DotEnvFile}.Load()
}

// Load builds the effective configuration and validates it.
func (l Loader) Load() (Config, LoadInfo, error) {
	info := LoadInfo{ConfigPath: l.ConfigPath, DotEnvPath: l.DotEnvPath}

	k, found, err := loadFile(l.ConfigPath)
	if err != nil {
		return Config{}, info, err
	}
	info.ConfigFound = found

	environ, found, err := l.environ()
	if err != nil {
		return Config{}, info, err
	}
	info.DotEnvFound = found

	err = k.Load(env.Provider(".", env.Opt{
		Prefix:      HourlyEnv,
		EnvironFunc: environ,
		TransformFunc: func(k, v string) (string, any) {
			v = strings.TrimSpace(v)
			if k != HourlyEnv || v == "" {
				return "", nil
			}
			return "hourly_rate", v
		},
	}), nil)
	if err != nil {
		return Config{}, info, fmt.Errorf("error loading %s: %w", HourlyEnv, err)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: environ,
		TransformFunc: func(k, v string) (string, any) {
			v = strings.TrimSpace(v)
			if v == "" {
				return "", nil
			}
			return strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), v
		},
	}), nil)
	if err != nil {
		return Config{}, info, fmt.Errorf("error loading %s* variables: %w", EnvPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, info, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, info, err
	}

	return cfg, info, nil
}

// LoadFile reads only the defaults and the TOML file at path, without any
// environment overrides. It is what gets rewritten when a single setting is
// saved. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	k, _, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*koanf.Koanf, bool, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, false, fmt.Errorf("error loading defaults: %w", err)
	}
	if path == "" {
		return k, false, nil
	}

	if err := k.Load(file.Provider(path), TOMLParser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, false, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		log.Debugf("Config file not found at %s, using defaults and environment variables", path)
		return k, false, nil
	}
	log.Debugf("Loaded configuration from file: %s", path)
	return k, true, nil
}

// environ merges the process environment with DotEnvPath. Process variables
// take precedence, matching godotenv.Load.
func (l Loader) environ() (func() []string, bool, error) {
	vars := osutil.OS.Environ()
	if l.DotEnvPath == "" {
		return func() []string { return vars }, false, nil
	}

	dotenv, err := godotenv.Read(l.DotEnvPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return func() []string { return vars }, false, nil
		}
		return nil, false, fmt.Errorf("error reading %s: %w", l.DotEnvPath, err)
	}

	set := make(map[string]bool, len(vars))
	for _, kv := range vars {
		name, _, _ := strings.Cut(kv, "=")
		set[name] = true
	}
	merged := append([]string(nil), vars...)
	for name, value := range dotenv {
		if !set[name] {
			merged = append(merged, name+"="+value)
		}
	}
	log.Debugf("Loaded %d variable(s) from %s", len(dotenv), l.DotEnvPath)

	return func() []string { return merged }, true, nil
}
