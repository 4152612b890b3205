package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/glabrego/journal-cli/internal/journal"
)

const (
	DefaultPath = "~/.config/journal/config.toml"

	defaultPollInterval = 5 * time.Second
	defaultStorage      = "sqlite"
	defaultDBPath       = "~/.local/share/journal/journal.db"
	defaultDiskvPath    = "~/.local/share/journal/state"
	defaultLogPath      = "~/.local/state/journal/journal.log"
	defaultLogLevel     = "info"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIBaseURL   string
	JournalsPath string
	PollInterval time.Duration
	Storage      string
	DBPath       string
	DiskvPath    string
	LogPath      string
	LogLevel     string
	Locale       string
	Timezone     string
	Token        string
}

type fileConfig struct {
	APIBaseURL   string `toml:"api_base_url"`
	JournalsPath string `toml:"journals_path"`
	PollInterval string `toml:"poll_interval"`
	Storage      string `toml:"storage"`
	DBPath       string `toml:"db_path"`
	DiskvPath    string `toml:"diskv_path"`
	LogPath      string `toml:"log_path"`
	LogLevel     string `toml:"log_level"`
	Locale       string `toml:"locale"`
	Timezone     string `toml:"timezone"`
}

func Default() Config {
	return Config{
		APIBaseURL:   journal.DefaultBaseURL,
		JournalsPath: journal.DefaultJournalsPath,
		PollInterval: defaultPollInterval,
		Storage:      defaultStorage,
		DBPath:       defaultDBPath,
		DiskvPath:    defaultDiskvPath,
		LogPath:      defaultLogPath,
		LogLevel:     defaultLogLevel,
	}
}

// Load reads the TOML file at path (DefaultPath when empty), applies JOURNAL_*
// environment overrides and validates the result. A missing file is not an
// error.
func Load(path string) (Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	resolved, err := expandPath(firstNonEmpty(path, DefaultPath))
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		var raw fileConfig
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
		}
		if err := cfg.apply(raw); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	for _, p := range []*string{&cfg.DBPath, &cfg.DiskvPath, &cfg.LogPath} {
		if *p == "" {
			continue
		}
		if *p, err = expandPath(*p); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(raw fileConfig) error {
	setString(&c.APIBaseURL, raw.APIBaseURL)
	setString(&c.JournalsPath, raw.JournalsPath)
	setString(&c.Storage, raw.Storage)
	setString(&c.DBPath, raw.DBPath)
	setString(&c.DiskvPath, raw.DiskvPath)
	setString(&c.LogPath, raw.LogPath)
	setString(&c.LogLevel, raw.LogLevel)
	setString(&c.Locale, raw.Locale)
	setString(&c.Timezone, raw.Timezone)
	if strings.TrimSpace(raw.PollInterval) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(raw.PollInterval))
		if err != nil {
			return fmt.Errorf("poll_interval: %w", err)
		}
		c.PollInterval = d
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString(&c.APIBaseURL, getenv("JOURNAL_API_BASE_URL"))
	setString(&c.JournalsPath, getenv("JOURNAL_JOURNALS_PATH"))
	setString(&c.Storage, getenv("JOURNAL_STORAGE"))
	setString(&c.DBPath, getenv("JOURNAL_DB_PATH"))
	setString(&c.DiskvPath, getenv("JOURNAL_DISKV_PATH"))
	setString(&c.LogPath, getenv("JOURNAL_LOG_PATH"))
	setString(&c.LogLevel, getenv("JOURNAL_LOG_LEVEL"))
	setString(&c.Locale, getenv("JOURNAL_LOCALE"))
	setString(&c.Timezone, getenv("JOURNAL_TIMEZONE"))
	setString(&c.Token, getenv("JOURNAL_TOKEN"))
	if v := strings.TrimSpace(getenv("JOURNAL_POLL_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JOURNAL_POLL_INTERVAL: %w", err)
		}
		c.PollInterval = d
	}
	return nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("APIBaseURL must be an http(s) URL: %s", c.APIBaseURL)
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.JournalsPath == "" {
		return errors.New("JournalsPath is required")
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("PollInterval must be at least 1s: %s", c.PollInterval)
	}
	switch c.Storage {
	case "sqlite":
		if c.DBPath == "" {
			return errors.New("DBPath is required for sqlite storage")
		}
	case "diskv":
		if c.DiskvPath == "" {
			return errors.New("DiskvPath is required for diskv storage")
		}
	default:
		return fmt.Errorf("Storage must be sqlite or diskv: %s", c.Storage)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the system local zone.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil {
		return nil, fmt.Errorf("Timezone is not a known zone: %s", c.Timezone)
	}
	return loc, nil
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func expandPath(path string) (string, error) {
	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
