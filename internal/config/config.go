package config

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// DefaultAPIURL is used when neither the config file nor the environment names one.
const DefaultAPIURL = "http://localhost:3001"

// Environment overrides. VITE_API_URL is honoured for setups shared with the web client.
const (
	EnvAPIURL      = "BLOGDESK_API_URL"
	EnvAPIURLAlias = "VITE_API_URL"
	EnvLogLevel    = "BLOGDESK_LOG_LEVEL"
)

var (
	ErrInvalidAPIURL    = errors.New("api_url must be an absolute http or https URL")
	ErrInvalidLogLevel  = errors.New("log_level must be one of: debug, info, warn, error")
	ErrInvalidListWidth = errors.New("list_width must be between 0.2 and 0.8")
)

type Config struct {
	APIURL       string  `yaml:"api_url"`
	LogLevel     string  `yaml:"log_level"`
	SkeletonRows int     `yaml:"skeleton_rows,omitempty"`
	ListWidth    float64 `yaml:"list_width,omitempty"`
}

// APIBaseURL returns the remote base URL without a trailing slash.
func (c *Config) APIBaseURL() string {
	if c.APIURL == "" {
		return DefaultAPIURL
	}
	return strings.TrimRight(c.APIURL, "/")
}

// GetSkeletonRows returns how many placeholders the list shows while loading, defaulting to 4.
func (c *Config) GetSkeletonRows() int {
	if c.SkeletonRows <= 0 {
		return 4
	}
	return c.SkeletonRows
}

func (c *Config) ListWidthRatio() float64 {
	if c.ListWidth == 0 {
		return 0.35
	}
	return c.ListWidth
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "blogdesk", "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "blogdesk", "blogdesk.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads a .env file into the process environment. A missing file is
// not an error, and variables already set are left alone.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the config file at path (or the default location), layers the
// environment on top and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Write defaults to config path on first run; failure is non-fatal.
		_ = writeDefaults(path)
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	cfg.APIURL = cfg.APIBaseURL()
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	} else if v := os.Getenv(EnvAPIURLAlias); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// Validate re-checks a config changed after Load, e.g. by a command-line flag.
func (c *Config) Validate() error {
	return validate(c)
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.APIBaseURL())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAPIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidAPIURL, cfg.APIURL)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	if cfg.ListWidth != 0 && (cfg.ListWidth < 0.2 || cfg.ListWidth > 0.8) {
		return ErrInvalidListWidth
	}
	return nil
}
