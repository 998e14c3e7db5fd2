// Package config loads the settings shared by the back-office page objects,
// the browser launcher and the maintenance scripts.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

// Prefix is prepended to every environment variable, e.g. BO_BASE_URL.
const Prefix = "bo"

type Config struct {
	// Back office under test
	BaseURL       string `envconfig:"BASE_URL" default:"http://localhost:8080/admin-dev/"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	// Browser
	Headless    bool   `envconfig:"HEADLESS" default:"true"`
	BrowserBin  string `envconfig:"BROWSER_BIN"`
	Stealth     bool   `envconfig:"STEALTH" default:"false"`
	HumanTyping bool   `envconfig:"HUMAN_TYPING" default:"false"`
	// Watching a run: delay between input actions and "width,height".
	SlowMotion time.Duration `envconfig:"SLOW_MOTION"`
	WindowSize string        `envconfig:"WINDOW_SIZE"`

	// Bounded waits
	Timeout           time.Duration `envconfig:"TIMEOUT" default:"10s"`
	NavigationTimeout time.Duration `envconfig:"NAVIGATION_TIMEOUT" default:"30s"`
	ProbeTimeout      time.Duration `envconfig:"PROBE_TIMEOUT" default:"2s"`
	DialogTimeout     time.Duration `envconfig:"DIALOG_TIMEOUT" default:"10s"`
	StrictProbes      bool          `envconfig:"STRICT_PROBES" default:"false"`
	// Empty keeps the per-call-site default; "sequential" or "combined"
	// forces one strategy everywhere.
	MenuStrategy string `envconfig:"MENU_STRATEGY"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads the given .env files (missing files are skipped, existing
// variables are never overridden) and then the BO_* environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the page objects cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BO_BASE_URL %q", c.BaseURL)
	}

	for name, d := range map[string]time.Duration{
		"BO_TIMEOUT":            c.Timeout,
		"BO_NAVIGATION_TIMEOUT": c.NavigationTimeout,
		"BO_PROBE_TIMEOUT":      c.ProbeTimeout,
		"BO_DIALOG_TIMEOUT":     c.DialogTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	if _, err := c.menuStrategy(); err != nil {
		return err
	}

	return nil
}

// PageOptions translates the settings into base page options.
func (c *Config) PageOptions(logger zerolog.Logger) []page.Option {
	opts := []page.Option{
		page.WithTimeout(c.Timeout),
		page.WithNavigationTimeout(c.NavigationTimeout),
		page.WithProbeTimeout(c.ProbeTimeout),
		page.WithDialogTimeout(c.DialogTimeout),
		page.WithLogger(logger),
	}

	if c.StrictProbes {
		opts = append(opts, page.WithProbeMode(page.ProbeStrict))
	}
	if c.HumanTyping {
		opts = append(opts, page.WithTyping(page.TypingHuman))
	}
	if s, _ := c.menuStrategy(); s != page.MenuDefault {
		opts = append(opts, page.WithMenuStrategy(s))
	}

	return opts
}

func (c *Config) menuStrategy() (page.MenuStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(c.MenuStrategy)) {
	case "":
		return page.MenuDefault, nil
	case "sequential":
		return page.MenuSequential, nil
	case "combined":
		return page.MenuCombined, nil
	default:
		return page.MenuDefault, fmt.Errorf("invalid BO_MENU_STRATEGY %q (want sequential or combined)", c.MenuStrategy)
	}
}
