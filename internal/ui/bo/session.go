package bo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/rs/zerolog"

	"github.com/grez-lucas/bo-ui/internal/config"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/browser"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

// ErrNoCredentials is returned by SignIn when BO_ADMIN_EMAIL or
// BO_ADMIN_PASSWORD is unset.
var ErrNoCredentials = errors.New("admin credentials not configured")

// Session is a launched browser with one tab and the page objects bound to
// it.
type Session struct {
	*Pages

	cfg     *config.Config
	browser *browser.Session
	tab     *rod.Page
	root    *bobase.Page
}

// Open launches the browser described by cfg and binds a fresh set of page
// objects to a new tab. extra options are applied after the configured ones
// (hijackers).
func Open(cfg *config.Config, logger zerolog.Logger, extra ...browser.Option) (*Session, error) {
	opts := []browser.Option{
		browser.WithHeadless(cfg.Headless),
		browser.WithStealth(cfg.Stealth),
	}
	if cfg.BrowserBin != "" {
		opts = append(opts, browser.WithBin(cfg.BrowserBin))
	}
	if cfg.SlowMotion > 0 {
		opts = append(opts, browser.WithSlowMotion(cfg.SlowMotion))
	}
	if cfg.WindowSize != "" {
		opts = append(opts, browser.WithWindowSize(cfg.WindowSize))
	}

	b, err := browser.Launch(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}

	tab, err := b.NewTab()
	if err != nil {
		_ = b.Close()
		return nil, err
	}

	logger.Debug().Str("base_url", cfg.BaseURL).Bool("headless", cfg.Headless).Msg("browser session opened")

	base := page.New(tab, cfg.PageOptions(logger)...)
	return &Session{
		Pages:   NewPagesFromBase(base, cfg.BaseURL),
		cfg:     cfg,
		browser: b,
		tab:     tab,
		root:    bobase.New(base, cfg.BaseURL),
	}, nil
}

// Tab is the tab every page of the session drives.
func (s *Session) Tab() *rod.Page {
	return s.tab
}

// Goto opens a back-office path, e.g. one of Registries().
func (s *Session) Goto(ctx context.Context, path string) error {
	return s.root.Goto(ctx, path)
}

// SignIn logs in with the configured admin credentials.
func (s *Session) SignIn(ctx context.Context) error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return ErrNoCredentials
	}
	if err := s.Login.Goto(ctx); err != nil {
		return err
	}
	if err := s.Login.Login(ctx, s.cfg.AdminEmail, s.cfg.AdminPassword); err != nil {
		return fmt.Errorf("sign in as %s: %w", s.cfg.AdminEmail, err)
	}
	return nil
}

// Close closes the browser and every tab of it.
func (s *Session) Close() error {
	return s.browser.Close()
}
