// Package browser provides utilities for browser automation with Rod:
// launching the browser that page objects drive, opening tabs, typing, and
// capturing frames and shadow roots for offline fixtures.
package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Session owns a launched browser and, when configured, the request router
// hijacking its traffic.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	router   *rod.HijackRouter
	stealth  bool
}

type launchOptions struct {
	headless   bool
	bin        string
	stealth    bool
	slowMotion time.Duration
	windowSize string
	hijackers  []hijacker
}

type hijacker struct {
	pattern string
	handler func(*rod.Hijack)
}

// Option configures Launch.
type Option func(*launchOptions)

// WithHeadless toggles headless mode (default true).
func WithHeadless(enabled bool) Option {
	return func(o *launchOptions) {
		o.headless = enabled
	}
}

// WithBin uses a local browser binary instead of the one rod downloads.
func WithBin(path string) Option {
	return func(o *launchOptions) {
		o.bin = path
	}
}

// WithStealth opens tabs through go-rod/stealth.
func WithStealth(enabled bool) Option {
	return func(o *launchOptions) {
		o.stealth = enabled
	}
}

// WithSlowMotion delays every input action, handy when watching a run.
func WithSlowMotion(d time.Duration) Option {
	return func(o *launchOptions) {
		o.slowMotion = d
	}
}

// WithWindowSize sets the window size as "width,height".
func WithWindowSize(size string) Option {
	return func(o *launchOptions) {
		o.windowSize = size
	}
}

// WithHijacker routes every request through handler (a HAR replayer or
// recorder middleware).
func WithHijacker(handler func(*rod.Hijack)) Option {
	return WithHijackerFor("*", handler)
}

// WithHijackerFor routes requests whose URL matches pattern through handler.
func WithHijackerFor(pattern string, handler func(*rod.Hijack)) Option {
	return func(o *launchOptions) {
		o.hijackers = append(o.hijackers, hijacker{pattern: pattern, handler: handler})
	}
}

// Launch starts a browser and connects to it.
func Launch(opts ...Option) (*Session, error) {
	o := launchOptions{headless: true, windowSize: "1920,1080"}
	for _, opt := range opts {
		opt(&o)
	}

	l := launcher.New().
		Headless(o.headless).
		Set("disable-blink-features", "AutomationControlled").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("window-size", o.windowSize)
	if o.bin != "" {
		l = l.Bin(o.bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if o.slowMotion > 0 {
		b = b.SlowMotion(o.slowMotion)
	}
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	s := &Session{browser: b, launcher: l, stealth: o.stealth}

	if len(o.hijackers) > 0 {
		router := b.HijackRequests()
		for _, h := range o.hijackers {
			if err := router.Add(h.pattern, "", h.handler); err != nil {
				_ = s.Close()
				return nil, fmt.Errorf("add hijacker %q: %w", h.pattern, err)
			}
		}
		go router.Run()
		s.router = router
	}

	return s, nil
}

// Browser returns the connected rod browser.
func (s *Session) Browser() *rod.Browser {
	return s.browser
}

// NewTab opens a blank tab. Each page object set is bound to exactly one tab.
func (s *Session) NewTab() (*rod.Page, error) {
	if s.stealth {
		p, err := stealth.Page(s.browser)
		if err != nil {
			return nil, fmt.Errorf("open stealth tab: %w", err)
		}
		return p, nil
	}

	p, err := s.browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, fmt.Errorf("open tab: %w", err)
	}
	return p, nil
}

// Close stops hijacking, closes the browser and removes its profile.
func (s *Session) Close() error {
	if s.router != nil {
		_ = s.router.Stop()
	}
	err := s.browser.Close()
	s.launcher.Cleanup()
	return err
}
