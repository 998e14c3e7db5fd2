package page

import (
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

const (
	DefaultTimeout           = 10 * time.Second
	DefaultNavigationTimeout = 30 * time.Second
	DefaultProbeTimeout      = 2 * time.Second
	DefaultDialogTimeout     = 10 * time.Second
)

// ProbeMode decides whether WaitForVisible/WaitForHidden report a timeout as
// a plain false or as ErrProbeTimeout.
type ProbeMode int

const (
	ProbeLenient ProbeMode = iota
	ProbeStrict
)

// TypingMode selects how SetFieldValue enters text.
type TypingMode int

const (
	// TypingFast inserts the whole value at once.
	TypingFast TypingMode = iota
	// TypingHuman types key by key with small random pauses.
	TypingHuman
)

// MenuStrategy selects how a dropdown item is reached once its menu is
// clicked.
type MenuStrategy int

const (
	// MenuDefault keeps whatever the call site asks for.
	MenuDefault MenuStrategy = iota
	// MenuSequential clicks the menu, awaits the item, then clicks it.
	MenuSequential
	// MenuCombined clicks the menu then waits-for-and-clicks the item in one
	// step.
	MenuCombined
)

func (s MenuStrategy) String() string {
	switch s {
	case MenuSequential:
		return "sequential"
	case MenuCombined:
		return "combined"
	default:
		return "default"
	}
}

type options struct {
	name              string
	timeout           time.Duration
	navigationTimeout time.Duration
	probeTimeout      time.Duration
	dialogTimeout     time.Duration
	probeMode         ProbeMode
	typing            TypingMode
	menuStrategy      MenuStrategy
	loadEvent         proto.PageLifecycleEventName
	logger            zerolog.Logger
}

func defaultOptions() options {
	return options{
		name:              "page",
		timeout:           DefaultTimeout,
		navigationTimeout: DefaultNavigationTimeout,
		probeTimeout:      DefaultProbeTimeout,
		dialogTimeout:     DefaultDialogTimeout,
		probeMode:         ProbeLenient,
		typing:            TypingFast,
		menuStrategy:      MenuDefault,
		loadEvent:         proto.PageLifecycleEventNameLoad,
		logger:            zerolog.Nop(),
	}
}

// Option configures a Base.
type Option func(*options)

// WithName labels log lines and errors with the page name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithTimeout bounds how long an element lookup may wait.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithNavigationTimeout bounds how long a page transition may take.
func WithNavigationTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.navigationTimeout = d
		}
	}
}

// WithProbeTimeout sets the timeout used by probes called without one.
func WithProbeTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.probeTimeout = d
		}
	}
}

// WithDialogTimeout bounds how long an armed dialog handler waits.
func WithDialogTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dialogTimeout = d
		}
	}
}

// WithProbeMode switches probes between lenient and strict.
func WithProbeMode(m ProbeMode) Option {
	return func(o *options) {
		o.probeMode = m
	}
}

// WithTyping selects the typing mode.
func WithTyping(m TypingMode) Option {
	return func(o *options) {
		o.typing = m
	}
}

// WithMenuStrategy forces one menu strategy for every call site.
func WithMenuStrategy(s MenuStrategy) Option {
	return func(o *options) {
		o.menuStrategy = s
	}
}

// WithLoadEvent sets the lifecycle event that marks a navigation as settled.
func WithLoadEvent(e proto.PageLifecycleEventName) Option {
	return func(o *options) {
		o.loadEvent = e
	}
}

// WithLogger sets the logger primitives write debug lines to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
