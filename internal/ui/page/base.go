// Package page provides the primitives every back-office page object is built
// on: bounded element lookups, field setters, text readers, probes, native
// dialog handling and act-and-await transitions over a single rod tab.
package page

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
	"github.com/ysmood/gson"

	"github.com/grez-lucas/bo-ui/internal/ui/browser"
)

// Action is one side-effecting step against the tab.
type Action func(ctx context.Context) error

// Base binds the primitives to one browser tab. It holds no per-call state
// but drives a single tab, so it must not be used from several goroutines at
// once.
type Base struct {
	tab  *rod.Page
	opts options
	log  zerolog.Logger
}

// New binds a Base to tab.
func New(tab *rod.Page, opts ...Option) *Base {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Base{
		tab:  tab,
		opts: o,
		log:  o.logger.With().Str("page", o.name).Logger(),
	}
}

// Named returns a copy of b bound to the same tab under another page name.
func (b *Base) Named(name string) *Base {
	o := b.opts
	o.name = name
	return &Base{
		tab:  b.tab,
		opts: o,
		log:  o.logger.With().Str("page", name).Logger(),
	}
}

func (b *Base) Name() string {
	return b.opts.name
}

// Tab returns the underlying rod page.
func (b *Base) Tab() *rod.Page {
	return b.tab
}

func (b *Base) Logger() zerolog.Logger {
	return b.log
}

// ProbeTimeout is the timeout probes use when the caller has none.
func (b *Base) ProbeTimeout() time.Duration {
	return b.opts.probeTimeout
}

// Fail logs and wraps cause in a PageError carrying the page name.
func (b *Base) Fail(op, selector string, cause error, details string) error {
	b.log.Debug().Str("op", op).Str("selector", selector).Err(cause).Msg(details)
	return &PageError{
		Page:      b.opts.name,
		Operation: op,
		Selector:  selector,
		Cause:     cause,
		Details:   details,
	}
}

// element resolves selector, waiting at most the element timeout. The
// returned element is bound to ctx, not to the lookup deadline.
func (b *Base) element(ctx context.Context, op, selector string) (*rod.Element, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, b.opts.timeout)
	defer cancel()

	el, err := b.tab.Context(lookupCtx).Element(selector)
	if err != nil {
		if ctx.Err() != nil {
			return nil, b.Fail(op, selector, ctx.Err(), "")
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, b.Fail(op, selector, ErrElementNotFound, fmt.Sprintf("nothing matched within %s", b.opts.timeout))
		}
		return nil, b.Fail(op, selector, err, "")
	}

	return el.Context(ctx), nil
}

// NavigateAndWaitForLoad opens url and waits for the load event.
func (b *Base) NavigateAndWaitForLoad(ctx context.Context, url string) error {
	b.log.Debug().Str("op", "navigate").Str("url", url).Send()

	navCtx, cancel := context.WithTimeout(ctx, b.opts.navigationTimeout)
	defer cancel()

	tab := b.tab.Context(navCtx)
	if err := tab.Navigate(url); err != nil {
		return b.navigationError(ctx, "navigate", url, err)
	}
	if err := tab.WaitLoad(); err != nil {
		return b.navigationError(ctx, "navigate", url, err)
	}
	return nil
}

func (b *Base) navigationError(ctx context.Context, op, target string, err error) error {
	if ctx.Err() != nil {
		return b.Fail(op, target, ctx.Err(), "")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return b.Fail(op, target, ErrNavigationTimeout, fmt.Sprintf("page did not load within %s", b.opts.navigationTimeout))
	}
	return b.Fail(op, target, err, "")
}

// ClickAction returns the action clicking selector, for use with
// PerformAndAwaitTransition.
func (b *Base) ClickAction(selector string) Action {
	return func(ctx context.Context) error {
		return b.Click(ctx, selector)
	}
}

// Click clicks the element matching selector. Elements hidden behind custom
// switches are clicked through the DOM instead of the mouse.
func (b *Base) Click(ctx context.Context, selector string) error {
	el, err := b.element(ctx, "click", selector)
	if err != nil {
		return err
	}
	b.log.Debug().Str("op", "click").Str("selector", selector).Send()
	return b.click(ctx, el, selector)
}

// click is bounded by the element timeout: rod waits for the element to be
// interactable, which never happens while it is covered.
func (b *Base) click(ctx context.Context, el *rod.Element, selector string) error {
	clickCtx, cancel := context.WithTimeout(ctx, b.opts.timeout)
	defer cancel()
	el = el.Context(clickCtx)

	if visible, _ := el.Visible(); !visible {
		if _, err := el.Eval(`() => this.click()`); err != nil {
			return b.Fail("click", selector, err, "dom click")
		}
		return nil
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return b.Fail("click", selector, err, "")
	}
	return nil
}

// ClickWhenVisible waits for selector to become visible, then clicks it.
func (b *Base) ClickWhenVisible(ctx context.Context, selector string) error {
	if _, err := b.waitForState(ctx, "click when visible", selector, true, b.opts.timeout, ErrElementNotFound); err != nil {
		return err
	}
	return b.Click(ctx, selector)
}

// ClickAndWaitForNavigation clicks selector and awaits the page transition it
// triggers.
func (b *Base) ClickAndWaitForNavigation(ctx context.Context, selector string) error {
	return b.PerformAndAwaitTransition(ctx, b.ClickAction(selector), AwaitNavigation())
}

// SetFieldValue replaces the content of the field matching selector. An empty
// value clears the field.
func (b *Base) SetFieldValue(ctx context.Context, selector, value string) error {
	el, err := b.element(ctx, "set value", selector)
	if err != nil {
		return err
	}
	b.log.Debug().Str("op", "set value").Str("selector", selector).Int("length", len(value)).Send()

	if err := el.SelectAllText(); err != nil {
		return b.Fail("set value", selector, err, "select existing text")
	}

	if value == "" {
		if err := el.Type(input.Backspace); err != nil {
			return b.Fail("set value", selector, err, "clear field")
		}
		return nil
	}

	typeFn := browser.TypeFast
	if b.opts.typing == TypingHuman {
		typeFn = browser.TypeHuman
	}
	if err := typeFn(el, value); err != nil {
		return b.Fail("set value", selector, err, "")
	}
	return nil
}

// SetCheckedState makes the checkbox or radio matching selector checked (or
// not). Nothing is clicked when it already is in the desired state.
func (b *Base) SetCheckedState(ctx context.Context, selector string, desired bool) error {
	el, err := b.element(ctx, "set checked", selector)
	if err != nil {
		return err
	}

	checked, err := el.Property("checked")
	if err != nil {
		return b.Fail("set checked", selector, err, "read checked property")
	}
	if checked.Bool() == desired {
		return nil
	}

	b.log.Debug().Str("op", "set checked").Str("selector", selector).Bool("desired", desired).Send()
	return b.click(ctx, el, selector)
}

// SelectByVisibleText selects the option whose label is text, surrounding
// whitespace aside. A label that only contains text does not match.
func (b *Base) SelectByVisibleText(ctx context.Context, selector, text string) error {
	el, err := b.element(ctx, "select", selector)
	if err != nil {
		return err
	}
	b.log.Debug().Str("op", "select").Str("selector", selector).Str("text", text).Send()

	label := `^\s*` + regexp.QuoteMeta(text) + `\s*$`
	if err := el.Select([]string{label}, true, rod.SelectorTypeRegex); err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return b.Fail("select", selector, ErrElementNotFound, fmt.Sprintf("no option labelled %q", text))
		}
		return b.Fail("select", selector, err, fmt.Sprintf("option %q", text))
	}
	return nil
}

// SelectAction returns the action choosing text in the select matching
// selector.
func (b *Base) SelectAction(selector, text string) Action {
	return func(ctx context.Context) error {
		return b.SelectByVisibleText(ctx, selector, text)
	}
}

// ReadText returns the element's text with whitespace runs collapsed.
func (b *Base) ReadText(ctx context.Context, selector string) (string, error) {
	el, err := b.element(ctx, "read text", selector)
	if err != nil {
		return "", err
	}

	text, err := el.Text()
	if err != nil {
		return "", b.Fail("read text", selector, err, "")
	}
	return normalizeSpace(text), nil
}

// ReadNumberFromText reads the element's text and extracts the first integer.
func (b *Base) ReadNumberFromText(ctx context.Context, selector string) (int, error) {
	text, err := b.ReadText(ctx, selector)
	if err != nil {
		return 0, err
	}

	n, err := ParseNumber(text)
	if err != nil {
		return 0, b.Fail("read number", selector, err, fmt.Sprintf("text %q", text))
	}
	return n, nil
}

// ReadAttribute returns the value of attribute name, or "" when unset.
func (b *Base) ReadAttribute(ctx context.Context, selector, name string) (string, error) {
	el, err := b.element(ctx, "read attribute", selector)
	if err != nil {
		return "", err
	}

	v, err := el.Attribute(name)
	if err != nil {
		return "", b.Fail("read attribute", selector, err, name)
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// ReadProperty returns the live DOM property name (value, checked, ...).
func (b *Base) ReadProperty(ctx context.Context, selector, name string) (gson.JSON, error) {
	el, err := b.element(ctx, "read property", selector)
	if err != nil {
		return gson.JSON{}, err
	}

	v, err := el.Property(name)
	if err != nil {
		return gson.JSON{}, b.Fail("read property", selector, err, name)
	}
	return v, nil
}

// IsChecked reports the checked property of a checkbox or radio.
func (b *Base) IsChecked(ctx context.Context, selector string) (bool, error) {
	v, err := b.ReadProperty(ctx, selector, "checked")
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

// PageTitle returns the document title.
func (b *Base) PageTitle(ctx context.Context) (string, error) {
	info, err := b.tab.Context(ctx).Info()
	if err != nil {
		return "", b.Fail("page title", "", err, "")
	}
	return info.Title, nil
}

// CurrentURL returns the URL the tab currently shows.
func (b *Base) CurrentURL(ctx context.Context) (string, error) {
	info, err := b.tab.Context(ctx).Info()
	if err != nil {
		return "", b.Fail("current url", "", err, "")
	}
	return info.URL, nil
}

// Screenshot captures the visible viewport as PNG.
func (b *Base) Screenshot(ctx context.Context) ([]byte, error) {
	buf, err := b.tab.Context(ctx).Screenshot(false, nil)
	if err != nil {
		return nil, b.Fail("screenshot", "", err, "")
	}
	return buf, nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
