package page

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
)

const probeInterval = 100 * time.Millisecond

// WaitForVisible reports whether selector becomes visible within timeout
// (the probe timeout when zero). In lenient mode a timeout is (false, nil);
// in strict mode it is (false, ErrProbeTimeout).
func (b *Base) WaitForVisible(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	return b.probe(ctx, "wait for visible", selector, true, timeout)
}

// WaitForHidden reports whether selector is hidden, or absent, within
// timeout. Same strict/lenient rules as WaitForVisible.
func (b *Base) WaitForHidden(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	return b.probe(ctx, "wait for hidden", selector, false, timeout)
}

// ElementVisible is a lenient probe regardless of the configured mode.
func (b *Base) ElementVisible(ctx context.Context, selector string, timeout time.Duration) bool {
	ok, _ := b.waitForState(ctx, "element visible", selector, true, b.orProbeTimeout(timeout), nil)
	return ok
}

// ElementNotVisible is the lenient probe for absence or hiding.
func (b *Base) ElementNotVisible(ctx context.Context, selector string, timeout time.Duration) bool {
	ok, _ := b.waitForState(ctx, "element not visible", selector, false, b.orProbeTimeout(timeout), nil)
	return ok
}

func (b *Base) probe(ctx context.Context, op, selector string, visible bool, timeout time.Duration) (bool, error) {
	var onTimeout error
	if b.opts.probeMode == ProbeStrict {
		onTimeout = ErrProbeTimeout
	}
	return b.waitForState(ctx, op, selector, visible, b.orProbeTimeout(timeout), onTimeout)
}

func (b *Base) orProbeTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return b.opts.probeTimeout
	}
	return d
}

// waitForState polls until selector's visibility equals want. When the
// timeout elapses it returns (false, nil) if onTimeout is nil, otherwise a
// PageError wrapping onTimeout. Cancellation of ctx is always an error.
func (b *Base) waitForState(ctx context.Context, op, selector string, want bool, timeout time.Duration, onTimeout error) (bool, error) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tab := b.tab.Context(probeCtx)
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		// Lookups may fail transiently while the document is being
		// replaced; keep polling until the deadline.
		visible, err := isVisible(tab, selector)
		if err == nil && visible == want {
			return true, nil
		}
		lastErr = err

		select {
		case <-probeCtx.Done():
			if ctx.Err() != nil {
				return false, b.Fail(op, selector, ctx.Err(), "")
			}
			b.log.Debug().Str("op", op).Str("selector", selector).Dur("timeout", timeout).AnErr("last", lastErr).Msg("probe timed out")
			if onTimeout == nil {
				return false, nil
			}
			return false, b.Fail(op, selector, onTimeout, fmt.Sprintf("state not reached within %s", timeout))
		case <-ticker.C:
		}
	}
}

func isVisible(tab *rod.Page, selector string) (bool, error) {
	has, el, err := tab.Has(selector)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	return el.Visible()
}

// WaitForVisibleSelector fails with ErrElementNotFound unless selector is
// visible within timeout (the element timeout when zero).
func (b *Base) WaitForVisibleSelector(ctx context.Context, selector string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = b.opts.timeout
	}
	_, err := b.waitForState(ctx, "wait for visible selector", selector, true, timeout, ErrElementNotFound)
	return err
}

// WaitForHiddenSelector fails with ErrProbeTimeout unless selector is hidden
// or gone within timeout (the element timeout when zero).
func (b *Base) WaitForHiddenSelector(ctx context.Context, selector string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = b.opts.timeout
	}
	_, err := b.waitForState(ctx, "wait for hidden selector", selector, false, timeout, ErrProbeTimeout)
	return err
}
