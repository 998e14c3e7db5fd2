package page

import (
	"context"
	"fmt"
)

// Outcome is what PerformAndAwaitTransition waits for after its action. The
// set is closed: AwaitNavigation, AwaitVisible and AwaitHidden.
type Outcome interface {
	arm(ctx context.Context, b *Base) pending
	String() string
}

type pending struct {
	await   func() error
	release func()
}

// PerformAndAwaitTransition runs action and waits for outcome as one step.
// Outcomes that depend on events (navigation) are armed before the action
// runs, so the transition cannot be missed.
func (b *Base) PerformAndAwaitTransition(ctx context.Context, action Action, outcome Outcome) error {
	p := outcome.arm(ctx, b)
	if err := action(ctx); err != nil {
		p.release()
		return err
	}
	return p.await()
}

type navigationOutcome struct{}

// AwaitNavigation waits for the configured lifecycle event of the next
// document load.
func AwaitNavigation() Outcome {
	return navigationOutcome{}
}

func (navigationOutcome) String() string {
	return "navigation"
}

func (navigationOutcome) arm(ctx context.Context, b *Base) pending {
	navCtx, cancel := context.WithTimeout(ctx, b.opts.navigationTimeout)
	wait := b.tab.Context(navCtx).WaitNavigation(b.opts.loadEvent)

	return pending{
		await: func() error {
			defer cancel()
			wait()
			if navCtx.Err() == nil {
				return nil
			}
			if ctx.Err() != nil {
				return b.Fail("await navigation", "", ctx.Err(), "")
			}
			return b.Fail("await navigation", "", ErrNavigationTimeout,
				fmt.Sprintf("no %s event within %s", b.opts.loadEvent, b.opts.navigationTimeout))
		},
		release: cancel,
	}
}

type visibilityOutcome struct {
	selector string
	visible  bool
}

// AwaitVisible waits for selector to become visible within the element
// timeout.
func AwaitVisible(selector string) Outcome {
	return visibilityOutcome{selector: selector, visible: true}
}

// AwaitHidden waits for selector to be hidden or removed within the element
// timeout.
func AwaitHidden(selector string) Outcome {
	return visibilityOutcome{selector: selector, visible: false}
}

func (o visibilityOutcome) String() string {
	if o.visible {
		return "visible " + o.selector
	}
	return "hidden " + o.selector
}

func (o visibilityOutcome) arm(ctx context.Context, b *Base) pending {
	onTimeout := ErrProbeTimeout
	if o.visible {
		onTimeout = ErrElementNotFound
	}

	return pending{
		await: func() error {
			_, err := b.waitForState(ctx, "await "+o.String(), o.selector, o.visible, b.opts.timeout, onTimeout)
			return err
		},
		release: func() {},
	}
}
