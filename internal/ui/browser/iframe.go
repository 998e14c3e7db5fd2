package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
)

// domStableWindow is how long the DOM must stay unchanged to count as
// settled.
const domStableWindow = 300 * time.Millisecond

// WaitForIFrames waits for DOM stability on the page and, recursively, on
// every visible iframe. Some back-office screens (module configuration,
// marketplace) render their content inside frames.
func WaitForIFrames(page *rod.Page) error {
	if err := page.WaitDOMStable(domStableWindow, 0); err != nil {
		return fmt.Errorf("wait for stable DOM: %w", err)
	}

	iframes, err := page.Elements("iframe")
	if err != nil {
		return nil
	}

	for _, iframe := range iframes {
		visible, _ := iframe.Visible()
		if !visible {
			continue
		}

		frame, err := iframe.Frame()
		if err != nil {
			continue
		}

		if err := WaitForIFrames(frame); err != nil {
			return err
		}
	}
	return nil
}

// DeepestVisibleFrame descends into the first visible iframe at each level
// and returns the innermost frame, or page itself when there is none.
func DeepestVisibleFrame(page *rod.Page) *rod.Page {
	iframes, err := page.Elements("iframe")
	if err != nil {
		return page
	}

	for _, iframe := range iframes {
		if visible, _ := iframe.Visible(); !visible {
			continue
		}
		child, err := iframe.Frame()
		if err != nil {
			continue
		}
		return DeepestVisibleFrame(child)
	}

	return page
}

// FrameBySelector returns the frame context of the iframe matching selector.
// The returned *rod.Page can be handed to page.New to drive the frame.
func FrameBySelector(page *rod.Page, selector string) (*rod.Page, error) {
	iframeEl, err := page.Element(selector)
	if err != nil {
		return nil, fmt.Errorf("iframe element not found: %w", err)
	}

	frame, err := iframeEl.Frame()
	if err != nil {
		return nil, fmt.Errorf("failed to get frame context: %w", err)
	}

	return frame, nil
}
