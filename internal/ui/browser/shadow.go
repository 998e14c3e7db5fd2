package browser

import (
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"
)

// flattenShadowDOMJS walks the DOM depth-first and inlines every open shadow
// root (as <div data-shadow-root>) and every same-origin iframe document (as
// <div data-captured-iframe>) so the result can be queried as one document.
//
// Iframes inside shadow roots are inlined before the enclosing shadow root is
// serialized: once shadow content is cloned, live contentDocument references
// are lost.
const flattenShadowDOMJS = `() => {
	const MAX_DEPTH = 100;
	const counts = {shadow: 0, iframe: 0};

	const visitChildren = (node, depth) => {
		if (depth > MAX_DEPTH) return;
		for (const child of Array.from(node.childNodes)) {
			if (child.nodeType === Node.ELEMENT_NODE) visit(child, depth + 1);
		}
	};

	const visit = (el, depth) => {
		if (el.tagName === 'IFRAME') return inlineFrame(el, depth);
		visitChildren(el, depth);
		if (el.shadowRoot) inlineShadow(el, depth);
	};

	const inlineShadow = (host, depth) => {
		const shadow = host.shadowRoot;
		visitChildren(shadow, depth);

		const box = document.createElement('div');
		box.setAttribute('data-shadow-root', 'true');
		box.setAttribute('data-shadow-host', host.tagName.toLowerCase());
		for (const child of Array.from(shadow.childNodes)) {
			if (child.nodeType === Node.ELEMENT_NODE && child.tagName === 'STYLE') {
				const s = document.createElement('style');
				s.setAttribute('data-from-shadow', 'true');
				s.textContent = child.textContent;
				box.appendChild(s);
				continue;
			}
			try { box.appendChild(child.cloneNode(true)); } catch (e) {}
		}
		counts.shadow++;
		host.appendChild(box);
	};

	const inlineFrame = (frame, depth) => {
		const box = frame.ownerDocument.createElement('div');
		box.setAttribute('data-captured-iframe', 'true');
		box.setAttribute('data-iframe-src', frame.src || '');
		box.setAttribute('data-iframe-id', frame.id || '');
		box.setAttribute('data-iframe-name', frame.name || '');
		try {
			const doc = frame.contentDocument || (frame.contentWindow && frame.contentWindow.document);
			if (!doc || !doc.documentElement) throw new Error('no contentDocument available');
			visitChildren(doc.documentElement, depth);
			if (doc.head) {
				doc.head.querySelectorAll('style').forEach((style) => {
					const s = frame.ownerDocument.createElement('style');
					s.setAttribute('data-from-iframe', 'true');
					s.textContent = style.textContent;
					box.appendChild(s);
				});
			}
			if (doc.body) box.innerHTML += doc.body.innerHTML;
			counts.iframe++;
		} catch (e) {
			box.setAttribute('data-iframe-error', e.message);
			box.textContent = '[iframe not accessible: ' + e.message + ']';
		}
		frame.parentNode.replaceChild(box, frame);
	};

	visitChildren(document.documentElement, 0);

	return JSON.stringify({
		html: document.documentElement.outerHTML,
		shadowCount: counts.shadow,
		iframeCount: counts.iframe,
	});
}`

type flattenResult struct {
	HTML        string `json:"html"`
	ShadowCount int    `json:"shadowCount"`
	IframeCount int    `json:"iframeCount"`
}

// FlattenShadowDOM inlines all shadow DOM content and iframe documents of the
// page into a single HTML string, so a captured back-office fixture can be
// checked offline with locator.Registry.Check.
//
// It mutates the live DOM; only call it on a page that is navigated away
// from afterwards. When the script fails it falls back to page.HTML() and
// reports zero counts.
func FlattenShadowDOM(page *rod.Page) (html string, shadowCount int, iframeCount int, err error) {
	res, evalErr := page.Eval(flattenShadowDOMJS)
	if evalErr == nil {
		var result flattenResult
		if jsonErr := json.Unmarshal([]byte(res.Value.Str()), &result); jsonErr == nil {
			return result.HTML, result.ShadowCount, result.IframeCount, nil
		}
	}

	html, err = page.HTML()
	if err != nil {
		return "", 0, 0, fmt.Errorf("flatten shadow DOM failed and fallback HTML failed: %w", err)
	}
	return html, 0, 0, nil
}
