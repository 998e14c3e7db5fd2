package browser

import (
	"strings"
	"testing"

	"github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/ui/testutil"
)

// setupPage launches a headless browser through Launch and opens a blank
// tab. Both are closed via t.Cleanup.
func setupPage(t *testing.T) *rod.Page {
	t.Helper()
	testutil.SkipUnlessMode(t, testutil.ModeBrowser)

	session, err := Launch(WithHeadless(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	page, err := session.NewTab()
	require.NoError(t, err)
	t.Cleanup(func() { _ = page.Close() })

	return page
}

func TestFlattenShadowDOM_NoShadow(t *testing.T) {
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => {
		document.body.innerHTML = '<div id="plain"><p>Hello World</p></div>';
	}`)

	html, shadowCount, iframeCount, err := FlattenShadowDOM(page)

	require.NoError(t, err)
	assert.Equal(t, 0, shadowCount)
	assert.Equal(t, 0, iframeCount)
	assert.Contains(t, html, "Hello World")
	assert.Contains(t, html, `id="plain"`)
}

func TestFlattenShadowDOM_SingleShadow(t *testing.T) {
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => {
		document.body.innerHTML = '<my-component></my-component>';
		const host = document.querySelector('my-component');
		const shadow = host.attachShadow({mode: 'open'});
		shadow.innerHTML = '<div class="shadow-content">Shadow Text</div>';
	}`)

	html, shadowCount, _, err := FlattenShadowDOM(page)

	require.NoError(t, err)
	assert.Equal(t, 1, shadowCount)
	assert.Contains(t, html, `data-shadow-root="true"`)
	assert.Contains(t, html, `data-shadow-host="my-component"`)
	assert.Contains(t, html, "Shadow Text")
}

func TestFlattenShadowDOM_NestedShadow(t *testing.T) {
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => {
		document.body.innerHTML = '<outer-el></outer-el>';

		const outer = document.querySelector('outer-el');
		const outerShadow = outer.attachShadow({mode: 'open'});
		outerShadow.innerHTML = '<inner-el></inner-el>';

		const inner = outerShadow.querySelector('inner-el');
		const innerShadow = inner.attachShadow({mode: 'open'});
		innerShadow.innerHTML = '<span class="deep">Nested Content</span>';
	}`)

	html, shadowCount, _, err := FlattenShadowDOM(page)

	require.NoError(t, err)
	assert.Equal(t, 2, shadowCount)
	assert.Contains(t, html, `data-shadow-host="outer-el"`)
	assert.Contains(t, html, `data-shadow-host="inner-el"`)
	assert.Contains(t, html, "Nested Content")
}

func TestFlattenShadowDOM_LightDOMChildren(t *testing.T) {
	// Light DOM children projected through a <slot> can be shadow hosts
	// themselves.
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => {
		document.body.innerHTML = '<outer-host><inner-host>Light text</inner-host></outer-host>';

		// Outer host: shadow with a <slot> that projects light DOM children
		const outer = document.querySelector('outer-host');
		outer.attachShadow({mode: 'open'}).innerHTML =
			'<div class="outer-layout"><slot></slot></div>';

		// Inner host (light DOM child of outer): has its own shadow with data
		const inner = document.querySelector('inner-host');
		inner.attachShadow({mode: 'open'}).innerHTML =
			'<table id="data-table"><tr><td>secret-data</td></tr></table>';
	}`)

	html, shadowCount, _, err := FlattenShadowDOM(page)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, shadowCount, 2, "both shadow roots should be counted")
	assert.Contains(t, html, `data-shadow-host="inner-host"`,
		"inner shadow host should be flattened")
	assert.Contains(t, html, "secret-data",
		"data inside inner shadow root should be present")
	assert.Contains(t, html, "data-table",
		"selectors inside inner shadow root should be reachable")
}

func TestFlattenShadowDOM_ShadowStyles(t *testing.T) {
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => {
		document.body.innerHTML = '<styled-el></styled-el>';
		const host = document.querySelector('styled-el');
		const shadow = host.attachShadow({mode: 'open'});
		shadow.innerHTML = '<style>.inner { color: red; }</style><div class="inner">Styled</div>';
	}`)

	html, shadowCount, _, err := FlattenShadowDOM(page)

	require.NoError(t, err)
	assert.Equal(t, 1, shadowCount)

	// Style should be copied with the data-from-shadow marker
	assert.True(t, strings.Contains(html, `data-from-shadow="true"`),
		"shadow styles should have data-from-shadow attribute")
	assert.Contains(t, html, "color: red")
	assert.Contains(t, html, "Styled")
}

func TestFlattenShadowDOM_SameOriginIframe(t *testing.T) {
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => {
		document.body.innerHTML = '<iframe id="module-config" srcdoc="<p class=cfg>Module settings</p>"></iframe>';
	}`)
	page.MustElement("iframe#module-config").MustFrame().MustElement("p.cfg")

	html, _, iframeCount, err := FlattenShadowDOM(page)

	require.NoError(t, err)
	assert.Equal(t, 1, iframeCount)
	assert.Contains(t, html, `data-iframe-id="module-config"`)
	assert.Contains(t, html, "Module settings")
}

func TestTypeFast_MixedRunes(t *testing.T) {
	page := setupPage(t)
	page.MustNavigate("about:blank").MustWaitLoad()
	page.MustEval(`() => { document.body.innerHTML = '<input id="name">'; }`)

	el := page.MustElement("#name")
	require.NoError(t, TypeFast(el, "Wakanda"))
	require.NoError(t, TypeFast(el, " Côte"))

	assert.Equal(t, "Wakanda Côte", el.MustProperty("value").Str())
}
