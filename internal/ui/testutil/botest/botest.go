// Package botest wires the fake back office to a headless tab for page
// object tests.
package botest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/ui/browser"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/fakebo"
)

// Env is a fake back office served over HTTP and a tab to drive it.
type Env struct {
	Server *fakebo.Server
	// BaseURL is the admin root, e.g. http://127.0.0.1:41234/admin-dev/.
	BaseURL string
	Base    *page.Base
}

// Start skips unless browser mode is on, then serves a fresh fake back office
// and opens a headless tab. Everything is closed via t.Cleanup.
func Start(t *testing.T, opts ...fakebo.Option) *Env {
	t.Helper()
	testutil.SkipUnlessMode(t, testutil.ModeBrowser)

	srv := fakebo.New(opts...)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	session, err := browser.Launch(browser.WithHeadless(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	tab, err := session.NewTab()
	require.NoError(t, err)

	base := page.New(tab,
		page.WithTimeout(5*time.Second),
		page.WithNavigationTimeout(10*time.Second),
		page.WithDialogTimeout(5*time.Second),
	)

	return &Env{
		Server:  srv,
		BaseURL: ts.URL + srv.URL(""),
		Base:    base,
	}
}

// Open navigates the tab to path under the admin root.
func (e *Env) Open(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, e.Base.NavigateAndWaitForLoad(t.Context(), e.BaseURL+strings.TrimPrefix(path, "/")))
}

// Render returns the HTML srv serves for a GET of path, without a browser.
func Render(t *testing.T, srv *fakebo.Server, path string) string {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, srv.URL(path), nil))
	require.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	return rec.Body.String()
}
