package bo

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/config"
	"github.com/grez-lucas/bo-ui/internal/logging"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/data"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/international/countries"
	"github.com/grez-lucas/bo-ui/internal/ui/browser"
	"github.com/grez-lucas/bo-ui/internal/ui/grid"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/botest"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/fakebo"
)

func TestRegistries_ResolveAgainstFakeBackOffice(t *testing.T) {
	srv := fakebo.New()

	for _, pr := range Registries() {
		t.Run(pr.Name, func(t *testing.T) {
			results, err := pr.Registry.Check(botest.Render(t, srv, pr.Path))
			require.NoError(t, err)
			assert.Empty(t, locator.Broken(results))
		})
	}
}

func TestLookupRegistry(t *testing.T) {
	pr, ok := LookupRegistry("countries")
	require.True(t, ok)
	assert.Equal(t, "index.php?controller=AdminCountries", pr.Path)

	_, ok = LookupRegistry("orders")
	assert.False(t, ok)
}

func TestNewPagesFromBase_SharesOneTab(t *testing.T) {
	tab := &rod.Page{}
	base := page.New(tab, page.WithName("root"))
	pages := NewPagesFromBase(base, "http://localhost:8080/admin-dev/")

	assert.Equal(t, "Countries", pages.Countries.Name())
	assert.Equal(t, "Image Settings", pages.ImageSettings.Name())
	assert.Equal(t, "Login", pages.Login.Name())
	assert.Equal(t, "root", base.Name(), "naming a page leaves the root untouched")
	assert.Same(t, tab, pages.AddFeature.Tab())
	assert.Same(t, tab, pages.ImageSettings.Tab())
	assert.Equal(t, "http://localhost:8080/admin-dev/index.php/sell/catalog/features/new", pages.AddFeature.URL("index.php/sell/catalog/features/new"))
}

// A whole session on one tab: log in, add a country, find it, delete it.
func TestPages_CountryScenario(t *testing.T) {
	env := botest.Start(t, fakebo.WithCredentials("demo@prestashop.com", "prestashop_demo"))
	ctx := t.Context()
	pages := NewPagesFromBase(env.Base, env.BaseURL)

	require.NoError(t, pages.Login.Goto(ctx))
	require.NoError(t, pages.Login.Login(ctx, "demo@prestashop.com", "prestashop_demo"))

	require.NoError(t, pages.Countries.Goto(ctx))
	total, err := pages.Countries.ResetAndGetRowCount(ctx)
	require.NoError(t, err)

	require.NoError(t, pages.Countries.GoToAddNewCountryPage(ctx))
	msg, err := pages.AddCountry.CreateEditCountry(ctx, data.CountryData{
		Name:          "Wakanda",
		ISOCode:       "WK",
		CallPrefix:    "999",
		Currency:      "Euro",
		Zone:          "Africa",
		NeedZipCode:   true,
		ZipCodeFormat: "NNNN",
		Active:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, fakebo.MsgCreated, msg)

	require.NoError(t, pages.Countries.FilterBy(ctx, grid.InputFilter(countries.ColumnName, "Wakanda")))
	n, err := pages.Countries.RowCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	msg, err = pages.Countries.DeleteCountry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, fakebo.MsgDeleted, msg)

	n, err = pages.Countries.ResetAndGetRowCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, total, n)
}

func TestSession_SignInWithoutCredentials(t *testing.T) {
	s := &Session{cfg: &config.Config{AdminEmail: "demo@prestashop.com"}}

	assert.ErrorIs(t, s.SignIn(t.Context()), ErrNoCredentials)
}

func TestOpen_SignsInWithConfiguredCredentials(t *testing.T) {
	testutil.SkipUnlessMode(t, testutil.ModeBrowser)

	srv := fakebo.New(fakebo.WithCredentials("demo@prestashop.com", "prestashop_demo"))
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		BaseURL:           ts.URL + srv.URL(""),
		AdminEmail:        "demo@prestashop.com",
		AdminPassword:     "prestashop_demo",
		Headless:          true,
		Timeout:           5 * time.Second,
		NavigationTimeout: 10 * time.Second,
		ProbeTimeout:      time.Second,
		DialogTimeout:     5 * time.Second,
	}
	require.NoError(t, cfg.Validate())

	s, err := Open(cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := t.Context()
	require.NoError(t, s.SignIn(ctx))

	require.NoError(t, s.Goto(ctx, countries.Path))
	title, err := s.Countries.PageTitle(ctx)
	require.NoError(t, err)
	assert.Contains(t, title, "Countries")
}

// Replays a session recorded with capture-fixtures --page countries
// --har countries. The recording is served by path, so its redacted tokens
// never have to match the live ones.
func TestReplay_CountriesRecording(t *testing.T) {
	testutil.SkipUnlessMode(t, testutil.ModeReplay)
	har := testutil.LoadRecordingOrSkip(t, "countries")

	replayer := testutil.NewReplayer(har, testutil.WithPassthrough(false))
	require.NotZero(t, replayer.Stats()["path_matches"])

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Headless = true

	s, err := Open(cfg, logging.Nop(), browser.WithHijacker(replayer.Middleware()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := t.Context()
	require.NoError(t, s.Countries.Goto(ctx))

	n, err := s.Countries.RowCount(ctx)
	require.NoError(t, err)
	assert.Positive(t, n)
}

// Read-only smoke check against the back office configured through BO_*
// variables (or a .env file).
func TestOpen_LiveBackOffice(t *testing.T) {
	testutil.SkipUnlessMode(t, testutil.ModeLive)

	cfg, err := config.Load(".env")
	require.NoError(t, err)
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		t.Skip("Skipping: BO_ADMIN_EMAIL/BO_ADMIN_PASSWORD not set")
	}

	s, err := Open(cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := t.Context()
	require.NoError(t, s.SignIn(ctx))

	for _, pr := range []string{"countries", "image-settings"} {
		t.Run(pr, func(t *testing.T) {
			reg, ok := LookupRegistry(pr)
			require.True(t, ok)
			require.NoError(t, s.Goto(ctx, reg.Path))

			html, err := s.Tab().HTML()
			require.NoError(t, err)
			results, err := reg.Registry.Check(html)
			require.NoError(t, err)
			assert.Empty(t, locator.Broken(results))
		})
	}

	n, err := s.Countries.ResetAndGetRowCount(ctx)
	require.NoError(t, err)
	assert.Positive(t, n)
}
