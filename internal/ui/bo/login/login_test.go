package login

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/botest"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/fakebo"
)

const (
	email    = "demo@prestashop.com"
	password = "prestashop_demo"
)

func TestRegistry_ResolvesAgainstLoginPage(t *testing.T) {
	html := botest.Render(t, fakebo.New(fakebo.WithCredentials(email, password)), Path)

	results, err := Registry().Check(html)
	require.NoError(t, err)
	assert.Empty(t, locator.Broken(results))
}

func TestDetectLoginError(t *testing.T) {
	srv := fakebo.New(fakebo.WithCredentials(email, password))

	form := url.Values{"email": {email}, "passwd": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, srv.URL(Path), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	err := DetectLoginError(rec.Body.String())
	require.ErrorIs(t, err, ErrInvalidCredentials)

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, fakebo.MsgBadCredentials, loginErr.Message)
}

func TestDetectLoginError_CapturedPage(t *testing.T) {
	html := testutil.LoadFixture(t, "login_error")

	err := DetectLoginError(html)
	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "There is 1 error. "+fakebo.MsgBadCredentials, loginErr.Message)

	results, err := Registry().Check(html)
	require.NoError(t, err)
	assert.Empty(t, locator.Broken(results))
}

func TestDetectLoginError_NoError(t *testing.T) {
	html := botest.Render(t, fakebo.New(fakebo.WithCredentials(email, password)), Path)

	assert.NoError(t, DetectLoginError(html))
	assert.NoError(t, DetectLoginError(""))
}

func TestLogin_Success(t *testing.T) {
	env := botest.Start(t, fakebo.WithCredentials(email, password))
	ctx := t.Context()

	l := New(env.Base, env.BaseURL)
	require.NoError(t, l.Goto(ctx))
	require.NoError(t, l.Login(ctx, email, password))

	title, err := l.PageTitle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dashboard • "+fakebo.ShopName, title)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := botest.Start(t, fakebo.WithCredentials(email, password))
	ctx := t.Context()

	l := New(env.Base, env.BaseURL)
	require.NoError(t, l.Goto(ctx))

	err := l.Login(ctx, email, "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	var pe *page.PageError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Login", pe.Page)

	msg, err := l.LoginError(ctx)
	require.NoError(t, err)
	assert.Equal(t, fakebo.MsgBadCredentials, msg)
}
