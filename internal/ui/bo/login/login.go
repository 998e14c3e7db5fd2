// Package login drives the back-office login form.
package login

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const Path = "index.php?controller=AdminLogin"

// CSS Selectors for the login page
const (
	SelectorEmailInput    locator.Selector = "#email"
	SelectorPasswordInput locator.Selector = "#passwd"
	SelectorSubmitButton  locator.Selector = "#submit_login"
	SelectorErrorBlock    locator.Selector = "#error"
)

const errorProbeTimeout = 500 * time.Millisecond

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginError is the message the back office shows for a rejected login.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login rejected: %s", e.Message)
}

func (e *LoginError) Unwrap() error {
	return ErrInvalidCredentials
}

type Login struct {
	*bobase.Page
}

func New(base *page.Base, baseURL string) *Login {
	return &Login{Page: bobase.New(base.Named("Login"), baseURL)}
}

// Goto opens the login form.
func (l *Login) Goto(ctx context.Context) error {
	return l.Page.Goto(ctx, Path)
}

// Login submits the credentials and waits for the resulting page. A rejected
// login is returned as a *LoginError.
func (l *Login) Login(ctx context.Context, email, password string) error {
	if err := l.SetFieldValue(ctx, SelectorEmailInput.String(), email); err != nil {
		return err
	}
	if err := l.SetFieldValue(ctx, SelectorPasswordInput.String(), password); err != nil {
		return err
	}
	if err := l.ClickAndWaitForNavigation(ctx, SelectorSubmitButton.String()); err != nil {
		return err
	}

	if !l.ElementVisible(ctx, SelectorErrorBlock.String(), errorProbeTimeout) {
		return nil
	}
	msg, err := l.LoginError(ctx)
	if err != nil {
		return err
	}
	return l.Fail("login", SelectorErrorBlock.String(), &LoginError{Message: msg}, "")
}

// LoginError returns the text of the error block.
func (l *Login) LoginError(ctx context.Context) (string, error) {
	return l.ReadText(ctx, SelectorErrorBlock.String())
}

func (l *Login) Registry() locator.Registry {
	return Registry()
}

// Registry lists the login form locators.
func Registry() locator.Registry {
	var r locator.Registry
	r.Add("email input", SelectorEmailInput)
	r.Add("password input", SelectorPasswordInput)
	r.Add("submit button", SelectorSubmitButton)
	r.AddOptional("error block", SelectorErrorBlock)
	return r
}

// DetectLoginError inspects a captured login response. It returns nil when
// the page shows no error.
func DetectLoginError(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Not a login page
		return nil
	}

	msg := strings.Join(strings.Fields(doc.Find(SelectorErrorBlock.String()).Text()), " ")
	if msg == "" {
		return nil
	}
	return &LoginError{Message: msg}
}
