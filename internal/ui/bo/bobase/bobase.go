// Package bobase is the part every back-office page shares: the flash
// alerts, the page heading and URL building against the configured back
// office.
package bobase

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

// CSS selectors shared by all back-office pages
const (
	SelectorAlertSuccessBlock     locator.Selector = "div.alert.alert-success"
	SelectorAlertSuccessParagraph locator.Selector = "div.alert.alert-success div.alert-text p"
	SelectorAlertDanger           locator.Selector = "div.alert.alert-danger"
	SelectorPageHeading           locator.Selector = "h2.page-title"
)

// Page embeds the base primitives and adds what every back-office page has.
type Page struct {
	*page.Base
	baseURL string
}

// New binds a back-office page to base. baseURL is the admin root, e.g.
// "http://localhost:8080/admin-dev/".
func New(base *page.Base, baseURL string) *Page {
	return &Page{Base: base, baseURL: baseURL}
}

// URL resolves path against the admin root.
func (p *Page) URL(path string) string {
	return strings.TrimSuffix(p.baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Goto opens path relative to the admin root.
func (p *Page) Goto(ctx context.Context, path string) error {
	return p.NavigateAndWaitForLoad(ctx, p.URL(path))
}

// AlertSuccessBlockContent returns the text of the whole success alert.
func (p *Page) AlertSuccessBlockContent(ctx context.Context) (string, error) {
	return p.ReadText(ctx, SelectorAlertSuccessBlock.String())
}

// AlertSuccessParagraphContent returns only the message paragraph of the
// success alert.
func (p *Page) AlertSuccessParagraphContent(ctx context.Context) (string, error) {
	return p.ReadText(ctx, SelectorAlertSuccessParagraph.String())
}

func (p *Page) AlertDangerContent(ctx context.Context) (string, error) {
	return p.ReadText(ctx, SelectorAlertDanger.String())
}

// PageHeading returns the heading shown above the page content.
func (p *Page) PageHeading(ctx context.Context) (string, error) {
	return p.ReadText(ctx, SelectorPageHeading.String())
}

// Registry lists the shared locators. Alerts only exist after a mutation.
func (p *Page) Registry() locator.Registry {
	return Registry()
}

func Registry() locator.Registry {
	var r locator.Registry
	r.AddOptional("alert success block", SelectorAlertSuccessBlock)
	r.AddOptional("alert success paragraph", SelectorAlertSuccessParagraph)
	r.AddOptional("alert danger", SelectorAlertDanger)
	r.AddOptional("page heading", SelectorPageHeading)
	return r
}

// Alerts are the flash messages of a rendered page.
type Alerts struct {
	Success string
	Danger  string
}

// ParseAlerts extracts the flash messages from captured HTML.
func ParseAlerts(html string) (Alerts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Alerts{}, fmt.Errorf("%w: %v", page.ErrParse, err)
	}

	return Alerts{
		Success: collapse(doc.Find(SelectorAlertSuccessBlock.String()).First().Text()),
		Danger:  collapse(doc.Find(SelectorAlertDanger.String()).First().Text()),
	}, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
