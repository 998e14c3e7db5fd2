// Package bo assembles the back-office page objects. Every page of one Pages
// value drives the same tab; open another tab for another set.
package bo

import (
	"github.com/go-rod/rod"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/catalog/features"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/design/imagesettings"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/international/countries"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/login"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

// Pages is every page object bound to one tab.
type Pages struct {
	Login         *login.Login
	ImageSettings *imagesettings.ImageSettings
	AddImageType  *imagesettings.AddImageType
	Countries     *countries.Countries
	AddCountry    *countries.AddCountry
	AddFeature    *features.AddFeature
}

// NewPages binds the page objects to tab. baseURL is the admin root of the
// back office under test.
func NewPages(tab *rod.Page, baseURL string, opts ...page.Option) *Pages {
	return NewPagesFromBase(page.New(tab, opts...), baseURL)
}

// NewPagesFromBase is NewPages for callers that already hold a Base.
func NewPagesFromBase(base *page.Base, baseURL string) *Pages {
	return &Pages{
		Login:         login.New(base, baseURL),
		ImageSettings: imagesettings.New(base, baseURL),
		AddImageType:  imagesettings.NewAddImageType(base, baseURL),
		Countries:     countries.New(base, baseURL),
		AddCountry:    countries.NewAddCountry(base, baseURL),
		AddFeature:    features.New(base, baseURL),
	}
}

// PageRegistry is the registry of one page, with the path it lives at.
type PageRegistry struct {
	Name     string
	Path     string
	Registry locator.Registry
}

// Registries lists every page's locators, keyed by the page a probe must
// open to resolve them.
func Registries() []PageRegistry {
	return []PageRegistry{
		{Name: "login", Path: login.Path, Registry: login.Registry()},
		{Name: "image-settings", Path: imagesettings.Path, Registry: imagesettings.Registry()},
		{Name: "add-image-type", Path: imagesettings.Path + "&addimage_type", Registry: imagesettings.AddRegistry()},
		{Name: "countries", Path: countries.Path, Registry: countries.Registry()},
		{Name: "add-country", Path: countries.Path + "&addcountry", Registry: countries.AddRegistry()},
		{Name: "add-feature", Path: features.NewPath, Registry: features.Registry()},
	}
}

// LookupRegistry finds a page registry by name.
func LookupRegistry(name string) (PageRegistry, bool) {
	for _, r := range Registries() {
		if r.Name == name {
			return r, true
		}
	}
	return PageRegistry{}, false
}
