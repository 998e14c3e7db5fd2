// Package features drives the Symfony add/edit product feature form.
package features

import (
	"context"
	"fmt"
	"time"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/data"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const (
	ListPath = "index.php/sell/catalog/features"
	NewPath  = ListPath + "/new"
	PageName = "Add feature"
)

// CSS Selectors for the feature form
const (
	SelectorShopAssociation locator.Selector = "#feature_shop_association"
	SelectorSaveButton      locator.Selector = "#save-button"
)

var (
	// NameInput is the name field of one language, by language id.
	NameInput = locator.Indexed("#feature_name_%d")
	// ShopCheckbox is the association checkbox of one shop, by shop id.
	ShopCheckbox = locator.Indexed("#feature_shop_association_%d")
)

// The shop tree is only rendered in multistore mode.
const shopTreeProbeTimeout = 500 * time.Millisecond

type AddFeature struct {
	*bobase.Page
}

func New(base *page.Base, baseURL string) *AddFeature {
	return &AddFeature{Page: bobase.New(base.Named(PageName), baseURL)}
}

// Goto opens an empty feature form.
func (p *AddFeature) Goto(ctx context.Context) error {
	return p.Page.Goto(ctx, NewPath)
}

// GotoEdit opens the form of an existing feature.
func (p *AddFeature) GotoEdit(ctx context.Context, id int) error {
	return p.Page.Goto(ctx, fmt.Sprintf("%s/%d/edit", ListPath, id))
}

// CreateEditFeature fills the name of every language in d, ticks the shops
// of d when the form has a shop tree, saves, and returns the success banner.
func (p *AddFeature) CreateEditFeature(ctx context.Context, d data.FeatureData) (string, error) {
	for _, id := range d.LanguageIDs() {
		if err := p.SetFieldValue(ctx, NameInput(id).String(), d.Names[id]); err != nil {
			return "", err
		}
	}

	if p.ElementVisible(ctx, SelectorShopAssociation.String(), shopTreeProbeTimeout) {
		for _, id := range d.ShopIDs {
			if err := p.SetCheckedState(ctx, ShopCheckbox(id).String(), true); err != nil {
				return "", err
			}
		}
	}

	if err := p.ClickAndWaitForNavigation(ctx, SelectorSaveButton.String()); err != nil {
		return "", err
	}
	return p.AlertSuccessParagraphContent(ctx)
}

func (p *AddFeature) Registry() locator.Registry {
	return Registry()
}

// Registry samples the per-language and per-shop templates at id 1.
func Registry() locator.Registry {
	r := bobase.Registry()
	r.Add("name input", NameInput(1))
	r.AddOptional("shop association", SelectorShopAssociation)
	r.AddOptional("shop checkbox", ShopCheckbox(1))
	r.Add("save button", SelectorSaveButton)
	return r
}
