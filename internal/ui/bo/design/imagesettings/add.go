package imagesettings

import (
	"context"
	"strconv"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/data"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const (
	AddPageName = "Add image type"

	PageTitleCreate = "Image Settings > Add new"
	PageTitleEdit   = "Image Settings > Edit:"
)

// CSS Selectors for the add/edit image type form
const (
	SelectorNameInput    locator.Selector = "#name"
	SelectorWidthInput   locator.Selector = "#width"
	SelectorHeightInput  locator.Selector = "#height"
	SelectorSubmitButton locator.Selector = "#image_type_form_submit_btn"
)

var (
	ToggleProducts      = locator.Toggle("#products")
	ToggleCategories    = locator.Toggle("#categories")
	ToggleManufacturers = locator.Toggle("#manufacturers")
	ToggleSuppliers     = locator.Toggle("#suppliers")
	ToggleStores        = locator.Toggle("#stores")
)

// AddImageType is the add/edit image type form.
type AddImageType struct {
	*bobase.Page
}

func NewAddImageType(base *page.Base, baseURL string) *AddImageType {
	return &AddImageType{Page: bobase.New(base.Named(AddPageName), baseURL)}
}

// CreateEditImageType fills every field from d, saves, and returns the
// success banner.
func (p *AddImageType) CreateEditImageType(ctx context.Context, d data.ImageTypeData) (string, error) {
	fields := []struct {
		sel   locator.Selector
		value string
	}{
		{SelectorNameInput, d.Name},
		{SelectorWidthInput, strconv.Itoa(d.Width)},
		{SelectorHeightInput, strconv.Itoa(d.Height)},
	}
	for _, f := range fields {
		if err := p.SetFieldValue(ctx, f.sel.String(), f.value); err != nil {
			return "", err
		}
	}

	toggles := []struct {
		toggle locator.ToggleTemplate
		on     bool
	}{
		{ToggleProducts, d.Products},
		{ToggleCategories, d.Categories},
		{ToggleManufacturers, d.Manufacturers},
		{ToggleSuppliers, d.Suppliers},
		{ToggleStores, d.Stores},
	}
	for _, tg := range toggles {
		if err := p.SetCheckedState(ctx, tg.toggle(tg.on).String(), true); err != nil {
			return "", err
		}
	}

	if err := p.ClickAndWaitForNavigation(ctx, SelectorSubmitButton.String()); err != nil {
		return "", err
	}
	return p.AlertSuccessBlockContent(ctx)
}

func (p *AddImageType) Registry() locator.Registry {
	return AddRegistry()
}

// AddRegistry lists the form locators, toggles sampled in the "on" state.
func AddRegistry() locator.Registry {
	r := bobase.Registry()
	r.Add("name input", SelectorNameInput)
	r.Add("width input", SelectorWidthInput)
	r.Add("height input", SelectorHeightInput)
	r.Add("products toggle", ToggleProducts(true))
	r.Add("categories toggle", ToggleCategories(true))
	r.Add("manufacturers toggle", ToggleManufacturers(true))
	r.Add("suppliers toggle", ToggleSuppliers(true))
	r.Add("stores toggle", ToggleStores(true))
	r.Add("submit button", SelectorSubmitButton)
	return r
}
