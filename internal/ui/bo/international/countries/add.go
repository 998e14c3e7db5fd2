package countries

import (
	"context"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/bo/data"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const (
	AddPageName = "Add country"

	PageTitleCreate = "Countries > Add new •"
	PageTitleEdit   = "Edit: "
)

// CSS Selectors for the add/edit country form
const (
	SelectorNameInput          locator.Selector = "#name_1"
	SelectorISOCodeInput       locator.Selector = "#iso_code"
	SelectorCallPrefixInput    locator.Selector = "#call_prefix"
	SelectorCurrencySelect     locator.Selector = "#id_currency"
	SelectorZoneSelect         locator.Selector = "#id_zone"
	SelectorZipCodeFormatInput locator.Selector = "#zip_code_format"
	SelectorSaveButton         locator.Selector = "#country_form_submit_btn"
)

var (
	ToggleNeedZipCode     = locator.Toggle("#need_zip_code")
	ToggleActive          = locator.Toggle("#active")
	ToggleContainsStates  = locator.Toggle("#contains_states")
	ToggleNeedIDNumber    = locator.Toggle("#need_identification_number")
	ToggleDisplayTaxLabel = locator.Toggle("#display_tax_label")
)

// AddCountry is the add/edit country form.
type AddCountry struct {
	*bobase.Page
}

func NewAddCountry(base *page.Base, baseURL string) *AddCountry {
	return &AddCountry{Page: bobase.New(base.Named(AddPageName), baseURL)}
}

// CreateEditCountry sets every field from d in the order the form shows
// them, saves, and returns the success banner. Nothing in d is validated.
func (p *AddCountry) CreateEditCountry(ctx context.Context, d data.CountryData) (string, error) {
	if err := p.SetFieldValue(ctx, SelectorNameInput.String(), d.Name); err != nil {
		return "", err
	}
	if err := p.SetFieldValue(ctx, SelectorISOCodeInput.String(), d.ISOCode); err != nil {
		return "", err
	}
	if err := p.SetFieldValue(ctx, SelectorCallPrefixInput.String(), d.CallPrefix); err != nil {
		return "", err
	}
	if err := p.SelectByVisibleText(ctx, SelectorCurrencySelect.String(), d.Currency); err != nil {
		return "", err
	}
	if err := p.SelectByVisibleText(ctx, SelectorZoneSelect.String(), d.Zone); err != nil {
		return "", err
	}
	if err := p.SetCheckedState(ctx, ToggleNeedZipCode(d.NeedZipCode).String(), true); err != nil {
		return "", err
	}
	if err := p.SetFieldValue(ctx, SelectorZipCodeFormatInput.String(), d.ZipCodeFormat); err != nil {
		return "", err
	}

	for _, tg := range []struct {
		toggle locator.ToggleTemplate
		on     bool
	}{
		{ToggleActive, d.Active},
		{ToggleContainsStates, d.ContainsStates},
		{ToggleNeedIDNumber, d.NeedIDNumber},
		{ToggleDisplayTaxLabel, d.DisplayTaxLabel},
	} {
		if err := p.SetCheckedState(ctx, tg.toggle(tg.on).String(), true); err != nil {
			return "", err
		}
	}

	if err := p.ClickAndWaitForNavigation(ctx, SelectorSaveButton.String()); err != nil {
		return "", err
	}
	return p.AlertSuccessBlockContent(ctx)
}

func (p *AddCountry) Registry() locator.Registry {
	return AddRegistry()
}

// AddRegistry lists the form locators, toggles sampled in the "on" state.
func AddRegistry() locator.Registry {
	r := bobase.Registry()
	r.Add("name input", SelectorNameInput)
	r.Add("iso code input", SelectorISOCodeInput)
	r.Add("call prefix input", SelectorCallPrefixInput)
	r.Add("currency select", SelectorCurrencySelect)
	r.Add("zone select", SelectorZoneSelect)
	r.Add("need zip code toggle", ToggleNeedZipCode(true))
	r.Add("zip code format input", SelectorZipCodeFormatInput)
	r.Add("active toggle", ToggleActive(true))
	r.Add("contains states toggle", ToggleContainsStates(true))
	r.Add("need identification number toggle", ToggleNeedIDNumber(true))
	r.Add("display tax label toggle", ToggleDisplayTaxLabel(true))
	r.Add("save button", SelectorSaveButton)
	return r
}
