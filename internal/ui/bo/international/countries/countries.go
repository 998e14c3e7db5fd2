// Package countries drives International > Locations > Countries: the
// country list and the add/edit country form.
package countries

import (
	"context"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/grid"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const (
	Path     = "index.php?controller=AdminCountries"
	PageName = "Countries"
	List     = "country"
)

// Column keys of the country list.
const (
	ColumnID         = "id_country"
	ColumnName       = "name"
	ColumnISOCode    = "iso_code"
	ColumnCallPrefix = "call_prefix"
	ColumnZone       = "zone"
	ColumnActive     = "active"
)

const (
	SortByID         grid.Column = ColumnID
	SortByName       grid.Column = ColumnName
	SortByISOCode    grid.Column = ColumnISOCode
	SortByCallPrefix grid.Column = ColumnCallPrefix
	SortByZone       grid.Column = ColumnZone
)

const SelectorAddNewCountryLink locator.Selector = "#page-header-desc-country-new_country"

// GridConfig describes the country list. Rows are deleted through a native
// confirm dialog.
var GridConfig = grid.Config{
	List: List,
	Columns: map[string]int{
		ColumnID:         2,
		ColumnName:       3,
		ColumnISOCode:    4,
		ColumnCallPrefix: 5,
		ColumnZone:       6,
	},
	RowDelete: grid.ConfirmDialog,
}

type Countries struct {
	*bobase.Page
	*grid.Grid
}

func New(base *page.Base, baseURL string) *Countries {
	named := base.Named(PageName)
	return &Countries{
		Page: bobase.New(named, baseURL),
		Grid: grid.New(named, GridConfig),
	}
}

func (p *Countries) Goto(ctx context.Context) error {
	return p.Page.Goto(ctx, Path)
}

// GoToAddNewCountryPage follows the "Add new country" header link.
func (p *Countries) GoToAddNewCountryPage(ctx context.Context) error {
	return p.ClickAndWaitForNavigation(ctx, SelectorAddNewCountryLink.String())
}

// GoToEditCountryPage opens the edit form of row.
func (p *Countries) GoToEditCountryPage(ctx context.Context, row int) error {
	return p.GoToEditRow(ctx, row)
}

// CountryStatus reports whether the country of row is enabled.
func (p *Countries) CountryStatus(ctx context.Context, row int) bool {
	return p.RowStatus(ctx, row, ColumnActive)
}

// DeleteCountry deletes row, accepting the browser's confirm dialog.
func (p *Countries) DeleteCountry(ctx context.Context, row int) (string, error) {
	return p.DeleteRow(ctx, row, grid.DeleteOptions{})
}

func (p *Countries) Registry() locator.Registry {
	return Registry()
}

func Registry() locator.Registry {
	r := bobase.Registry()
	r.Add("add new country link", SelectorAddNewCountryLink)
	return append(r, grid.NewLocators(GridConfig).Registry(ColumnISOCode)...)
}
