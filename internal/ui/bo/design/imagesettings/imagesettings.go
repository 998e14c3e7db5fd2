// Package imagesettings drives Design > Image Settings: the image type list,
// its add/edit form and thumbnail regeneration.
package imagesettings

import (
	"context"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/bobase"
	"github.com/grez-lucas/bo-ui/internal/ui/grid"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const (
	Path     = "index.php?controller=AdminImages"
	PageName = "Image Settings"
	List     = "image_type"
)

// Column keys of the image type list.
const (
	ColumnID            = "id_image_type"
	ColumnName          = "name"
	ColumnWidth         = "width"
	ColumnHeight        = "height"
	ColumnProducts      = "products"
	ColumnCategories    = "categories"
	ColumnManufacturers = "manufacturers"
	ColumnSuppliers     = "suppliers"
	ColumnStores        = "stores"
)

// Sortable columns.
const (
	SortByID     grid.Column = ColumnID
	SortByName   grid.Column = ColumnName
	SortByWidth  grid.Column = ColumnWidth
	SortByHeight grid.Column = ColumnHeight
)

// CSS Selectors for the image settings page
const (
	SelectorNewImageTypeLink   locator.Selector = "a[data-role=page-header-desc-image_type-link]"
	SelectorDeleteModal        locator.Selector = "#modalConfirmDeleteType"
	SelectorDeleteModalConfirm locator.Selector = "#modalConfirmDeleteType .btn-confirm-delete-images-type"
	SelectorDeleteLinkedImages locator.Selector = "#modalConfirmDeleteType #delete_linked_images"

	SelectorRegenerateForm    locator.Selector = "#display_regenerate_form"
	SelectorRegenerateButton  locator.Selector = "#display_regenerate_form button[type=submit]"
	SelectorRegenerateModal   locator.Selector = "#modalRegenerateThumbnails"
	SelectorRegenerateConfirm locator.Selector = "#modalRegenerateThumbnails .btn-regenerate-thumbnails"
)

// GridConfig describes the image type list.
var GridConfig = grid.Config{
	List: List,
	Columns: map[string]int{
		ColumnID:     2,
		ColumnName:   3,
		ColumnWidth:  4,
		ColumnHeight: 5,
	},
	RowDelete:          grid.ConfirmModal,
	DeleteModalConfirm: SelectorDeleteModalConfirm,
	DeleteModalCascade: SelectorDeleteLinkedImages,
}

// ImageSettings is the image type list. The grid operations are promoted
// from the embedded Grid.
type ImageSettings struct {
	*bobase.Page
	*grid.Grid
}

func New(base *page.Base, baseURL string) *ImageSettings {
	named := base.Named(PageName)
	return &ImageSettings{
		Page: bobase.New(named, baseURL),
		Grid: grid.New(named, GridConfig),
	}
}

func (p *ImageSettings) Goto(ctx context.Context) error {
	return p.Page.Goto(ctx, Path)
}

// GoToNewImageTypePage follows the "Add new image type" header link.
func (p *ImageSettings) GoToNewImageTypePage(ctx context.Context) error {
	return p.ClickAndWaitForNavigation(ctx, SelectorNewImageTypeLink.String())
}

// GoToEditImageTypePage opens the edit form of row.
func (p *ImageSettings) GoToEditImageTypePage(ctx context.Context, row int) error {
	return p.GoToEditRow(ctx, row)
}

// ImageTypeStatus reports whether the image type of row applies to column
// (products, categories, ...).
func (p *ImageSettings) ImageTypeStatus(ctx context.Context, row int, column string) bool {
	return p.RowStatus(ctx, row, column)
}

// DeleteImageType deletes row, optionally with the images generated for it.
func (p *ImageSettings) DeleteImageType(ctx context.Context, row int, deleteLinkedImages bool) (string, error) {
	return p.DeleteRow(ctx, row, grid.DeleteOptions{Cascade: deleteLinkedImages})
}

// RegenerateThumbnails confirms the regeneration modal and returns the
// success banner.
func (p *ImageSettings) RegenerateThumbnails(ctx context.Context) (string, error) {
	confirm := SelectorRegenerateConfirm.String()

	err := p.PerformAndAwaitTransition(ctx, p.ClickAction(SelectorRegenerateButton.String()), page.AwaitVisible(confirm))
	if err != nil {
		return "", err
	}
	if err := p.ClickAndWaitForNavigation(ctx, confirm); err != nil {
		return "", err
	}
	return p.AlertSuccessBlockContent(ctx)
}

// Registry lists the page's own locators followed by the list's.
func (p *ImageSettings) Registry() locator.Registry {
	return Registry()
}

func Registry() locator.Registry {
	r := bobase.Registry()
	r.Add("new image type link", SelectorNewImageTypeLink)
	r.Add("delete modal", SelectorDeleteModal)
	r.Add("regenerate form", SelectorRegenerateForm)
	r.Add("regenerate button", SelectorRegenerateButton)
	r.Add("regenerate modal", SelectorRegenerateModal)
	r.Add("regenerate confirm", SelectorRegenerateConfirm)
	return append(r, grid.NewLocators(GridConfig).Registry(ColumnName)...)
}
