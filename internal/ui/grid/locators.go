package grid

import (
	"fmt"

	"github.com/grez-lucas/bo-ui/internal/ui/locator"
)

// Confirmation is how a row deletion is confirmed by the back office.
type Confirmation int

const (
	// ConfirmModal is an in-page bootstrap modal with its own submit button.
	ConfirmModal Confirmation = iota
	// ConfirmDialog is a native window.confirm raised by the delete link.
	ConfirmDialog
)

const (
	defaultYes          = "Yes"
	defaultNo           = "No"
	defaultSuccessAlert = ".alert-success"
	defaultSelectAllPos = 1
	defaultBulkDelPos   = 4
)

// Config describes one legacy admin list. Everything except List and
// Columns has a usable default.
type Config struct {
	// List is the identifier the list is rendered with, e.g. "image_type".
	List string
	// Columns maps logical sort column names to 1-based header positions.
	Columns map[string]int

	RowDelete Confirmation
	// DeleteModalConfirm is the submit button of the delete modal.
	DeleteModalConfirm locator.Selector
	// DeleteModalCascade is the optional "also delete linked data" checkbox
	// inside the delete modal.
	DeleteModalCascade locator.Selector

	// SuccessAlert is the banner mutating operations return the text of.
	SuccessAlert locator.Selector

	// Positions of "select all" and "delete selected" in the bulk menu.
	BulkSelectAllPosition int
	BulkDeletePosition    int

	// Labels of the yes/no filter options.
	YesLabel string
	NoLabel  string
}

func (c Config) withDefaults() Config {
	if c.SuccessAlert == "" {
		c.SuccessAlert = defaultSuccessAlert
	}
	if c.DeleteModalConfirm == "" {
		c.DeleteModalConfirm = locator.Selector(fmt.Sprintf("#modalConfirmDelete%s .btn-confirm-delete", c.List))
	}
	if c.BulkSelectAllPosition <= 0 {
		c.BulkSelectAllPosition = defaultSelectAllPos
	}
	if c.BulkDeletePosition <= 0 {
		c.BulkDeletePosition = defaultBulkDelPos
	}
	if c.YesLabel == "" {
		c.YesLabel = defaultYes
	}
	if c.NoLabel == "" {
		c.NoLabel = defaultNo
	}
	return c
}

// Locators are the selectors of one list, derived from its identifier.
type Locators struct {
	Form        locator.Selector
	HeaderTitle locator.Selector
	RowCount    locator.Selector
	Table       locator.Selector

	FilterRow    locator.Selector
	FilterColumn locator.NameTemplate
	SearchButton locator.Selector
	ResetButton  locator.Selector

	Body            locator.Selector
	Rows            locator.Selector
	Row             locator.IndexTemplate
	Column          locator.RowColumnTemplate
	ColumnStatus    locator.RowColumnStatusTemplate
	EmptyRow        locator.Selector
	RowActions      locator.IndexTemplate
	RowEditLink     locator.IndexTemplate
	RowActionToggle locator.IndexTemplate
	RowDeleteLink   locator.IndexTemplate

	Head       locator.Selector
	SortColumn locator.IndexTemplate

	BulkActionBlock  locator.Selector
	BulkActionButton locator.Selector
	BulkActionMenu   locator.Selector
	BulkSelectAll    locator.Selector
	BulkDelete       locator.Selector

	PaginationLabel    locator.Selector
	PaginationDropdown locator.Selector
	PaginationItem     locator.IndexTemplate
	PaginationPrevious locator.Selector
	PaginationNext     locator.Selector

	SuccessAlert       locator.Selector
	DeleteModalConfirm locator.Selector
	DeleteModalCascade locator.Selector
}

// SortButton is the caret that sorts the column at index in direction dir.
func (l Locators) SortButton(index int, dir Direction) locator.Selector {
	return l.SortColumn(index).Child("i.icon-caret-" + string(dir))
}

// NewLocators derives the selectors of list from its configuration.
func NewLocators(cfg Config) Locators {
	cfg = cfg.withDefaults()
	list := cfg.List

	form := locator.Selector("#form-" + list)
	table := locator.Selector("#table-" + list)
	body := table.Child("tbody")
	head := table.Child("thead")
	row := locator.NthChild(body.Child("tr"))
	rowActions := func(i int) locator.Selector {
		return row(i).Child("td .btn-group-action")
	}
	bulkBlock := locator.Selector("div.bulk-actions")
	bulkMenu := bulkBlock.Child("ul.dropdown-menu")
	pagination := form.Child(".pagination")

	return Locators{
		Form:        form,
		HeaderTitle: form.Child(".panel-heading"),
		RowCount:    form.Child(".panel-heading .badge"),
		Table:       table,

		FilterRow: table.Child("tr.filter"),
		FilterColumn: func(column string) locator.Selector {
			return table.Child("tr.filter").Child(fmt.Sprintf("[name=%s]", locator.Quote(list+"Filter_"+column)))
		},
		SearchButton: locator.Selector("#submitFilterButton" + list),
		ResetButton:  locator.Selector(fmt.Sprintf("button[name=%s]", locator.Quote("submitReset"+list))),

		Body: body,
		Rows: body.Child("tr"),
		Row:  row,
		Column: func(r int, column string) locator.Selector {
			return row(r).Child(fmt.Sprintf("td.column-%s", column))
		},
		ColumnStatus: func(r int, column, status string) locator.Selector {
			return row(r).Child(fmt.Sprintf("td.column-%s span.action-%s", column, status))
		},
		EmptyRow:   body.Child("tr td.list-empty"),
		RowActions: rowActions,
		RowEditLink: func(i int) locator.Selector {
			return rowActions(i).Child("a.edit")
		},
		RowActionToggle: func(i int) locator.Selector {
			return rowActions(i).Child("button.dropdown-toggle")
		},
		RowDeleteLink: func(i int) locator.Selector {
			return rowActions(i).Child("ul.dropdown-menu a.delete")
		},

		Head:       head,
		SortColumn: locator.NthChild(head.Child("th")),

		BulkActionBlock:  bulkBlock,
		BulkActionButton: locator.Selector("#bulk_action_menu_" + list),
		BulkActionMenu:   bulkMenu,
		BulkSelectAll:    bulkMenu.Child(fmt.Sprintf("li:nth-child(%d) a", cfg.BulkSelectAllPosition)),
		BulkDelete:       bulkMenu.Child(fmt.Sprintf("li:nth-child(%d) a", cfg.BulkDeletePosition)),

		PaginationLabel:    form.Child("ul.pagination.pull-right li.active a"),
		PaginationDropdown: pagination.Child(".dropdown-toggle"),
		PaginationItem: func(n int) locator.Selector {
			return form.Child(fmt.Sprintf(".dropdown-menu a[data-items='%d']", n))
		},
		PaginationPrevious: form.Child(".icon-angle-left"),
		PaginationNext:     form.Child(".icon-angle-right"),

		SuccessAlert:       cfg.SuccessAlert,
		DeleteModalConfirm: cfg.DeleteModalConfirm,
		DeleteModalCascade: cfg.DeleteModalCascade,
	}
}

// Registry lists the list's locators, templates sampled at row/index 1 and
// the first configured column.
func (l Locators) Registry(sampleColumn string) locator.Registry {
	var r locator.Registry
	r.Add("form", l.Form)
	r.Add("header title", l.HeaderTitle)
	r.Add("row count", l.RowCount)
	r.Add("table", l.Table)
	r.Add("filter row", l.FilterRow)
	r.Add("filter column", l.FilterColumn(sampleColumn))
	r.Add("search button", l.SearchButton)
	r.AddOptional("reset button", l.ResetButton)
	r.Add("rows", l.Rows)
	r.Add("row", l.Row(1))
	r.Add("column", l.Column(1, sampleColumn))
	r.AddOptional("empty row", l.EmptyRow)
	r.Add("row actions", l.RowActions(1))
	r.AddOptional("row edit link", l.RowEditLink(1))
	r.AddOptional("row action toggle", l.RowActionToggle(1))
	r.AddOptional("row delete link", l.RowDeleteLink(1))
	r.Add("sort column", l.SortColumn(1))
	r.Add("bulk action block", l.BulkActionBlock)
	r.Add("bulk action button", l.BulkActionButton)
	r.Add("bulk select all", l.BulkSelectAll)
	r.Add("bulk delete", l.BulkDelete)
	r.AddOptional("pagination label", l.PaginationLabel)
	r.AddOptional("pagination dropdown", l.PaginationDropdown)
	r.AddOptional("success alert", l.SuccessAlert)
	r.AddOptional("delete modal confirm", l.DeleteModalConfirm)
	if l.DeleteModalCascade != "" {
		r.AddOptional("delete modal cascade", l.DeleteModalCascade)
	}
	return r
}
