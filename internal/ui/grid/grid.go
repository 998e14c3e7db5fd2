// Package grid drives the legacy back-office list: row count, filters, column
// reads, row and bulk deletion, sorting and pagination. A Grid is shared by
// every list page; the page only supplies the list identifier and its column
// layout.
package grid

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

const (
	resetProbeTimeout  = 2 * time.Second
	statusProbeTimeout = 1 * time.Second
)

// Column is a logical sort column, resolved to a header position through
// Config.Columns.
type Column string

// DeleteOptions tunes DeleteRow.
type DeleteOptions struct {
	// Cascade ticks the modal's "also delete linked data" checkbox when the
	// list has one.
	Cascade bool
}

// Grid is bound to one list on one tab.
type Grid struct {
	base *page.Base
	cfg  Config
	loc  Locators
}

// New binds a grid to base. base's page name is reused for log lines.
func New(base *page.Base, cfg Config) *Grid {
	cfg = cfg.withDefaults()
	return &Grid{
		base: base,
		cfg:  cfg,
		loc:  NewLocators(cfg),
	}
}

func (g *Grid) Locators() Locators {
	return g.loc
}

// Columns lists the sortable columns ordered by header position.
func (g *Grid) Columns() []Column {
	cols := make([]Column, 0, len(g.cfg.Columns))
	for name := range g.cfg.Columns {
		cols = append(cols, Column(name))
	}
	sort.Slice(cols, func(i, j int) bool {
		return g.cfg.Columns[string(cols[i])] < g.cfg.Columns[string(cols[j])]
	})
	return cols
}

// ParseColumn validates a logical column name against the list layout.
func (g *Grid) ParseColumn(name string) (Column, error) {
	if _, ok := g.cfg.Columns[name]; !ok {
		return "", fmt.Errorf("%w: %q in list %s", page.ErrUnknownColumn, name, g.cfg.List)
	}
	return Column(name), nil
}

// RowCount reads the total number of rows from the header badge.
func (g *Grid) RowCount(ctx context.Context) (int, error) {
	return g.base.ReadNumberFromText(ctx, g.loc.RowCount.String())
}

// ResetFilters clears active filters. The reset button only exists while a
// filter is active, so it is probed first.
func (g *Grid) ResetFilters(ctx context.Context) error {
	if !g.base.ElementNotVisible(ctx, g.loc.ResetButton.String(), resetProbeTimeout) {
		if err := g.base.ClickAndWaitForNavigation(ctx, g.loc.ResetButton.String()); err != nil {
			return err
		}
	}
	return g.base.WaitForVisibleSelector(ctx, g.loc.SearchButton.String(), resetProbeTimeout)
}

// ResetAndGetRowCount resets filters and returns the unfiltered row count.
func (g *Grid) ResetAndGetRowCount(ctx context.Context) (int, error) {
	if err := g.ResetFilters(ctx); err != nil {
		return 0, err
	}
	return g.RowCount(ctx)
}

// FilterBy applies f and waits for the filtered list.
func (g *Grid) FilterBy(ctx context.Context, f Filter) error {
	field := g.loc.FilterColumn(f.Column).String()

	switch f.Kind {
	case FilterInput:
		if err := g.base.SetFieldValue(ctx, field, f.Value); err != nil {
			return err
		}
		return g.base.ClickAndWaitForNavigation(ctx, g.loc.SearchButton.String())
	case FilterSelect:
		label := g.cfg.NoLabel
		if f.Value == "1" {
			label = g.cfg.YesLabel
		}
		return g.base.PerformAndAwaitTransition(ctx, g.base.SelectAction(field, label), page.AwaitNavigation())
	default:
		return g.base.Fail("filter", field, page.ErrUnsupportedFilterKind, f.Kind.String())
	}
}

// ReadColumn returns the text of column in row (1-based).
func (g *Grid) ReadColumn(ctx context.Context, row int, column string) (string, error) {
	if row < 1 {
		return "", g.base.Fail("read column", "", page.ErrElementNotFound, fmt.Sprintf("row %d, rows are 1-based", row))
	}
	return g.base.ReadText(ctx, g.loc.Column(row, column).String())
}

// ReadAllColumn returns column for rows 1..RowCount.
func (g *Grid) ReadAllColumn(ctx context.Context, column string) ([]string, error) {
	n, err := g.RowCount(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, n)
	for row := 1; row <= n; row++ {
		v, err := g.ReadColumn(ctx, row, column)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// RowStatus reports whether the yes/no column of row shows the enabled icon.
// A missing icon is false, never an error.
func (g *Grid) RowStatus(ctx context.Context, row int, column string) bool {
	return g.base.ElementVisible(ctx, g.loc.ColumnStatus(row, column, "enabled").String(), statusProbeTimeout)
}

// GoToEditRow opens the edit form of row.
func (g *Grid) GoToEditRow(ctx context.Context, row int) error {
	return g.base.ClickAndWaitForNavigation(ctx, g.loc.RowEditLink(row).String())
}

// DeleteRow deletes row through its action menu and returns the banner text.
func (g *Grid) DeleteRow(ctx context.Context, row int, opts DeleteOptions) (string, error) {
	toggle := g.loc.RowActionToggle(row).String()
	link := g.loc.RowDeleteLink(row).String()

	if err := g.base.OpenMenu(ctx, toggle, link, page.MenuSequential); err != nil {
		return "", err
	}

	switch g.cfg.RowDelete {
	case ConfirmDialog:
		err := g.base.PerformWithDialog(ctx, true, func(ctx context.Context) error {
			return g.base.ClickAndWaitForNavigation(ctx, link)
		})
		if err != nil {
			return "", err
		}
	default:
		if err := g.base.Click(ctx, link); err != nil {
			return "", err
		}
		confirm := g.loc.DeleteModalConfirm.String()
		if err := g.base.WaitForVisibleSelector(ctx, confirm, 0); err != nil {
			return "", err
		}
		if g.loc.DeleteModalCascade != "" {
			if err := g.base.SetCheckedState(ctx, g.loc.DeleteModalCascade.String(), opts.Cascade); err != nil {
				return "", err
			}
		}
		if err := g.base.ClickAndWaitForNavigation(ctx, confirm); err != nil {
			return "", err
		}
	}

	return g.SuccessMessage(ctx)
}

// SelectAll ticks every row through the bulk menu.
func (g *Grid) SelectAll(ctx context.Context) error {
	item := g.loc.BulkSelectAll.String()
	if err := g.base.OpenMenu(ctx, g.loc.BulkActionButton.String(), item, page.MenuSequential); err != nil {
		return err
	}
	return g.base.PerformAndAwaitTransition(ctx, g.base.ClickAction(item), page.AwaitHidden(item))
}

// BulkDelete selects every row, deletes them and returns the banner text.
// The confirmation dialog handler is armed before anything is clicked.
func (g *Grid) BulkDelete(ctx context.Context) (string, error) {
	item := g.loc.BulkDelete.String()

	err := g.base.PerformWithDialog(ctx, true, func(ctx context.Context) error {
		if err := g.SelectAll(ctx); err != nil {
			return err
		}
		if err := g.base.OpenMenu(ctx, g.loc.BulkActionButton.String(), item, page.MenuSequential); err != nil {
			return err
		}
		return g.base.ClickAndWaitForNavigation(ctx, item)
	})
	if err != nil {
		return "", err
	}

	return g.SuccessMessage(ctx)
}

// SortBy sorts the list by column in direction dir.
func (g *Grid) SortBy(ctx context.Context, column Column, dir Direction) error {
	index, ok := g.cfg.Columns[string(column)]
	if !ok {
		return g.base.Fail("sort", "", page.ErrUnknownColumn, fmt.Sprintf("column %q", column))
	}
	if dir != Asc && dir != Desc {
		return g.base.Fail("sort", "", page.ErrUnknownSortDirection, fmt.Sprintf("direction %q", dir))
	}
	return g.base.ClickAndWaitForNavigation(ctx, g.loc.SortButton(index, dir).String())
}

// SortByName is SortBy for callers holding plain strings.
func (g *Grid) SortByName(ctx context.Context, column, direction string) error {
	col, err := g.ParseColumn(column)
	if err != nil {
		return err
	}
	dir, err := ParseDirection(direction)
	if err != nil {
		return err
	}
	return g.SortBy(ctx, col, dir)
}

// PaginationLabel returns the active page label.
func (g *Grid) PaginationLabel(ctx context.Context) (string, error) {
	return g.base.ReadText(ctx, g.loc.PaginationLabel.String())
}

// SelectPaginationLimit shows n rows per page and returns the new label.
func (g *Grid) SelectPaginationLimit(ctx context.Context, n int) (string, error) {
	item := g.loc.PaginationItem(n).String()
	if err := g.base.OpenMenu(ctx, g.loc.PaginationDropdown.String(), item, page.MenuCombined); err != nil {
		return "", err
	}
	if err := g.base.ClickAndWaitForNavigation(ctx, item); err != nil {
		return "", err
	}
	return g.PaginationLabel(ctx)
}

// PaginationNext moves to the next page and returns the new label.
func (g *Grid) PaginationNext(ctx context.Context) (string, error) {
	if err := g.base.ClickAndWaitForNavigation(ctx, g.loc.PaginationNext.String()); err != nil {
		return "", err
	}
	return g.PaginationLabel(ctx)
}

// PaginationPrevious moves to the previous page and returns the new label.
func (g *Grid) PaginationPrevious(ctx context.Context) (string, error) {
	if err := g.base.ClickAndWaitForNavigation(ctx, g.loc.PaginationPrevious.String()); err != nil {
		return "", err
	}
	return g.PaginationLabel(ctx)
}

// SuccessMessage returns the text of the success banner.
func (g *Grid) SuccessMessage(ctx context.Context) (string, error) {
	return g.base.ReadText(ctx, g.loc.SuccessAlert.String())
}
