package grid

import (
	"fmt"
	"strings"

	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

// FilterKind is the type of widget a list filter column renders.
type FilterKind int

const (
	// FilterInput is a free-text input submitted with the search button.
	FilterInput FilterKind = iota + 1
	// FilterSelect is a yes/no select that submits the form on change.
	FilterSelect
)

func (k FilterKind) String() string {
	switch k {
	case FilterInput:
		return "input"
	case FilterSelect:
		return "select"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// ParseFilterKind validates a filter kind given as text ("input", "select").
func ParseFilterKind(s string) (FilterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return FilterInput, nil
	case "select":
		return FilterSelect, nil
	default:
		return 0, fmt.Errorf("%w: %q", page.ErrUnsupportedFilterKind, s)
	}
}

// Filter is one filter applied to a list.
type Filter struct {
	Kind   FilterKind
	Column string
	// Value is typed into inputs. For selects "1" means yes, anything else no.
	Value string
}

// InputFilter filters column by free text.
func InputFilter(column, value string) Filter {
	return Filter{Kind: FilterInput, Column: column, Value: value}
}

// SelectFilter filters a yes/no column.
func SelectFilter(column string, yes bool) Filter {
	v := "0"
	if yes {
		v = "1"
	}
	return Filter{Kind: FilterSelect, Column: column, Value: v}
}

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection validates a sort direction given as text.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Asc, Desc:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", page.ErrUnknownSortDirection, s)
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}
