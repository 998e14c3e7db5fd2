// Package locator models the selectors a page object depends on as plain
// data: static CSS selectors plus templates that are pure functions of a row,
// column, index or toggle state.
package locator

import (
	"fmt"
	"strings"
)

// Selector is a CSS selector identifying one element or a family of elements
// in the rendered back office.
type Selector string

func (s Selector) String() string {
	return string(s)
}

// Child returns the selector for descendants of s matching child.
func (s Selector) Child(child string) Selector {
	return Selector(string(s) + " " + child)
}

// With appends a compound suffix (pseudo-class, attribute or class) to s.
func (s Selector) With(suffix string) Selector {
	return Selector(string(s) + suffix)
}

// Templates. Each one must stay a pure function of its arguments.
type (
	IndexTemplate           func(i int) Selector
	RowColumnTemplate       func(row int, column string) Selector
	RowColumnStatusTemplate func(row int, column, status string) Selector
	NameTemplate            func(name string) Selector
	ToggleTemplate          func(on bool) Selector
)

const (
	ToggleOn  = "on"
	ToggleOff = "off"
)

// ToggleState maps a boolean to the on/off suffix used by switch inputs.
func ToggleState(on bool) string {
	if on {
		return ToggleOn
	}
	return ToggleOff
}

// Toggle builds the template for a two-target switch, e.g. Toggle("#active")
// resolves to "#active_on" or "#active_off".
func Toggle(prefix string) ToggleTemplate {
	return func(on bool) Selector {
		return Selector(prefix + "_" + ToggleState(on))
	}
}

// NthChild builds the template selecting the i-th (1-based) match of parent.
func NthChild(parent Selector) IndexTemplate {
	return func(i int) Selector {
		return parent.With(fmt.Sprintf(":nth-child(%d)", i))
	}
}

// Indexed builds an index template from a format string holding one %d verb.
func Indexed(format string) IndexTemplate {
	return func(i int) Selector {
		return Selector(fmt.Sprintf(format, i))
	}
}

// Named builds a name template from a format string holding one %s verb.
func Named(format string) NameTemplate {
	return func(name string) Selector {
		return Selector(fmt.Sprintf(format, name))
	}
}

// Quote escapes a value for use inside a single-quoted attribute selector.
func Quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `\'`) + "'"
}
