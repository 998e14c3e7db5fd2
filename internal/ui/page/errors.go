package page

import (
	"errors"
	"fmt"
)

var (
	ErrElementNotFound   = errors.New("element not found")
	ErrNavigationTimeout = errors.New("navigation timed out")

	ErrUnsupportedFilterKind = errors.New("unsupported filter kind")
	ErrUnknownColumn         = errors.New("unknown column")
	ErrUnknownSortDirection  = errors.New("unknown sort direction")

	ErrParse         = errors.New("failed to parse text")
	ErrDialogTimeout = errors.New("native dialog did not open")
	ErrProbeTimeout  = errors.New("probe timed out")
)

// PageError provides detailed error context
type PageError struct {
	Page      string
	Operation string
	Selector  string
	Cause     error
	Details   string
}

func (e *PageError) Error() string {
	msg := fmt.Sprintf("[%s] %s failed: %v", e.Page, e.Operation, e.Cause)
	if e.Selector != "" {
		msg += fmt.Sprintf(" (selector %q)", e.Selector)
	}
	if e.Details != "" {
		msg += " - " + e.Details
	}
	return msg
}

func (e *PageError) Unwrap() error {
	return e.Cause
}
