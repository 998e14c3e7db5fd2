package page

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Counters render like "12", "(1,024)" or "Image types 3"; thousands may be
// grouped with commas, dots or non-breaking spaces. A plain space separates
// numbers, and a group must end the digit run.
var numberPattern = regexp.MustCompile(`\d{1,3}(?:[,.\x{00a0}]\d{3})+\b|\d+`)

// ParseNumber extracts the first non-negative integer found in text. A
// leading hyphen is punctuation, not a sign.
func ParseNumber(text string) (int, error) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, fmt.Errorf("%w: no number in %q", ErrParse, text)
	}

	digits := strings.NewReplacer(",", "", ".", "", "\u00a0", "").Replace(match)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}
