package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain", "12", 12},
		{"badge in parentheses", "(7)", 7},
		{"label then number", "Image types 3", 3},
		{"comma grouping", "(1,024)", 1024},
		{"dot grouping", "12.345 result(s)", 12345},
		{"non-breaking space grouping", "1\u00a0234", 1234},
		{"plain spaces separate numbers", "Show 20 100 300", 20},
		{"hyphen is not a sign", "ref-42", 42},
		{"leading hyphen", "-5 items", 5},
		{"group must end the run", "1,2345", 1},
		{"first number wins", "Display 20 / 60 result(s)", 20},
		{"four digits without grouping", "2024", 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber_NoDigits(t *testing.T) {
	for _, text := range []string{"", "No records found", "--"} {
		_, err := ParseNumber(text)
		assert.ErrorIs(t, err, ErrParse, "text %q", text)
	}
}
