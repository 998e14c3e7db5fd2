package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/ui/page"
)

func TestParseFilterKind(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterKind
		wantErr bool
	}{
		{"input", FilterInput, false},
		{"select", FilterSelect, false},
		{" Select ", FilterSelect, false},
		{"checkbox", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilterKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, page.ErrUnsupportedFilterKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterKind_String(t *testing.T) {
	assert.Equal(t, "input", FilterInput.String())
	assert.Equal(t, "select", FilterSelect.String())
	assert.Equal(t, "FilterKind(7)", FilterKind(7).String())
}

func TestFilterConstructors(t *testing.T) {
	assert.Equal(t, Filter{Kind: FilterInput, Column: "name", Value: "cart"}, InputFilter("name", "cart"))
	assert.Equal(t, "1", SelectFilter("active", true).Value)
	assert.Equal(t, "0", SelectFilter("active", false).Value)
	assert.Equal(t, FilterSelect, SelectFilter("active", false).Kind)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"asc", Asc, false},
		{"DESC", Desc, false},
		{"up", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, page.ErrUnknownSortDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirection_Reverse(t *testing.T) {
	assert.Equal(t, Desc, Asc.Reverse())
	assert.Equal(t, Asc, Desc.Reverse())
}

func TestGrid_Columns(t *testing.T) {
	// Column bookkeeping never touches the tab.
	g := New(page.New(nil), countryConfig)

	assert.Equal(t, []Column{"id_country", "name", "iso_code", "call_prefix", "zone"}, g.Columns())

	col, err := g.ParseColumn("zone")
	require.NoError(t, err)
	assert.Equal(t, Column("zone"), col)

	_, err = g.ParseColumn("currency")
	require.ErrorIs(t, err, page.ErrUnknownColumn)
}

func TestGrid_RejectsUnknownInputsBeforeTouchingTheTab(t *testing.T) {
	g := New(page.New(nil, page.WithName("Countries")), countryConfig)
	ctx := t.Context()

	err := g.SortBy(ctx, "currency", Asc)
	require.ErrorIs(t, err, page.ErrUnknownColumn)
	var pe *page.PageError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Countries", pe.Page)

	require.ErrorIs(t, g.SortBy(ctx, "name", Direction("sideways")), page.ErrUnknownSortDirection)
	require.ErrorIs(t, g.SortByName(ctx, "name", "sideways"), page.ErrUnknownSortDirection)
	require.ErrorIs(t, g.SortByName(ctx, "currency", "asc"), page.ErrUnknownColumn)
	require.ErrorIs(t, g.FilterBy(ctx, Filter{Kind: FilterKind(9), Column: "name"}), page.ErrUnsupportedFilterKind)

	_, err = g.ReadColumn(ctx, 0, "name")
	require.ErrorIs(t, err, page.ErrElementNotFound)
}
