package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureData_Validate(t *testing.T) {
	tests := []struct {
		name    string
		data    FeatureData
		wantErr error
	}{
		{"plain name", NewFeatureData("Material"), nil},
		{"translated", FeatureData{Names: map[int]string{1: "Material", 2: "Matière"}}, nil},
		{"punctuation allowed", NewFeatureData("Size (cm) - 100% cotton"), nil},
		{"missing default", FeatureData{Names: map[int]string{2: "Matière"}}, ErrMissingDefaultName},
		{"nil names", FeatureData{}, ErrMissingDefaultName},
		{"markup", NewFeatureData("<b>Material</b>"), ErrInvalidName},
		{"braces in translation", FeatureData{Names: map[int]string{1: "Material", 2: "{x}"}}, ErrInvalidName},
		{"equals sign", NewFeatureData("a=b"), ErrInvalidName},
		{"at max length", NewFeatureData(strings.Repeat("é", FeatureNameMaxLength)), nil},
		{"too long", NewFeatureData(strings.Repeat("a", FeatureNameMaxLength+1)), ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFeatureData_LanguageIDs(t *testing.T) {
	f := FeatureData{Names: map[int]string{3: "c", 1: "a", 2: "b"}}

	assert.Equal(t, []int{1, 2, 3}, f.LanguageIDs())
	assert.Equal(t, "a", f.Name())
}

func TestNewFeatureData(t *testing.T) {
	f := NewFeatureData("Material", 1, 2)

	assert.Equal(t, "Material", f.Name())
	assert.Equal(t, []int{1, 2}, f.ShopIDs)
	assert.Equal(t, []int{DefaultLanguageID}, f.LanguageIDs())
}
