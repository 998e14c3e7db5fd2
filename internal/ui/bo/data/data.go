// Package data holds the value objects form pages fill from. They are built
// by the caller (usually a test) and consumed once per fill; page objects
// never change them.
package data

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"
)

// CountryData is one country as entered on the add/edit country form.
type CountryData struct {
	Name       string
	ISOCode    string
	CallPrefix string
	// Currency and Zone are the visible labels of their select options.
	Currency string
	Zone     string

	NeedZipCode     bool
	ZipCodeFormat   string
	Active          bool
	ContainsStates  bool
	NeedIDNumber    bool
	DisplayTaxLabel bool
}

// ImageTypeData is one image type as entered on the image settings form.
type ImageTypeData struct {
	Name          string
	Width         int
	Height        int
	Products      bool
	Categories    bool
	Manufacturers bool
	Suppliers     bool
	Stores        bool
}

const FeatureNameMaxLength = 128

var (
	ErrMissingDefaultName = errors.New("feature name is required in the default language")
	ErrInvalidName        = errors.New("feature name is invalid")
	ErrNameTooLong        = errors.New("feature name is too long")
)

// Characters the feature form rejects in names.
var genericName = regexp.MustCompile(`^[^<>={}]*$`)

// FeatureData is one product feature. Names is keyed by language id; the
// default language has id DefaultLanguageID.
type FeatureData struct {
	Names   map[int]string
	ShopIDs []int
}

const DefaultLanguageID = 1

// NewFeatureData returns a feature named name in the default language.
func NewFeatureData(name string, shopIDs ...int) FeatureData {
	return FeatureData{Names: map[int]string{DefaultLanguageID: name}, ShopIDs: shopIDs}
}

// Name returns the default-language name.
func (f FeatureData) Name() string {
	return f.Names[DefaultLanguageID]
}

// LanguageIDs lists the languages a name is set for, in ascending order.
func (f FeatureData) LanguageIDs() []int {
	ids := make([]int, 0, len(f.Names))
	for id := range f.Names {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks the names against the constraints the feature form
// declares. Callers use it to build valid data; page objects do not call it.
func (f FeatureData) Validate() error {
	if f.Name() == "" {
		return ErrMissingDefaultName
	}
	for _, id := range f.LanguageIDs() {
		name := f.Names[id]
		if !genericName.MatchString(name) {
			return fmt.Errorf("%w: language %d: %q", ErrInvalidName, id, name)
		}
		if utf8.RuneCountInString(name) > FeatureNameMaxLength {
			return fmt.Errorf("%w: language %d: %d characters, max %d", ErrNameTooLong, id, utf8.RuneCountInString(name), FeatureNameMaxLength)
		}
	}
	return nil
}
