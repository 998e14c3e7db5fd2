package fakebo

import "strconv"

// Image types of a fresh install.
var defaultImageTypes = []struct {
	name          string
	width, height int
	flags         string // products, categories, manufacturers, suppliers, stores
}{
	{"cart_default", 125, 125, "10000"},
	{"small_default", 98, 98, "11110"},
	{"medium_default", 452, 452, "10110"},
	{"home_default", 250, 250, "10000"},
	{"large_default", 800, 800, "10110"},
	{"category_default", 141, 180, "01000"},
	{"stores_default", 170, 115, "00001"},
}

// DefaultImageTypeCount is the number of image types New seeds.
var DefaultImageTypeCount = len(defaultImageTypes)

func seedImageTypes() *list {
	l := newImageTypeList()
	for _, it := range defaultImageTypes {
		r := record{
			"name":   it.name,
			"width":  strconv.Itoa(it.width),
			"height": strconv.Itoa(it.height),
		}
		for i, f := range imageTypeFlags {
			r[f] = string(it.flags[i])
		}
		l.insert(r)
	}
	return l
}

var defaultCountries = []struct {
	name, iso, prefix, zone, currency string
}{
	{"Germany", "DE", "49", "Europe", "Euro"},
	{"Austria", "AT", "43", "Europe", "Euro"},
	{"Belgium", "BE", "32", "Europe", "Euro"},
	{"Canada", "CA", "1", "North America", "US Dollar"},
	{"China", "CN", "86", "Asia", "US Dollar"},
	{"Spain", "ES", "34", "Europe", "Euro"},
	{"Finland", "FI", "358", "Europe", "Euro"},
	{"France", "FR", "33", "Europe", "Euro"},
	{"Greece", "GR", "30", "Europe", "Euro"},
	{"Italy", "IT", "39", "Europe", "Euro"},
	{"Japan", "JP", "81", "Asia", "US Dollar"},
	{"Luxembourg", "LU", "352", "Europe", "Euro"},
	{"Netherlands", "NL", "31", "Europe", "Euro"},
	{"Poland", "PL", "48", "Europe", "Euro"},
	{"Portugal", "PT", "351", "Europe", "Euro"},
	{"Czechia", "CZ", "420", "Europe", "Euro"},
	{"United Kingdom", "GB", "44", "Europe (non-EU)", "Pound"},
	{"Sweden", "SE", "46", "Europe", "Euro"},
	{"Switzerland", "CH", "41", "Europe (non-EU)", "Euro"},
	{"Denmark", "DK", "45", "Europe", "Euro"},
	{"United States", "US", "1", "North America", "US Dollar"},
	{"Hong Kong", "HK", "852", "Asia", "US Dollar"},
	{"Norway", "NO", "47", "Europe (non-EU)", "Euro"},
	{"Australia", "AU", "61", "Oceania", "US Dollar"},
	{"Singapore", "SG", "65", "Asia", "US Dollar"},
	{"Ireland", "IE", "353", "Europe", "Euro"},
	{"New Zealand", "NZ", "64", "Oceania", "US Dollar"},
	{"South Korea", "KR", "82", "Asia", "US Dollar"},
	{"Israel", "IL", "972", "Asia", "US Dollar"},
	{"South Africa", "ZA", "27", "Africa", "US Dollar"},
	{"Nigeria", "NG", "234", "Africa", "US Dollar"},
	{"Ivory Coast", "CI", "225", "Africa", "US Dollar"},
	{"Togo", "TG", "228", "Africa", "US Dollar"},
	{"Bolivia", "BO", "591", "South America", "US Dollar"},
	{"Mauritius", "MU", "230", "Africa", "US Dollar"},
	{"Romania", "RO", "40", "Europe", "Euro"},
	{"Slovakia", "SK", "421", "Europe", "Euro"},
	{"Algeria", "DZ", "213", "Africa", "US Dollar"},
	{"American Samoa", "AS", "1", "Oceania", "US Dollar"},
	{"Andorra", "AD", "376", "Europe (non-EU)", "Euro"},
	{"Angola", "AO", "244", "Africa", "US Dollar"},
	{"Anguilla", "AI", "1", "Central America/Antilla", "US Dollar"},
	{"Antigua and Barbuda", "AG", "1", "Central America/Antilla", "US Dollar"},
	{"Argentina", "AR", "54", "South America", "US Dollar"},
	{"Armenia", "AM", "374", "Asia", "US Dollar"},
	{"Aruba", "AW", "297", "Central America/Antilla", "US Dollar"},
	{"Azerbaijan", "AZ", "994", "Asia", "US Dollar"},
	{"Bahamas", "BS", "1", "Central America/Antilla", "US Dollar"},
	{"Bahrain", "BH", "973", "Asia", "US Dollar"},
	{"Bangladesh", "BD", "880", "Asia", "US Dollar"},
	{"Barbados", "BB", "1", "Central America/Antilla", "US Dollar"},
	{"Belarus", "BY", "375", "Europe (non-EU)", "Euro"},
	{"Belize", "BZ", "501", "Central America/Antilla", "US Dollar"},
	{"Benin", "BJ", "229", "Africa", "US Dollar"},
	{"Bermuda", "BM", "1", "Central America/Antilla", "US Dollar"},
	{"Bhutan", "BT", "975", "Asia", "US Dollar"},
	{"Botswana", "BW", "267", "Africa", "US Dollar"},
	{"Brazil", "BR", "55", "South America", "US Dollar"},
	{"Brunei", "BN", "673", "Asia", "US Dollar"},
	{"Burkina Faso", "BF", "226", "Africa", "US Dollar"},
}

// DefaultCountryCount is the number of countries New seeds; more than one
// page at the default pagination limit.
var DefaultCountryCount = len(defaultCountries)

func seedCountries() *list {
	l := newCountryList()
	for _, c := range defaultCountries {
		l.insert(record{
			"name":                       c.name,
			"iso_code":                   c.iso,
			"call_prefix":                c.prefix,
			"zone":                       c.zone,
			"currency":                   c.currency,
			"need_zip_code":              "1",
			"zip_code_format":            "NNNNN",
			"active":                     "1",
			"contains_states":            "0",
			"need_identification_number": "0",
			"display_tax_label":          "1",
		})
	}
	return l
}
