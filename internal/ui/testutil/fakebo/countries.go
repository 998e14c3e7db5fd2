package fakebo

import (
	"net/http"
	"net/url"
	"regexp"
	"strconv"
)

var isoCodePattern = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

var countryFlags = []string{"need_zip_code", "active", "contains_states", "need_identification_number", "display_tax_label"}

type option struct {
	ID       int
	Name     string
	Selected bool
}

var (
	zones      = []string{"Europe", "North America", "Asia", "Africa", "Oceania", "South America", "Europe (non-EU)", "Central America/Antilla"}
	currencies = []string{"Euro", "US Dollar", "Pound"}
)

func newCountryList() *list {
	return newList("country", "AdminCountries", "Countries", "id_country", []column{
		{Key: "id_country", Title: "ID", Filter: filterInput},
		{Key: "name", Title: "Country", Filter: filterInput},
		{Key: "iso_code", Title: "ISO code", Filter: filterInput},
		{Key: "call_prefix", Title: "Call prefix", Filter: filterInput},
		{Key: "zone", Title: "Zone", Filter: filterInput},
		{Key: "active", Title: "Enabled", Bool: true, Filter: filterSelect},
	})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	l := s.countries
	q := r.URL.Query()

	switch {
	case flagged(q, "delete"+l.id):
		if _, ok := s.deleteRow(w, r, l); ok {
			s.redirect(w, r, s.listURL(l, nil), MsgDeleted)
		}
	case r.Method == http.MethodPost && r.PostFormValue("submitAdd"+l.id) != "":
		s.saveCountry(w, r)
	case flagged(q, "add"+l.id), flagged(q, "update"+l.id):
		s.countryForm(w, q, nil)
	case r.Method == http.MethodPost:
		s.handleListPost(w, r, l)
	default:
		l.applyQuery(q)
		p := page{
			Title:   "Countries",
			Heading: "Countries",
			Toolbar: []toolbarLink{{
				ID:    "page-header-desc-country-new_country",
				URL:   s.listURL(l, url.Values{"addcountry": {""}}),
				Label: "Add new country",
			}},
		}
		s.render(w, p, listTmpl, s.view(l))
	}
}

type countryFormView struct {
	Action                   string
	ID                       int
	Name                     string
	ISOCode                  string
	CallPrefix               string
	ZipCodeFormat            string
	Currencies               []option
	Zones                    []option
	NeedZipCode              switchView
	Active                   switchView
	ContainsStates           switchView
	NeedIdentificationNumber switchView
	DisplayTaxLabel          switchView
}

// countryForm renders the add/edit form. A rejected submission is rendered
// again from submitted.
func (s *Server) countryForm(w http.ResponseWriter, q url.Values, submitted record) {
	l := s.countries
	r := record{"active": "1", "display_tax_label": "1"}
	title := "Countries > Add new"
	if id, err := strconv.Atoi(q.Get(l.idParam)); err == nil {
		if existing, ok := l.find(id); ok {
			r = existing
			title = "Countries > Edit: " + existing["name"]
		}
	}
	if submitted != nil {
		r = submitted
	}

	view := countryFormView{
		Action:                   s.listURL(l, nil),
		ID:                       l.rowID(r),
		Name:                     r["name"],
		ISOCode:                  r["iso_code"],
		CallPrefix:               r["call_prefix"],
		ZipCodeFormat:            r["zip_code_format"],
		Currencies:               options(currencies, r["currency"]),
		Zones:                    options(zones, r["zone"]),
		NeedZipCode:              switchOf(r, "need_zip_code"),
		Active:                   switchOf(r, "active"),
		ContainsStates:           switchOf(r, "contains_states"),
		NeedIdentificationNumber: switchOf(r, "need_identification_number"),
		DisplayTaxLabel:          switchOf(r, "display_tax_label"),
	}
	s.render(w, page{Title: title, Heading: title}, countryFormTmpl, view)
}

func options(names []string, selected string) []option {
	opts := make([]option, len(names))
	for i, n := range names {
		opts[i] = option{ID: i + 1, Name: n, Selected: n == selected}
	}
	return opts
}

func optionName(names []string, id string) string {
	n, err := strconv.Atoi(id)
	if err != nil || n < 1 || n > len(names) {
		return ""
	}
	return names[n-1]
}

func (s *Server) saveCountry(w http.ResponseWriter, r *http.Request) {
	l := s.countries
	form := r.PostForm

	rec := record{
		"name":            trimmed(form, "name_1"),
		"iso_code":        trimmed(form, "iso_code"),
		"call_prefix":     trimmed(form, "call_prefix"),
		"zip_code_format": trimmed(form, "zip_code_format"),
		"currency":        optionName(currencies, form.Get("id_currency")),
		"zone":            optionName(zones, form.Get("id_zone")),
	}
	for _, f := range countryFlags {
		rec[f] = boolField(form, f)
	}

	if msg := validateCountry(rec); msg != "" {
		s.flash.danger = msg
		rec[l.idParam] = form.Get(l.idParam)
		s.countryForm(w, url.Values{l.idParam: {form.Get(l.idParam)}}, rec)
		return
	}

	if id, err := strconv.Atoi(form.Get(l.idParam)); err == nil {
		if existing, ok := l.find(id); ok {
			for k, v := range rec {
				existing[k] = v
			}
			s.redirect(w, r, s.listURL(l, nil), MsgUpdated)
			return
		}
	}
	l.insert(rec)
	s.redirect(w, r, s.listURL(l, nil), MsgCreated)
}

func validateCountry(r record) string {
	switch {
	case r["name"] == "":
		return "The Country field is required."
	case !isoCodePattern.MatchString(r["iso_code"]):
		return "The ISO code field is invalid."
	case r["zone"] == "":
		return "The Zone field is invalid."
	}
	if _, err := strconv.Atoi(r["call_prefix"]); err != nil {
		return "The Call prefix field is invalid."
	}
	return ""
}
