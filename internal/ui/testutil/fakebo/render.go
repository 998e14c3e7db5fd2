package fakebo

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type headerView struct {
	Title       string
	Sorted      bool
	AscURL      string
	DescURL     string
	Filter      filterKind
	FilterName  string
	FilterValue string
}

type cellView struct {
	Key     string
	Value   string
	Bool    bool
	Enabled bool
}

type rowView struct {
	ID        int
	Cells     []cellView
	EditURL   string
	DeleteURL string
}

type linkView struct {
	N      int
	URL    string
	Active bool
}

type listView struct {
	ID       string
	Title    string
	Action   string
	Modal    string
	Total    int
	Filtered bool
	Headers  []headerView
	Rows     []rowView
	Colspan  int

	Paginated bool
	Limit     int
	Limits    []linkView
	Pages     []linkView
	First     bool
	Last      bool
	PrevURL   string
	NextURL   string
}

func (s *Server) listURL(l *list, extra url.Values) string {
	return controllerURL(s.base, l.controller, extra)
}

// view computes the rendered state of l: filtered, sorted, and cut to the
// current page.
func (s *Server) view(l *list) listView {
	rows := l.filtered()
	total := len(rows)
	pages := l.pageCount(total)
	if l.page > pages {
		l.page = pages
	}

	v := listView{
		ID:       l.id,
		Title:    l.title,
		Action:   s.listURL(l, nil),
		Modal:    l.modal,
		Total:    total,
		Filtered: len(l.filters) > 0,
		Colspan:  len(l.columns) + 2,
		Limit:    l.limit,
		First:    l.page == 1,
		Last:     l.page == pages,
		// Pagination only shows once a list outgrows the smallest limit.
		Paginated: total > paginationLimits[0],
	}

	for _, c := range l.columns {
		v.Headers = append(v.Headers, headerView{
			Title:       c.Title,
			Sorted:      l.orderBy == c.Key,
			AscURL:      s.listURL(l, url.Values{l.id + "Orderby": {c.Key}, l.id + "Orderway": {"asc"}}),
			DescURL:     s.listURL(l, url.Values{l.id + "Orderby": {c.Key}, l.id + "Orderway": {"desc"}}),
			Filter:      c.Filter,
			FilterName:  l.filterName(c.Key),
			FilterValue: l.filters[c.Key],
		})
	}

	start := (l.page - 1) * l.limit
	end := min(start+l.limit, total)
	for _, r := range rows[start:end] {
		id := l.rowID(r)
		rv := rowView{
			ID:        id,
			EditURL:   s.listURL(l, url.Values{l.idParam: {strconv.Itoa(id)}, "update" + l.id: {""}}),
			DeleteURL: s.listURL(l, url.Values{l.idParam: {strconv.Itoa(id)}, "delete" + l.id: {""}}),
		}
		for _, c := range l.columns {
			rv.Cells = append(rv.Cells, cellView{
				Key:     c.Key,
				Value:   r[c.Key],
				Bool:    c.Bool,
				Enabled: r[c.Key] == "1",
			})
		}
		v.Rows = append(v.Rows, rv)
	}

	for _, n := range paginationLimits {
		v.Limits = append(v.Limits, linkView{N: n, URL: s.listURL(l, url.Values{l.id + "_pagination": {strconv.Itoa(n)}})})
	}
	for p := 1; p <= pages; p++ {
		v.Pages = append(v.Pages, linkView{N: p, URL: s.pageURL(l, p), Active: p == l.page})
	}
	v.PrevURL = s.pageURL(l, max(1, l.page-1))
	v.NextURL = s.pageURL(l, min(pages, l.page+1))
	return v
}

func (s *Server) pageURL(l *list, p int) string {
	return s.listURL(l, url.Values{"submitFilter" + l.id: {strconv.Itoa(p)}})
}

// handleListPost applies a submitted list form: reset, bulk delete or a new
// set of filters.
func (s *Server) handleListPost(w http.ResponseWriter, r *http.Request, l *list) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case r.PostForm.Has("submitReset" + l.id):
		l.resetFilters()
		http.Redirect(w, r, s.listURL(l, nil), http.StatusSeeOther)
	case r.PostForm.Has("submitBulkdelete" + l.id):
		var ids []int
		for _, v := range r.PostForm[l.id+"Box[]"] {
			if id, err := strconv.Atoi(v); err == nil {
				ids = append(ids, id)
			}
		}
		if l.remove(ids...) == 0 {
			s.flash.danger = "You must select at least one element to delete."
			http.Redirect(w, r, s.listURL(l, nil), http.StatusSeeOther)
			return
		}
		s.redirect(w, r, s.listURL(l, nil), MsgBulkDeleted)
	default:
		l.applyFilterForm(r.PostForm)
		http.Redirect(w, r, s.listURL(l, nil), http.StatusSeeOther)
	}
}

// deleteRow removes the row named by the id parameter of the request.
func (s *Server) deleteRow(w http.ResponseWriter, r *http.Request, l *list) (int, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get(l.idParam))
	if err != nil || l.remove(id) == 0 {
		s.flash.danger = "An error occurred while deleting the object."
		http.Redirect(w, r, s.listURL(l, nil), http.StatusSeeOther)
		return 0, false
	}
	return id, true
}

func boolField(form url.Values, name string) string {
	if form.Get(name) == "1" {
		return "1"
	}
	return "0"
}

type switchView struct {
	Name string
	On   bool
}

func switchOf(r record, name string) switchView {
	return switchView{Name: name, On: r[name] == "1"}
}

func trimmed(form url.Values, name string) string {
	return strings.TrimSpace(form.Get(name))
}
