package fakebo

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type filterKind string

const (
	filterNone   filterKind = ""
	filterInput  filterKind = "input"
	filterSelect filterKind = "select"
)

type column struct {
	Key    string
	Title  string
	Bool   bool
	Filter filterKind
}

// record is one row. Keys are column keys plus any form-only attributes.
type record map[string]string

func (l *list) rowID(r record) int {
	n, _ := strconv.Atoi(r[l.idParam])
	return n
}

// list is the state of one legacy admin list: rows plus the filters, sort
// and pagination the back office keeps per employee.
type list struct {
	id         string
	controller string
	title      string
	columns    []column

	// idParam is both the id column key and the query parameter naming a
	// row, e.g. id_image_type.
	idParam string
	// modal is the id of the in-page delete modal; empty means the delete
	// link raises a native confirm.
	modal string

	rows    []record
	nextID  int
	filters map[string]string
	orderBy string
	desc    bool
	page    int
	limit   int
}

var paginationLimits = []int{20, 50, 100, 300, 1000}

const defaultLimit = 50

func newList(id, controller, title, idParam string, columns []column) *list {
	return &list{
		id:         id,
		controller: controller,
		title:      title,
		idParam:    idParam,
		columns:    columns,
		nextID:     1,
		filters:    map[string]string{},
		page:       1,
		limit:      defaultLimit,
	}
}

func (l *list) insert(r record) record {
	if r[l.idParam] == "" {
		r[l.idParam] = strconv.Itoa(l.nextID)
	}
	if id := l.rowID(r); id >= l.nextID {
		l.nextID = id + 1
	}
	l.rows = append(l.rows, r)
	return r
}

func (l *list) find(id int) (record, bool) {
	for _, r := range l.rows {
		if l.rowID(r) == id {
			return r, true
		}
	}
	return nil, false
}

func (l *list) remove(ids ...int) int {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := l.rows[:0]
	removed := 0
	for _, r := range l.rows {
		if drop[l.rowID(r)] {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	l.rows = kept
	return removed
}

func (l *list) filterName(key string) string {
	return l.id + "Filter_" + key
}

func (l *list) filtered() []record {
	out := make([]record, 0, len(l.rows))
	for _, r := range l.rows {
		if l.matches(r) {
			out = append(out, r)
		}
	}

	if l.orderBy != "" {
		key := l.orderBy
		sort.SliceStable(out, func(i, j int) bool {
			if l.desc {
				return lessValue(out[j][key], out[i][key])
			}
			return lessValue(out[i][key], out[j][key])
		})
	}
	return out
}

func (l *list) matches(r record) bool {
	for key, want := range l.filters {
		got := r[key]
		switch {
		case key == l.idParam || l.columnKind(key) == filterSelect:
			if got != want {
				return false
			}
		default:
			if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
				return false
			}
		}
	}
	return true
}

func (l *list) columnKind(key string) filterKind {
	for _, c := range l.columns {
		if c.Key == key {
			return c.Filter
		}
	}
	return filterNone
}

func lessValue(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return x < y
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

// applyQuery folds sort and pagination parameters of a GET into the state.
func (l *list) applyQuery(q url.Values) {
	if by := q.Get(l.id + "Orderby"); by != "" {
		for _, c := range l.columns {
			if c.Key == by {
				l.orderBy = by
				l.desc = q.Get(l.id+"Orderway") == "desc"
			}
		}
	}
	if n, err := strconv.Atoi(q.Get(l.id + "_pagination")); err == nil && n > 0 {
		l.limit = n
		l.page = 1
	}
	if p, err := strconv.Atoi(q.Get("submitFilter" + l.id)); err == nil && p > 0 {
		l.page = p
	}
}

// applyFilterForm replaces the filters with the non-empty filter fields of a
// submitted list form.
func (l *list) applyFilterForm(form url.Values) {
	l.filters = map[string]string{}
	for _, c := range l.columns {
		if c.Filter == filterNone {
			continue
		}
		if v := strings.TrimSpace(form.Get(l.filterName(c.Key))); v != "" {
			l.filters[c.Key] = v
		}
	}
	l.page = 1
}

func (l *list) resetFilters() {
	l.filters = map[string]string{}
	l.page = 1
}

func (l *list) pageCount(total int) int {
	if total == 0 {
		return 1
	}
	return (total + l.limit - 1) / l.limit
}
