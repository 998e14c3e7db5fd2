package locator

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entry names one selector of a page. Templates are registered sampled at a
// representative index so the registry stays a flat list.
type Entry struct {
	Name     string
	Selector Selector
	// Optional entries may legitimately be absent (e.g. the filter reset
	// button when no filter is active).
	Optional bool
}

// Registry is the ordered list of semantic locators for one page.
type Registry []Entry

// Add appends a required entry.
func (r *Registry) Add(name string, sel Selector) {
	*r = append(*r, Entry{Name: name, Selector: sel})
}

// AddOptional appends an entry whose absence is not a contract breach.
func (r *Registry) AddOptional(name string, sel Selector) {
	*r = append(*r, Entry{Name: name, Selector: sel, Optional: true})
}

// Lookup returns the selector registered under name.
func (r Registry) Lookup(name string) (Selector, bool) {
	for _, e := range r {
		if e.Name == name {
			return e.Selector, true
		}
	}
	return "", false
}

// Names lists entry names in registration order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// Result is the outcome of resolving one entry against a document.
type Result struct {
	Entry
	Matches int
}

// Broken reports whether a required entry resolved to nothing.
func (r Result) Broken() bool {
	return !r.Optional && r.Matches == 0
}

// Check resolves every entry against an HTML document (usually a captured
// fixture) without a browser.
func (r Registry) Check(html string) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	results := make([]Result, 0, len(r))
	for _, e := range r {
		results = append(results, Result{Entry: e, Matches: doc.Find(string(e.Selector)).Length()})
	}
	return results, nil
}

// Broken filters results down to required entries that matched nothing.
func Broken(results []Result) []Result {
	var broken []Result
	for _, res := range results {
		if res.Broken() {
			broken = append(broken, res)
		}
	}
	return broken
}
