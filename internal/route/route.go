// Package route maps route ids to the pages they activate.
package route

import (
	"fmt"
	"sort"
	"strings"
)

// Page is one page module.
type Page string

const (
	Home        Page = "home"
	Calculators Page = "calculators"
	Tracker     Page = "tracker"
	Quiz        Page = "quiz"
)

var known = map[Page]bool{Home: true, Calculators: true, Tracker: true, Quiz: true}

// Table is a validated route configuration.
type Table struct {
	routes map[string][]Page
}

// NewTable checks every route names at least one known page.
func NewTable(cfg map[string][]string) (*Table, error) {
	t := &Table{routes: make(map[string][]Page, len(cfg))}
	for id, pages := range cfg {
		if len(pages) == 0 {
			return nil, fmt.Errorf("route %q: no pages", id)
		}
		seen := make(map[Page]bool)
		for _, p := range pages {
			pg := Page(strings.ToLower(strings.TrimSpace(p)))
			if !known[pg] {
				return nil, fmt.Errorf("route %q: unknown page %q", id, p)
			}
			if seen[pg] {
				continue
			}
			seen[pg] = true
			t.routes[id] = append(t.routes[id], pg)
		}
	}
	return t, nil
}

// Resolve returns the pages of route id, in order.
func (t *Table) Resolve(id string) ([]Page, error) {
	pages, ok := t.routes[id]
	if !ok {
		return nil, fmt.Errorf("unknown route %q (have %s)", id, strings.Join(t.IDs(), ", "))
	}
	return append([]Page(nil), pages...), nil
}

// IDs lists the route ids, sorted.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.routes))
	for id := range t.routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
