package report

import (
	"sort"

	"github.com/gempundit/gemreport/internal/catalog"
)

// NoneOption is the literal offered for blank cells so rows without a value
// stay selectable.
const NoneOption = "None"

// FilterOptions is one cascade step as offered to the user.
type FilterOptions struct {
	Column   string   `json:"column"`
	Label    string   `json:"label"`
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

// Cascade walks the filters in priority order. For each filter it computes
// the option set from the table as narrowed by every earlier filter with a
// non-empty selection, then applies its own selection before moving on.
// It returns the offered options per filter and the fully narrowed table.
//
// Filters whose column is missing from the feed are skipped. Selecting a
// value for an earlier filter can only shrink, never grow, the option set
// of a later one.
func Cascade(t *catalog.Table, filters []Filter, selections map[string][]string) ([]FilterOptions, *catalog.Table) {
	current := t
	out := make([]FilterOptions, 0, len(filters))

	for _, f := range filters {
		if !current.HasCol(f.Column) {
			continue
		}

		opts := optionsFor(current, f.Column)
		sel := selections[f.Column]
		out = append(out, FilterOptions{
			Column:   f.Column,
			Label:    f.Label,
			Options:  opts,
			Selected: sel,
		})

		if len(sel) > 0 {
			current = narrow(current, f.Column, sel)
		}
	}
	return out, current
}

// optionsFor lists the distinct values of a column, with blank cells folded
// into the NoneOption placeholder, sorted.
func optionsFor(t *catalog.Table, col string) []string {
	values := t.Distinct(col)
	opts := make([]string, 0, len(values))
	sawNone := false
	for _, v := range values {
		if v == "" || v == NoneOption {
			if !sawNone {
				opts = append(opts, NoneOption)
				sawNone = true
			}
			continue
		}
		opts = append(opts, v)
	}
	sort.Strings(opts)
	return opts
}

// narrow keeps rows whose column value is among the chosen ones. Choosing
// NoneOption matches blank cells as well as the literal string.
func narrow(t *catalog.Table, col string, chosen []string) *catalog.Table {
	set := make(map[string]struct{}, len(chosen))
	matchBlank := false
	for _, v := range chosen {
		if v == NoneOption {
			matchBlank = true
		}
		set[v] = struct{}{}
	}
	return t.Filter(func(row []string) bool {
		v := t.Value(row, col)
		if v == "" {
			return matchBlank
		}
		_, ok := set[v]
		return ok
	})
}
