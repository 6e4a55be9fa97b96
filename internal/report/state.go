// Package report implements the interaction state of the gemstone dashboard:
// cascading categorical filters, numeric range filters, sorting and
// pagination. Every function derives new values from its inputs; the state
// threaded through a request is never mutated in place.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Filter describes one categorical filter in the cascade.
type Filter struct {
	Column string
	Label  string
}

// colourPlaceholder in the cascade order is substituted with the feed's
// actual colour column (j_colour or color) before use.
const colourPlaceholder = "@colour"

// cascadeOrder is the fixed priority order of the categorical filters.
// Each filter's offered options are computed from the table as narrowed by
// every earlier filter with a non-empty selection.
var cascadeOrder = []Filter{
	{"gemstone", "Gemstone"},
	{"shape", "Shape"},
	{"cut", "Cut"},
	{"treatment", "Treatment"},
	{"origin", "Origin"},
	{colourPlaceholder, "Colour"},
	{"dimension_type", "Dimension Type"},
	{"product_type", "Product Type"},
	{"certification", "Certification"},
}

// Filters returns the cascade order with the colour column resolved.
// An empty colourCol drops the colour filter entirely.
func Filters(colourCol string) []Filter {
	out := make([]Filter, 0, len(cascadeOrder))
	for _, f := range cascadeOrder {
		if f.Column == colourPlaceholder {
			if colourCol == "" {
				continue
			}
			f.Column = colourCol
		}
		out = append(out, f)
	}
	return out
}

// RangeColumns are the numeric filter columns, in display order.
var RangeColumns = []string{"price", "carat_weight", "weight_ratti"}

// Range is an inclusive [Min,Max] selection over a numeric column.
type Range struct {
	Min float64
	Max float64
}

// View selects how the report body is rendered.
type View string

const (
	ViewTable View = "table"
	ViewGrid  View = "grid"
)

// State is one immutable interaction state: everything the user has chosen
// in the sidebar plus the result controls. Each request parses a fresh
// State; applying an action produces a new value.
type State struct {
	// Selections maps a categorical column to its chosen values.
	// Empty or missing means no restriction.
	Selections map[string][]string

	// Ranges maps a numeric column to its chosen sub-range.
	Ranges map[string]Range

	SortBy   string
	SortDesc bool
	View     View
	Page     int
	Applied  bool
}

// NewState returns an empty interaction state.
func NewState() State {
	return State{
		Selections: map[string][]string{},
		Ranges:     map[string]Range{},
		View:       ViewTable,
		Page:       1,
	}
}

// FilterKey returns a stable fingerprint of the active filter set
// (selections and ranges, not sort/view/page). Pagination resets to page 1
// whenever this key changes between interactions.
func (s State) FilterKey() string {
	cols := make([]string, 0, len(s.Selections))
	for col, vals := range s.Selections {
		if len(vals) == 0 {
			continue
		}
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		cols = append(cols, col+"="+strings.Join(sorted, "\x1f"))
	}
	sort.Strings(cols)

	rcols := make([]string, 0, len(s.Ranges))
	for col, r := range s.Ranges {
		rcols = append(rcols, fmt.Sprintf("%s=%g..%g", col, r.Min, r.Max))
	}
	sort.Strings(rcols)

	return strings.Join(cols, "\x1e") + "|" + strings.Join(rcols, "\x1e")
}

// Selected reports whether a value is chosen for a column.
func (s State) Selected(col, value string) bool {
	for _, v := range s.Selections[col] {
		if v == value {
			return true
		}
	}
	return false
}
