package report

import (
	"sort"

	"github.com/gempundit/gemreport/internal/catalog"
)

// SortColumns is the allow-list of sortable columns offered by the report.
var SortColumns = []string{
	"price", "carat_weight", "weight_ratti",
	"sku", "name", "gemstone", "cut", "shape",
}

var numericSortCols = map[string]bool{
	"price":        true,
	"carat_weight": true,
	"weight_ratti": true,
}

// IsSortable reports whether a column may be sorted on.
func IsSortable(col string) bool {
	for _, c := range SortColumns {
		if c == col {
			return true
		}
	}
	return false
}

// Sort returns a new table ordered by the named column. Numeric columns
// compare on the coerced value, never the display text, and rows with an
// absent value sink to the end regardless of direction. Columns outside the
// allow-list or missing from the table leave the order untouched.
func Sort(t *catalog.Table, col string, desc bool) *catalog.Table {
	if !IsSortable(col) || !t.HasCol(col) {
		return t
	}

	out := shallowWithRows(t, append([][]string(nil), t.Rows...))

	if numericSortCols[col] {
		sort.SliceStable(out.Rows, func(i, j int) bool {
			a, b := out.Float(out.Rows[i], col), out.Float(out.Rows[j], col)
			switch {
			case !a.Valid && !b.Valid:
				return false
			case !a.Valid:
				return false
			case !b.Valid:
				return true
			case desc:
				return a.Value > b.Value
			default:
				return a.Value < b.Value
			}
		})
		return out
	}

	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := out.Value(out.Rows[i], col), out.Value(out.Rows[j], col)
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}

// shallowWithRows builds a table sharing t's column set over the given rows.
func shallowWithRows(t *catalog.Table, rows [][]string) *catalog.Table {
	out := t.Filter(func([]string) bool { return false })
	out.Rows = rows
	return out
}
