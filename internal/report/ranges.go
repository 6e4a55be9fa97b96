package report

import "github.com/gempundit/gemreport/internal/catalog"

// Bounds computes the global [min,max] per numeric column over the full
// cleaned table. The bounds deliberately ignore the categorical narrowing so
// slider endpoints stay stable while the user interacts with the dropdowns.
//
// A column with a single distinct value is widened to [0, max(1,value)] so
// the slider keeps a usable span. Columns missing from the feed are omitted
// from the result and their filter is skipped.
func Bounds(t *catalog.Table, cols []string) map[string]Range {
	out := make(map[string]Range, len(cols))
	for _, col := range cols {
		min, max, ok := t.Bounds(col)
		if !ok {
			continue
		}
		if min == max {
			min = 0
			if max < 1 {
				max = 1
			}
		}
		out[col] = Range{Min: min, Max: max}
	}
	return out
}

// Clamp forces a selection inside its bounds with min <= max. When the two
// ends cross, the min end yields: lowering the max input below the current
// min drags the min down with it.
func (r Range) Clamp(bounds Range) Range {
	if r.Min < bounds.Min {
		r.Min = bounds.Min
	}
	if r.Min > bounds.Max {
		r.Min = bounds.Max
	}
	if r.Max < bounds.Min {
		r.Max = bounds.Min
	}
	if r.Max > bounds.Max {
		r.Max = bounds.Max
	}
	if r.Min > r.Max {
		r.Min = r.Max
	}
	return r
}

// ApplyRanges intersects the table with every range predicate, inclusive on
// both ends. Rows whose value is absent fail the predicate for that column.
func ApplyRanges(t *catalog.Table, ranges map[string]Range) *catalog.Table {
	current := t
	for _, col := range RangeColumns {
		r, ok := ranges[col]
		if !ok || !current.HasCol(col) {
			continue
		}
		src := current
		current = src.Filter(func(row []string) bool {
			f := src.Float(row, col)
			return f.Valid && f.Value >= r.Min && f.Value <= r.Max
		})
	}
	return current
}
