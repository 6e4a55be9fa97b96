// Package catalog provides the tabular data model for the product feed and
// the derivation of the cleaned gemstone report from it.
// This package has no HTTP or UI dependencies and can be used by any frontend.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Float is a numeric cell value. Valid is false when the source cell was
// empty or not parseable as a number; an absent value is never zero.
type Float struct {
	Value float64
	Valid bool
}

// ParseFloat coerces a feed cell to a Float.
// Thousands separators and surrounding whitespace are tolerated; anything
// else non-numeric yields an absent value.
func ParseFloat(s string) Float {
	s = strings.TrimSpace(s)
	if s == "" {
		return Float{}
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return Float{Value: f, Valid: true}
}

// String renders the value in canonical form, or "" when absent.
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// Table is an ordered set of columns with string-valued rows.
// Derivations (Filter, Clean) always build a new Table; rows are never
// mutated in place.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable creates an empty table with the given column set.
func NewTable(columns []string) *Table {
	t := &Table{Columns: columns}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		// First occurrence wins for duplicate headers.
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Col returns the position of a column, or false if the feed lacks it.
func (t *Table) Col(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// HasCol reports whether the column exists in this table.
func (t *Table) HasCol(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the cell of row at the named column, or "" when the column
// is absent.
func (t *Table) Value(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Float returns the cell coerced to a number.
func (t *Table) Float(row []string, col string) Float {
	return ParseFloat(t.Value(row, col))
}

// Filter returns a new table containing the rows for which keep is true.
// The column set is shared, the row slice is not.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	out := &Table{Columns: t.Columns, index: t.index}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Distinct returns the sorted distinct cell values of a column, including
// the empty string when blank cells exist. Returns nil when the column is
// absent.
func (t *Table) Distinct(col string) []string {
	if !t.HasCol(col) {
		return nil
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		seen[t.Value(row, col)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Bounds returns the [min,max] of a column's numeric values. ok is false
// when the column is absent or holds no numeric value at all.
func (t *Table) Bounds(col string) (min, max float64, ok bool) {
	if !t.HasCol(col) {
		return 0, 0, false
	}
	for _, row := range t.Rows {
		f := t.Float(row, col)
		if !f.Valid {
			continue
		}
		if !ok {
			min, max, ok = f.Value, f.Value, true
			continue
		}
		if f.Value < min {
			min = f.Value
		}
		if f.Value > max {
			max = f.Value
		}
	}
	return min, max, ok
}

// ReadCSV parses a CSV document into a Table. The first record is the
// header. Ragged rows are padded or truncated to the header width so a
// sloppy export never aborts the whole load.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: empty document")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := NewTable(header)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		} else if len(rec) > len(header) {
			rec = rec[:len(header)]
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// WriteCSV writes the table as UTF-8 CSV with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
