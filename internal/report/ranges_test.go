package report

import (
	"testing"
)

func TestClamp(t *testing.T) {
	bounds := Range{Min: 10, Max: 100}

	tests := []struct {
		name string
		in   Range
		want Range
	}{
		{"inside", Range{20, 80}, Range{20, 80}},
		{"below min", Range{0, 80}, Range{10, 80}},
		{"above max", Range{20, 500}, Range{20, 100}},
		{"max below current min clamps min down", Range{50, 30}, Range{30, 30}},
		{"both below bounds", Range{-5, -1}, Range{10, 10}},
		{"both above bounds", Range{200, 300}, Range{100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(bounds)
			if got != tt.want {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.Min > got.Max {
				t.Errorf("invariant violated: min %g > max %g", got.Min, got.Max)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	tbl := gemTable(t)

	b := Bounds(tbl, RangeColumns)
	price, ok := b["price"]
	if !ok {
		t.Fatal("no price bounds")
	}
	if price.Min != 1000 || price.Max != 700000 {
		t.Errorf("price bounds = %+v, want [1000,700000]", price)
	}
	if _, ok := b["weight_ratti"]; ok {
		t.Error("bounds reported for a column the feed lacks")
	}
}

func TestBounds_DegenerateColumnWidened(t *testing.T) {
	tbl := gemTable(t)
	// All carat weights equal -> widened so the slider keeps a span.
	narrowed := tbl.Filter(func(row []string) bool {
		return tbl.Value(row, "sku") == "GP1"
	})

	b := Bounds(narrowed, []string{"carat_weight"})
	got := b["carat_weight"]
	if got.Min != 0 || got.Max != 2.5 {
		t.Errorf("degenerate bounds = %+v, want [0,2.5]", got)
	}
}

func TestApplyRanges(t *testing.T) {
	tbl := gemTable(t)

	got := ApplyRanges(tbl, map[string]Range{
		"price": {Min: 1500, Max: 5000},
	})
	if got.Len() != 3 {
		t.Fatalf("rows = %d, want 3", got.Len())
	}
	for _, row := range got.Rows {
		p := got.Float(row, "price")
		if !p.Valid || p.Value < 1500 || p.Value > 5000 {
			t.Errorf("price %+v outside [1500,5000]", p)
		}
	}

	// Inclusive on both ends.
	edge := ApplyRanges(tbl, map[string]Range{"price": {Min: 1000, Max: 1000}})
	if edge.Len() != 1 {
		t.Errorf("inclusive bounds kept %d rows, want 1", edge.Len())
	}

	// A range on a missing column is ignored.
	missing := ApplyRanges(tbl, map[string]Range{"weight_ratti": {Min: 0, Max: 1}})
	if missing.Len() != tbl.Len() {
		t.Errorf("missing column range dropped rows: %d of %d", missing.Len(), tbl.Len())
	}
}

func TestApplyRanges_AbsentValueExcluded(t *testing.T) {
	tbl := gemTable(t)
	// Blank out one carat weight: absent values fail the predicate.
	tbl.Rows[0][5] = ""

	got := ApplyRanges(tbl, map[string]Range{"carat_weight": {Min: 0, Max: 10}})
	if got.Len() != tbl.Len()-1 {
		t.Errorf("rows = %d, want %d (absent value excluded)", got.Len(), tbl.Len()-1)
	}
}
