package report

import (
	"strings"
	"testing"

	"github.com/gempundit/gemreport/internal/catalog"
)

func gemTable(t *testing.T) *catalog.Table {
	t.Helper()
	doc := strings.Join([]string{
		"sku,gemstone,shape,cut,price,carat_weight",
		"GP1,Ruby,Oval,Faceted,1000,2.5",
		"GP2,Ruby,Round,Cabochon,2000,3.5",
		"GP3,Emerald,Oval,Faceted,3000,1.5",
		"GP4,Emerald,Pear,,4000,5.0",
		"GP5,Sapphire,Round,Faceted,700000,4.0",
	}, "\n") + "\n"
	tbl, err := catalog.ReadCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	return tbl
}

func testFilters() []Filter {
	return []Filter{
		{"gemstone", "Gemstone"},
		{"shape", "Shape"},
		{"cut", "Cut"},
	}
}

func optionsByColumn(opts []FilterOptions) map[string][]string {
	out := make(map[string][]string, len(opts))
	for _, o := range opts {
		out[o.Column] = o.Options
	}
	return out
}

func TestCascade_NoSelections(t *testing.T) {
	tbl := gemTable(t)

	opts, narrowed := Cascade(tbl, testFilters(), nil)
	if narrowed.Len() != tbl.Len() {
		t.Errorf("narrowed = %d rows, want all %d", narrowed.Len(), tbl.Len())
	}

	byCol := optionsByColumn(opts)
	wantGem := []string{"Emerald", "Ruby", "Sapphire"}
	if got := byCol["gemstone"]; !equalStrings(got, wantGem) {
		t.Errorf("gemstone options = %v, want %v", got, wantGem)
	}
	// Blank cut on GP4 surfaces as the None placeholder.
	wantCut := []string{"Cabochon", "Faceted", NoneOption}
	if got := byCol["cut"]; !equalStrings(got, wantCut) {
		t.Errorf("cut options = %v, want %v", got, wantCut)
	}
}

func TestCascade_NarrowsLaterOptions(t *testing.T) {
	tbl := gemTable(t)

	base, _ := Cascade(tbl, testFilters(), nil)
	narrowedOpts, narrowed := Cascade(tbl, testFilters(), map[string][]string{
		"gemstone": {"Ruby"},
	})

	if narrowed.Len() != 2 {
		t.Fatalf("narrowed = %d rows, want 2", narrowed.Len())
	}

	baseBy := optionsByColumn(base)
	narrowBy := optionsByColumn(narrowedOpts)

	// Selecting an earlier filter never expands a later option set.
	for _, col := range []string{"shape", "cut"} {
		if len(narrowBy[col]) > len(baseBy[col]) {
			t.Errorf("%s options grew from %v to %v", col, baseBy[col], narrowBy[col])
		}
		for _, v := range narrowBy[col] {
			if !containsString(baseBy[col], v) {
				t.Errorf("%s option %q not offered in the unfiltered set %v", col, v, baseBy[col])
			}
		}
	}

	wantShape := []string{"Oval", "Round"}
	if got := narrowBy["shape"]; !equalStrings(got, wantShape) {
		t.Errorf("shape options = %v, want %v", got, wantShape)
	}
	// The first filter's own options stay computed from the full table.
	if got := narrowBy["gemstone"]; !equalStrings(got, baseBy["gemstone"]) {
		t.Errorf("gemstone options = %v, want unchanged %v", got, baseBy["gemstone"])
	}
}

func TestCascade_NoneSelectsBlanks(t *testing.T) {
	tbl := gemTable(t)

	_, narrowed := Cascade(tbl, testFilters(), map[string][]string{
		"cut": {NoneOption},
	})
	if narrowed.Len() != 1 {
		t.Fatalf("narrowed = %d rows, want 1", narrowed.Len())
	}
	if sku := narrowed.Value(narrowed.Rows[0], "sku"); sku != "GP4" {
		t.Errorf("kept sku = %q, want GP4", sku)
	}
}

func TestCascade_MissingColumnSkipped(t *testing.T) {
	tbl := gemTable(t)

	filters := append(testFilters(), Filter{"certification", "Certification"})
	opts, _ := Cascade(tbl, filters, nil)
	for _, o := range opts {
		if o.Column == "certification" {
			t.Error("filter for a missing column was offered")
		}
	}
}

func TestFilters_ColourResolution(t *testing.T) {
	withColour := Filters("j_colour")
	found := false
	for _, f := range withColour {
		if f.Column == "j_colour" && f.Label == "Colour" {
			found = true
		}
	}
	if !found {
		t.Error("Filters(j_colour) did not substitute the colour column")
	}

	without := Filters("")
	for _, f := range without {
		if f.Label == "Colour" {
			t.Error("Filters(\"\") still offers a colour filter")
		}
	}
	if len(without) != len(withColour)-1 {
		t.Errorf("Filters(\"\") length = %d, want %d", len(without), len(withColour)-1)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
