package report

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		items      int
		size       int
		requested  int
		wantNumber int
		wantTotal  int
		wantStart  int
		wantEnd    int
	}{
		{"100 items at 48 gives 3 pages", 100, 48, 1, 1, 3, 0, 48},
		{"middle page", 100, 48, 2, 2, 3, 48, 96},
		{"last page is short", 100, 48, 3, 3, 3, 96, 100},
		{"past the end clamps to last", 100, 48, 4, 3, 3, 96, 100},
		{"zero and negative clamp to first", 100, 48, 0, 1, 3, 0, 48},
		{"shrunken results clamp current page", 10, 48, 3, 1, 1, 0, 10},
		{"empty result still has one page", 0, 48, 1, 1, 1, 0, 0},
		{"exact multiple", 96, 48, 2, 2, 2, 48, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.items, tt.size, tt.requested)
			if got.Number != tt.wantNumber || got.Total != tt.wantTotal {
				t.Errorf("page = %d/%d, want %d/%d", got.Number, got.Total, tt.wantNumber, tt.wantTotal)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("window = [%d,%d), want [%d,%d)", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPaginate_PrevNext(t *testing.T) {
	first := Paginate(100, 48, 1)
	if first.HasPrev() {
		t.Error("first page reports a previous page")
	}
	if !first.HasNext() {
		t.Error("first page of three reports no next page")
	}

	// "Next" from the last page is a no-op: the control renders disabled
	// and a forced request clamps back to the same page.
	last := Paginate(100, 48, 3)
	if last.HasNext() {
		t.Error("last page reports a next page")
	}
	forced := Paginate(100, 48, last.Number+1)
	if forced.Number != last.Number {
		t.Errorf("forced next landed on page %d, want %d", forced.Number, last.Number)
	}
}
