package report

// DefaultPageSize is the grid page size.
const DefaultPageSize = 48

// Page is one window into the result set.
type Page struct {
	Number int // 1-based, clamped into [1, Total]
	Total  int // total pages, at least 1
	Size   int
	Items  int // total result count
	Start  int // slice offsets into the result rows
	End    int
}

// Paginate clamps the requested page number into the valid range and
// computes the row window. An out-of-range request is never an error: it
// lands on the nearest valid page, which also covers the case of a result
// set shrinking below the current page.
func Paginate(items, size, requested int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (items + size - 1) / size
	if total < 1 {
		total = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > total {
		number = total
	}

	start := (number - 1) * size
	end := start + size
	if start > items {
		start = items
	}
	if end > items {
		end = items
	}

	return Page{
		Number: number,
		Total:  total,
		Size:   size,
		Items:  items,
		Start:  start,
		End:    end,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Number < p.Total }
