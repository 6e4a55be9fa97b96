package web

import (
	"strings"

	"github.com/gempundit/gemreport/internal/catalog"
	"github.com/gempundit/gemreport/internal/report"
)

// pageData is the root template model for the dashboard page.
type pageData struct {
	Warning string // advisory or blocking message, rendered as a banner
	Loaded  bool   // feed data is available
	Applied bool   // the sidebar form has been submitted
	Blocked bool   // filters applied but the report must not render

	Filters []filterView
	Ranges  []rangeView
	State   report.State
	Report  *reportView
}

// filterView is one categorical multiselect in the sidebar.
type filterView struct {
	report.FilterOptions
	Param string // form field name, f[<column>]
}

// IsSelected reports whether an option is part of the current selection.
func (f filterView) IsSelected(v string) bool {
	for _, s := range f.Selected {
		if s == v {
			return true
		}
	}
	return false
}

// rangeView is one numeric range control in the sidebar.
type rangeView struct {
	Column string
	Label  string
	Param  string // form field name stem, min[<column>] / max[<column>]
	Bounds report.Range
	Value  report.Range
	Step   string
}

// reportView is the frozen result below the sidebar.
type reportView struct {
	View    report.View
	Page    report.Page
	Columns []columnView
	Rows    [][]cellView
	Cards   [][]cardView // chunked into rows of CardsPerRow

	PrevURL   string
	NextURL   string
	TableURL  string
	GridURL   string
	ExportURL string
}

// columnView is one table header cell.
type columnView struct {
	Label     string
	SortURL   string // empty when the column is not sortable
	Indicator string // active sort direction marker
}

// cellView is one table body cell. Exactly one of Text, Link or Image is
// meaningful: links render as anchors, images as thumbnails.
type cellView struct {
	Text  string
	Link  string
	Image string
}

// cardView is one product card in grid mode.
type cardView struct {
	Image string
	Name  string
	SKU   string
	Sub   string // gemstone – shape
	Price string
	Link  string
}

// tableColumns is the fixed display order of the table view. The colour
// placeholder is substituted with the feed's resolved colour column.
var tableColumns = []string{
	"sku", "name", "url_key", "treatment", "carat_weight", "weight_ratti",
	"price", "gemstone", "@colour", "shape", "cut", "dimension_type",
	"gemstone2", "origin", "product_type", "certification", "image",
}

// columnLabels overrides the default underscore-to-title labeling.
var columnLabels = map[string]string{
	"sku":      "SKU",
	"url_key":  "Link",
	"j_colour": "Colour",
	"color":    "Colour",
}

// labelFor humanizes a column name for display.
func labelFor(col string) string {
	if l, ok := columnLabels[col]; ok {
		return l
	}
	words := strings.Split(col, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// displayColumns resolves the table view column order against the columns
// the feed actually has.
func displayColumns(t *catalog.Table, colourCol string) []string {
	out := make([]string, 0, len(tableColumns))
	for _, col := range tableColumns {
		if col == "@colour" {
			col = colourCol
		}
		if col != "" && t.HasCol(col) {
			out = append(out, col)
		}
	}
	return out
}

// buildFilters shapes the cascade output for the sidebar.
func buildFilters(opts []report.FilterOptions) []filterView {
	out := make([]filterView, len(opts))
	for i, o := range opts {
		out[i] = filterView{FilterOptions: o, Param: "f[" + o.Column + "]"}
	}
	return out
}

// rangeSteps gives each slider a sensible increment.
var rangeSteps = map[string]string{
	"price":        "1",
	"carat_weight": "0.01",
	"weight_ratti": "0.01",
}

// buildRanges shapes the numeric filters for the sidebar. A column with no
// bounds (missing or empty in the feed) is skipped. Controls show the
// clamped selection, or the full span when nothing was chosen yet.
func buildRanges(bounds map[string]report.Range, state report.State) []rangeView {
	out := make([]rangeView, 0, len(report.RangeColumns))
	for _, col := range report.RangeColumns {
		b, ok := bounds[col]
		if !ok {
			continue
		}
		val, ok := state.Ranges[col]
		if !ok {
			val = b
		}
		step := rangeSteps[col]
		if step == "" {
			step = "0.01"
		}
		out = append(out, rangeView{
			Column: col,
			Label:  labelFor(col),
			Param:  col,
			Bounds: b,
			Value:  val,
			Step:   step,
		})
	}
	return out
}

// buildReport renders the sorted, narrowed table into the view model for
// the current page and view mode.
func buildReport(t *catalog.Table, colourCol string, state report.State, page report.Page, cardsPerRow int) *reportView {
	rv := &reportView{
		View: state.View,
		Page: page,
	}

	rv.PrevURL = pageURL(state, page.Number-1)
	rv.NextURL = pageURL(state, page.Number+1)
	rv.TableURL = viewURL(state, report.ViewTable)
	rv.GridURL = viewURL(state, report.ViewGrid)
	rv.ExportURL = "/export.csv?" + stateValues(state).Encode()

	window := t.Rows[page.Start:page.End]

	if state.View == report.ViewGrid {
		cards := make([]cardView, 0, len(window))
		for _, row := range window {
			cards = append(cards, cardView{
				Image: t.Value(row, "image"),
				Name:  t.Value(row, "name"),
				SKU:   t.Value(row, "sku"),
				Sub:   cardSubtitle(t, row),
				Price: catalog.DisplayPrice(t.Float(row, "price")),
				Link:  t.Value(row, "url_key"),
			})
		}
		rv.Cards = chunkCards(cards, cardsPerRow)
		return rv
	}

	cols := displayColumns(t, colourCol)
	rv.Columns = make([]columnView, len(cols))
	for i, col := range cols {
		cv := columnView{Label: labelFor(col)}
		if report.IsSortable(col) {
			cv.SortURL = sortURL(state, col)
			if state.SortBy == col {
				if state.SortDesc {
					cv.Indicator = "▼"
				} else {
					cv.Indicator = "▲"
				}
			}
		}
		rv.Columns[i] = cv
	}

	rv.Rows = make([][]cellView, 0, len(window))
	for _, row := range window {
		cells := make([]cellView, len(cols))
		for i, col := range cols {
			switch col {
			case "url_key":
				cells[i] = cellView{Text: "View", Link: t.Value(row, col)}
			case "image":
				cells[i] = cellView{Image: t.Value(row, col)}
			case "price":
				cells[i] = cellView{Text: catalog.DisplayPrice(t.Float(row, col))}
			default:
				cells[i] = cellView{Text: t.Value(row, col)}
			}
		}
		rv.Rows = append(rv.Rows, cells)
	}
	return rv
}

// cardSubtitle joins gemstone and shape when both exist.
func cardSubtitle(t *catalog.Table, row []string) string {
	gem := t.Value(row, "gemstone")
	shape := t.Value(row, "shape")
	switch {
	case gem != "" && shape != "":
		return gem + " – " + shape
	case gem != "":
		return gem
	default:
		return shape
	}
}

// chunkCards splits cards into grid rows.
func chunkCards(cards []cardView, perRow int) [][]cardView {
	if perRow <= 0 {
		perRow = 4
	}
	var rows [][]cardView
	for len(cards) > 0 {
		n := perRow
		if n > len(cards) {
			n = len(cards)
		}
		rows = append(rows, cards[:n])
		cards = cards[n:]
	}
	return rows
}

// pageURL links to another page of the same interaction.
func pageURL(state report.State, page int) string {
	state.Page = page
	return "/report?" + stateValues(state).Encode()
}

// sortURL links to the same interaction sorted by col, toggling direction
// when col is already the active ascending sort.
func sortURL(state report.State, col string) string {
	state.SortDesc = state.SortBy == col && !state.SortDesc
	state.SortBy = col
	return "/report?" + stateValues(state).Encode()
}

// viewURL links to the same interaction in another view mode.
func viewURL(state report.State, v report.View) string {
	state.View = v
	return "/report?" + stateValues(state).Encode()
}
