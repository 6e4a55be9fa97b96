package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gempundit/gemreport/internal/report"
)

// Query parameter scheme for the sidebar form:
//
//	f[<column>]    repeated values of a categorical multiselect
//	min[<column>]  lower bound of a numeric range
//	max[<column>]  upper bound of a numeric range
//	sort, dir      sort column (allow-listed) and asc/desc
//	view           table or grid
//	page           1-based page number
//	applied        "1" once the form has been submitted

// parseState builds the interaction state from the request query.
// Range selections are clamped into their global bounds; columns without
// bounds (missing from the feed) never produce a range entry.
func parseState(r *http.Request, filters []report.Filter, bounds map[string]report.Range) report.State {
	q := r.URL.Query()
	state := report.NewState()

	for _, f := range filters {
		var vals []string
		for _, v := range q["f["+f.Column+"]"] {
			if v = strings.TrimSpace(v); v != "" {
				vals = append(vals, v)
			}
		}
		if len(vals) > 0 {
			state.Selections[f.Column] = vals
		}
	}

	for _, col := range report.RangeColumns {
		b, ok := bounds[col]
		if !ok {
			continue
		}
		minStr := q.Get("min[" + col + "]")
		maxStr := q.Get("max[" + col + "]")
		if minStr == "" && maxStr == "" {
			continue
		}
		sel := b
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			sel.Min = v
		}
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			sel.Max = v
		}
		state.Ranges[col] = sel.Clamp(b)
	}

	if col := q.Get("sort"); report.IsSortable(col) {
		state.SortBy = col
		state.SortDesc = q.Get("dir") == "desc"
	}

	if q.Get("view") == string(report.ViewGrid) {
		state.View = report.ViewGrid
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		state.Page = page
	}

	state.Applied = q.Get("applied") == "1"

	return state
}

// stateValues encodes a state back into query parameters, the inverse of
// parseState. Used to build page, sort and view links that preserve the
// rest of the interaction.
func stateValues(state report.State) url.Values {
	v := url.Values{}

	for col, vals := range state.Selections {
		for _, val := range vals {
			v.Add("f["+col+"]", val)
		}
	}
	for col, r := range state.Ranges {
		v.Set("min["+col+"]", formatBound(r.Min))
		v.Set("max["+col+"]", formatBound(r.Max))
	}
	if state.SortBy != "" {
		v.Set("sort", state.SortBy)
		if state.SortDesc {
			v.Set("dir", "desc")
		}
	}
	if state.View == report.ViewGrid {
		v.Set("view", string(report.ViewGrid))
	}
	if state.Page > 1 {
		v.Set("page", strconv.Itoa(state.Page))
	}
	if state.Applied {
		v.Set("applied", "1")
	}
	return v
}

// formatBound renders a range bound without trailing noise (12 not 12.000000).
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
