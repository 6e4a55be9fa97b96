package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gempundit/gemreport/internal/catalog"
	"github.com/gempundit/gemreport/internal/logging"
	"github.com/gempundit/gemreport/internal/report"
)

// sessionCookie keys the per-browser interaction state.
const sessionCookie = "gr_session"

// gemstoneWarning blocks the report when mandatory gemstone mode is on.
const gemstoneWarning = "Select at least one gemstone to build the report."

// handleDashboard renders the dashboard with the sidebar form. A bare visit
// shows only the filters; query parameters restore a previous interaction.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.buildPage(w, r))
}

// handleReport renders the frozen report for the submitted filter set.
// It is the sidebar form's target; the route exists separately from "/"
// so report links stay bookmarkable.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.buildPage(w, r))
}

// buildPage runs the full derivation pipeline for one request: feed load,
// clean, cascade, ranges, sort, paginate. Every failure degrades to a
// warning banner; nothing here is fatal.
func (s *Server) buildPage(w http.ResponseWriter, r *http.Request) pageData {
	logger := logging.FromContext(r.Context())

	table, err := s.feed.Load(r.Context())
	if err != nil {
		logger.Error("feed load failed", "url", s.cfg.Feed.URL, "error", err)
		return pageData{Warning: feedWarning, State: report.NewState()}
	}

	cleaned := catalog.Clean(table)
	colourCol := s.colourColumn(cleaned)
	filters := report.Filters(colourCol)
	bounds := report.Bounds(cleaned, report.RangeColumns)
	state := parseState(r, filters, bounds)

	// A changed filter set restarts pagination from the first page.
	sid := s.sessionID(w, r)
	if prev, ok := s.sessions.Get(sid); ok && prev.FilterKey() != state.FilterKey() {
		state.Page = 1
	}

	opts, narrowed := report.Cascade(cleaned, filters, state.Selections)

	data := pageData{
		Loaded:  true,
		Applied: state.Applied,
		Filters: buildFilters(opts),
		Ranges:  buildRanges(bounds, state),
	}

	if state.Applied && s.requireGemstone(cleaned) && len(state.Selections["gemstone"]) == 0 {
		data.Blocked = true
		data.Warning = gemstoneWarning
		data.State = state
		s.sessions.Put(sid, state)
		return data
	}

	if state.Applied {
		result := report.ApplyRanges(narrowed, state.Ranges)
		if state.SortBy != "" {
			result = report.Sort(result, state.SortBy, state.SortDesc)
		}
		page := report.Paginate(result.Len(), s.cfg.Report.PageSize, state.Page)
		state.Page = page.Number
		data.Report = buildReport(result, colourCol, state, page, s.cfg.Report.CardsPerRow)

		logger.Info("report rendered",
			"rows", result.Len(),
			"page", page.Number,
			"pages", page.Total,
			"view", state.View,
		)
	}

	data.State = state
	s.sessions.Put(sid, state)
	return data
}

// handleExport streams the full filtered result (post-sort, pre-pagination)
// as a CSV attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	table, err := s.feed.Load(r.Context())
	if err != nil {
		logger.Error("feed load failed", "url", s.cfg.Feed.URL, "error", err)
		http.Error(w, feedWarning, http.StatusServiceUnavailable)
		return
	}

	cleaned := catalog.Clean(table)
	colourCol := s.colourColumn(cleaned)
	filters := report.Filters(colourCol)
	bounds := report.Bounds(cleaned, report.RangeColumns)
	state := parseState(r, filters, bounds)

	if s.requireGemstone(cleaned) && len(state.Selections["gemstone"]) == 0 {
		http.Error(w, gemstoneWarning, http.StatusBadRequest)
		return
	}

	_, narrowed := report.Cascade(cleaned, filters, state.Selections)
	result := report.ApplyRanges(narrowed, state.Ranges)
	if state.SortBy != "" {
		result = report.Sort(result, state.SortBy, state.SortDesc)
	}

	filename := fmt.Sprintf("gemstone-report-%s.csv", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := result.WriteCSV(w); err != nil {
		// Headers are already out; log and stop.
		logger.Error("csv export failed", "error", err)
		return
	}

	logger.Info("report exported", "rows", result.Len(), "filename", filename)
}

// handleOptions returns the cascading option sets for the current
// selections as JSON. The sidebar script calls this to refresh dependent
// dropdowns without a full page render.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	table, err := s.feed.Load(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("feed load failed", "error", err)
		writeJSONError(w, http.StatusServiceUnavailable, feedWarning)
		return
	}

	cleaned := catalog.Clean(table)
	colourCol := s.colourColumn(cleaned)
	filters := report.Filters(colourCol)
	bounds := report.Bounds(cleaned, report.RangeColumns)
	state := parseState(r, filters, bounds)

	opts, _ := report.Cascade(cleaned, filters, state.Selections)

	writeJSON(w, struct {
		Filters []report.FilterOptions   `json:"filters"`
		Bounds  map[string]report.Range  `json:"bounds"`
	}{Filters: opts, Bounds: bounds})
}

// handleRefresh invalidates the cached feed so the next load refetches.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.feed.Refresh()
	logging.FromContext(r.Context()).Info("feed cache invalidated")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// colourColumn resolves which feed column carries the stone colour.
// A configured override wins when present in the feed; otherwise the feed
// is probed for the known candidates. Empty means the colour filter is
// skipped.
func (s *Server) colourColumn(t *catalog.Table) string {
	if col := s.cfg.Report.ColourColumn; col != "" {
		if t.HasCol(col) {
			return col
		}
		return ""
	}
	for _, col := range []string{"j_colour", "color"} {
		if t.HasCol(col) {
			return col
		}
	}
	return ""
}

// requireGemstone reports whether mandatory gemstone selection applies.
// A feed without a gemstone column cannot require one.
func (s *Server) requireGemstone(t *catalog.Table) bool {
	return s.cfg.Report.RequireGemstone && t.HasCol("gemstone")
}

// sessionID returns the browser's session ID, minting one (and setting the
// cookie) on first contact.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := s.sessions.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
