package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gempundit/gemreport/internal/logging"
)

//go:embed templates
var templateFiles embed.FS

// templates is parsed once at startup; a parse error is a programming error.
var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// render executes the dashboard template into a buffer first so a
// mid-render failure never leaks half a page to the client.
func (s *Server) render(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		logging.FromContext(r.Context()).Error("template render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
