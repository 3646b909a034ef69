package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render executes the page template into a buffer first so a template fault
// becomes a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, pg page) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", pg); err != nil {
		s.logger.Error().Err(err).Msg("Template execution failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
