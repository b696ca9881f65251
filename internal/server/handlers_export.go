package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/templates"
)

// handleExportPDF renders the resume through a template and prints it to a
// PDF download. The optional template query parameter selects a template by
// ID; absent or unknown IDs use the active template's silent fallback.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	tmpl := s.store.ActiveTemplate()
	if id := r.URL.Query().Get("template"); id != "" {
		tmpl = templates.Lookup(s.store.AvailableTemplates(), id)
	}

	html, err := rendering.RenderHTML(s.store.ResumeData(), &tmpl)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := s.pdf.RenderPDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume-"+tmpl.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		// Response already committed; nothing to recover.
		return
	}
}
