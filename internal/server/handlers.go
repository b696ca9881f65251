package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// SetTemplateRequest represents the request body for PUT /resume/template
type SetTemplateRequest struct {
	TemplateID string `json:"template_id"`
}

// SetActiveSectionRequest represents the request body for PUT /resume/active-section
type SetActiveSectionRequest struct {
	Section string `json:"section"`
}

// handleGetResume returns a snapshot of the full resume state
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleSetResume replaces the resume data wholesale. The body is validated
// against the resume data JSON schema before it reaches the store.
func (s *Server) handleSetResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	if err := schemas.ValidateResumeData(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var data types.ResumeData
	if err := json.Unmarshal(body, &data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.SetResumeData(data)
	s.jsonResponse(w, http.StatusOK, s.store.ResumeData())
}

// handleResetResume restores the all-empty default resume data, leaving
// template selection and active section untouched
func (s *Server) handleResetResume(w http.ResponseWriter, _ *http.Request) {
	s.store.ResetResumeData()
	s.jsonResponse(w, http.StatusOK, s.store.ResumeData())
}

// handleUpdatePersonalInfo merges the given fields into the personal info record
func (s *Server) handleUpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var patch types.PersonalInfoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.UpdatePersonalInfo(patch)
	s.jsonResponse(w, http.StatusOK, s.store.ResumeData().PersonalInfo)
}

// handleListTemplates returns the fixed template list
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.AvailableTemplates())
}

// handleSetTemplate selects the active template. An unknown ID silently
// falls back to the default template; the response carries the result.
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req SetTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.SetActiveTemplate(req.TemplateID)
	s.jsonResponse(w, http.StatusOK, s.store.ActiveTemplate())
}

// handleGetActiveSection returns the current editor focus
func (s *Server) handleGetActiveSection(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]types.Section{"section": s.store.ActiveSection()})
}

// handleSetActiveSection sets the editor focus
func (s *Server) handleSetActiveSection(w http.ResponseWriter, r *http.Request) {
	var req SetActiveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	section := types.Section(req.Section)
	if !section.Valid() {
		err := &ErrUnknownSection{Section: req.Section}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.store.SetActiveSection(section)
	s.jsonResponse(w, http.StatusOK, map[string]types.Section{"section": s.store.ActiveSection()})
}
