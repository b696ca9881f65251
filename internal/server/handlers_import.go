package server

import (
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxUploadBytes caps import uploads at 20 MB.
const maxUploadBytes = 20 << 20

// ImportResponse represents the response for POST /import
type ImportResponse struct {
	Data types.ResumeData `json:"data"`
}

// handleImport accepts a multipart document upload, extracts its text,
// applies the heuristic field extraction and replaces the resume data with
// the result. The whole import either fully succeeds or is fully discarded.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = extraction.MediaTypeForFilename(header.Filename)
	}

	resumeData, err := extraction.ParseResumeFile(mediaType, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.store.SetResumeData(resumeData)
	s.jsonResponse(w, http.StatusOK, ImportResponse{Data: s.store.ResumeData()})
}
