// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// ErrItemNotFound indicates a section item was not found
type ErrItemNotFound struct {
	Section string
	ID      string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("item not found in %s: %s", e.Section, e.ID)
}

// ErrUnknownSection indicates an unknown section identifier in the URL
type ErrUnknownSection struct {
	Section string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		itemNotFound   *ErrItemNotFound
		unknownSection *ErrUnknownSection
		validation     *ErrValidation
		unsupported    *extraction.UnsupportedTypeError
		extractionErr  *extraction.ExtractionError
		schemaErr      *schemas.ValidationError
		templateErr    *rendering.TemplateError
		pdfErr         *rendering.PDFError
	)
	switch {
	case errors.As(err, &itemNotFound):
		return http.StatusNotFound
	case errors.As(err, &unknownSection), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &templateErr), errors.As(err, &pdfErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
