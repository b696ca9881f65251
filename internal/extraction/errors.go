// Package extraction turns uploaded resume documents into raw text and raw
// text into a best-effort partial resume data structure.
package extraction

import "fmt"

// UnsupportedTypeError indicates the uploaded file's media type is not one
// of the supported document formats.
type UnsupportedTypeError struct {
	MediaType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MediaType)
}

// ExtractionError represents a failure in the document text extraction step.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
