// Package rendering renders resume data through the visual templates and
// exports the rendered document to PDF.
package rendering

import "fmt"

// TemplateError represents a failure parsing or executing a template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// PDFError represents a failure in the headless-browser PDF export step
type PDFError struct {
	Message string
	Cause   error
}

func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export error: %s", e.Message)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}
