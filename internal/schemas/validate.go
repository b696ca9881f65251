// Package schemas provides JSON Schema validation for resume documents
// arriving at the import/replace boundary.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ResumeDataSchemaFile is the repo-relative location of the resume data schema.
const ResumeDataSchemaFile = "schemas/resume_data.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple common path resolutions.
// It tries paths relative to the current working directory, then paths relative to likely repo root locations.
// Returns the first path that exists, or empty string if none found.
// This is useful when commands may run from different working directory contexts (e.g., tests).
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

var (
	resumeSchemaMu      sync.Mutex
	resumeSchemaPath    string
	resumeSchemaContent string
)

// SetResumeSchemaPath overrides the resume data schema location, replacing
// the default repo-relative resolution. An empty path restores the default.
// Changing the path invalidates the cached schema.
func SetResumeSchemaPath(path string) {
	resumeSchemaMu.Lock()
	defer resumeSchemaMu.Unlock()
	if path != resumeSchemaPath {
		resumeSchemaPath = path
		resumeSchemaContent = ""
	}
}

// resumeSchema returns the resume data schema content, reading and caching
// the schema file on first use.
func resumeSchema() (string, error) {
	resumeSchemaMu.Lock()
	defer resumeSchemaMu.Unlock()

	if resumeSchemaContent != "" {
		return resumeSchemaContent, nil
	}

	path := resumeSchemaPath
	if path == "" {
		path = ResolveSchemaPath(ResumeDataSchemaFile)
		if path == "" {
			return "", &SchemaLoadError{
				Path:    ResumeDataSchemaFile,
				Message: "schema file not found",
			}
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &SchemaLoadError{
			Path:    path,
			Message: "failed to read schema file",
			Cause:   err,
		}
	}

	resumeSchemaContent = string(content)
	return resumeSchemaContent, nil
}

// ValidateResumeData validates a ResumeData JSON document against the
// resume data schema.
func ValidateResumeData(jsonContent []byte) error {
	schema, err := resumeSchema()
	if err != nil {
		return err
	}
	return ValidateJSONString(schema, string(jsonContent))
}
