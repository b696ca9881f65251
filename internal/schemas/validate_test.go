package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

const minimalSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"level": {"type": "integer", "minimum": 1, "maximum": 5}
	},
	"additionalProperties": false
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": "Go", "level": 4}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing required field", `{"level": 3}`},
		{"wrong type", `{"name": 42}`},
		{"out of range", `{"name": "Go", "level": 9}`},
		{"unexpected property", `{"name": "Go", "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(minimalSchema, tt.doc)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
			for _, fe := range ve.Errors {
				assert.NotEmpty(t, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
		})
	}
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": `)
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.ErrorAs(t, err, &sle)
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "personalInfo.email", Message: "Does not match format 'email'"},
	}}

	assert.Contains(t, ve.Error(), "validation failed")
	assert.Contains(t, ve.Error(), "personalInfo.email")
}

func TestResolveSchemaPath_Found(t *testing.T) {
	// Tests run from internal/schemas, so the repo root is two levels up.
	path := ResolveSchemaPath(ResumeDataSchemaFile)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such_schema.json"))
}

func TestValidateResumeData_EmptyDocument(t *testing.T) {
	doc, err := json.Marshal(types.EmptyResumeData())
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeData(doc))
}

func TestValidateResumeData_FullDocument(t *testing.T) {
	data := types.EmptyResumeData()
	data.PersonalInfo = types.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "555-123-4567",
		Title:     "Software Engineer",
	}
	data.WorkExperience = []types.WorkExperience{{
		ID:        "exp-1",
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: "2020-01",
		Current:   true,
	}}
	data.Skills = []types.Skill{{ID: "skill-1", Name: "Go", Level: 5}}

	doc, err := json.Marshal(data)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeData(doc))
}

func TestSetResumeSchemaPath_OverridesSchemaLocation(t *testing.T) {
	// A schema that rejects every resume document.
	path := filepath.Join(t.TempDir(), "strict.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "array"}`), 0o644))

	SetResumeSchemaPath(path)
	t.Cleanup(func() { SetResumeSchemaPath("") })

	doc, err := json.Marshal(types.EmptyResumeData())
	require.NoError(t, err)

	var ve *ValidationError
	require.ErrorAs(t, ValidateResumeData(doc), &ve)

	// Restoring the default resolution accepts the document again.
	SetResumeSchemaPath("")
	assert.NoError(t, ValidateResumeData(doc))
}

func TestSetResumeSchemaPath_MissingFile(t *testing.T) {
	SetResumeSchemaPath(filepath.Join(t.TempDir(), "nope.schema.json"))
	t.Cleanup(func() { SetResumeSchemaPath("") })

	var sle *SchemaLoadError
	assert.ErrorAs(t, ValidateResumeData([]byte(`{}`)), &sle)
}

func TestValidateResumeData_RejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing sections", `{"personalInfo": {}}`},
		{"workExperience not a list", `{
			"personalInfo": {},
			"workExperience": {},
			"education": [],
			"skills": [],
			"certifications": [],
			"socialLinks": []
		}`},
		{"item missing required field", `{
			"personalInfo": {},
			"workExperience": [{"position": "Engineer"}],
			"education": [],
			"skills": [],
			"certifications": [],
			"socialLinks": []
		}`},
		{"unknown top-level key", `{
			"personalInfo": {},
			"workExperience": [],
			"education": [],
			"skills": [],
			"certifications": [],
			"socialLinks": [],
			"themeColor": "#fff"
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeData([]byte(tt.doc))
			require.Error(t, err)

			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}
