package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakePDF satisfies PDFRenderer without a browser.
type fakePDF struct {
	output []byte
	err    error
	html   string
}

func (f *fakePDF) RenderPDF(_ context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func newTestServer(t *testing.T) (*Server, *store.Store, *fakePDF) {
	t.Helper()

	st := store.New(context.Background(), store.NewMemoryPersister(), templates.Builtin())
	pdf := &fakePDF{output: []byte("%PDF-1.4 fake")}
	srv, err := New(Config{Port: 0, Store: st, PDF: pdf})
	require.NoError(t, err)
	return srv, st, pdf
}

// perform runs a request through the full middleware-wrapped handler so
// route patterns and path values behave as in production.
func perform(srv *Server, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := perform(srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleGetResume_ReturnsSnapshot(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.AddSkill(types.Skill{Name: "Go", Level: 5})

	rec := perform(srv, http.MethodGet, "/resume", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeBody[store.Snapshot](t, rec)
	assert.Equal(t, types.SectionPersonalInfo, snap.ActiveSection)
	assert.Equal(t, templates.IDModern, snap.ActiveTemplate.ID)
	assert.Len(t, snap.AvailableTemplates, 3)
	require.Len(t, snap.Data.Skills, 1)
	assert.Equal(t, "Go", snap.Data.Skills[0].Name)
}

func TestHandleSetResume_ReplacesDocument(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.AddSkill(types.Skill{Name: "Stale", Level: 1})

	data := types.EmptyResumeData()
	data.PersonalInfo.FirstName = "Jane"
	data.Skills = []types.Skill{{ID: "s1", Name: "Go", Level: 4}}

	rec := perform(srv, http.MethodPut, "/resume", jsonBody(t, data))

	require.Equal(t, http.StatusOK, rec.Code)
	got := st.ResumeData()
	assert.Equal(t, "Jane", got.PersonalInfo.FirstName)
	require.Len(t, got.Skills, 1)
	assert.Equal(t, "Go", got.Skills[0].Name)
}

func TestHandleSetResume_RejectsBadShape(t *testing.T) {
	srv, st, _ := newTestServer(t)

	rec := perform(srv, http.MethodPut, "/resume", bytes.NewReader([]byte(`{"skills": "nope"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "validation failed")
	// Store untouched
	assert.Empty(t, st.ResumeData().Skills)
}

func TestHandleResetResume_KeepsSelection(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.SetActiveTemplate(templates.IDCreative)
	st.SetActiveSection(types.SectionSkills)
	st.AddSkill(types.Skill{Name: "Go", Level: 3})

	rec := perform(srv, http.MethodPost, "/resume/reset", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, st.ResumeData().Skills)
	assert.Equal(t, templates.IDCreative, st.ActiveTemplate().ID)
	assert.Equal(t, types.SectionSkills, st.ActiveSection())
}

func TestHandleUpdatePersonalInfo(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.UpdatePersonalInfo(types.PersonalInfoPatch{FirstName: ptr("Jane"), LastName: ptr("Doe")})

	rec := perform(srv, http.MethodPatch, "/resume/personal-info",
		bytes.NewReader([]byte(`{"title": "Engineer"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[types.PersonalInfo](t, rec)
	assert.Equal(t, "Engineer", info.Title)
	assert.Equal(t, "Jane", info.FirstName)
	assert.Equal(t, "Doe", info.LastName)
}

func TestHandleAddItem(t *testing.T) {
	srv, st, _ := newTestServer(t)

	rec := perform(srv, http.MethodPost, "/resume/skills/items",
		jsonBody(t, types.Skill{Name: "Go", Level: 5}))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[AddItemResponse](t, rec)
	assert.NotEmpty(t, resp.ID)

	skills := st.ResumeData().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, resp.ID, skills[0].ID)
}

func TestHandleAddItem_ValidationFailure(t *testing.T) {
	srv, st, _ := newTestServer(t)

	// Level out of range.
	rec := perform(srv, http.MethodPost, "/resume/skills/items",
		bytes.NewReader([]byte(`{"name": "Go", "level": 9}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.ResumeData().Skills)
}

func TestHandleAddItem_UnknownSection(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		name    string
		section string
	}{
		{"not a section", "hobbies"},
		{"personal info is not a list section", "personalInfo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := perform(srv, http.MethodPost, "/resume/"+tt.section+"/items",
				bytes.NewReader([]byte(`{}`)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleUpdateItem(t *testing.T) {
	srv, st, _ := newTestServer(t)
	id := st.AddWorkExperience(types.WorkExperience{Company: "Acme", Position: "Engineer"})

	rec := perform(srv, http.MethodPatch, "/resume/workExperience/items/"+id,
		bytes.NewReader([]byte(`{"position": "Senior Engineer"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	got := st.ResumeData().WorkExperience[0]
	assert.Equal(t, "Senior Engineer", got.Position)
	assert.Equal(t, "Acme", got.Company)
}

func TestHandleUpdateItem_AbsentID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := perform(srv, http.MethodPatch, "/resume/skills/items/no-such-id",
		bytes.NewReader([]byte(`{"level": 2}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRemoveItem(t *testing.T) {
	srv, st, _ := newTestServer(t)
	id := st.AddCertification(types.Certification{Name: "CKA", Issuer: "CNCF"})

	rec := perform(srv, http.MethodDelete, "/resume/certifications/items/"+id, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, st.ResumeData().Certifications)
}

func TestHandleRemoveItem_AbsentID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := perform(srv, http.MethodDelete, "/resume/education/items/no-such-id", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListTemplates(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := perform(srv, http.MethodGet, "/templates", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]templates.ResumeTemplate](t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, templates.IDModern, list[0].ID)
	assert.Equal(t, templates.IDProfessional, list[1].ID)
	assert.Equal(t, templates.IDCreative, list[2].ID)
}

func TestHandleSetTemplate(t *testing.T) {
	srv, st, _ := newTestServer(t)

	rec := perform(srv, http.MethodPut, "/resume/template",
		jsonBody(t, SetTemplateRequest{TemplateID: templates.IDProfessional}))

	require.Equal(t, http.StatusOK, rec.Code)
	tmpl := decodeBody[templates.ResumeTemplate](t, rec)
	assert.Equal(t, templates.IDProfessional, tmpl.ID)
	assert.Equal(t, templates.IDProfessional, st.ActiveTemplate().ID)
}

func TestHandleSetTemplate_UnknownIDFallsBack(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.SetActiveTemplate(templates.IDCreative)

	rec := perform(srv, http.MethodPut, "/resume/template",
		jsonBody(t, SetTemplateRequest{TemplateID: "brutalist"}))

	// The selection silently falls back rather than erroring; the body
	// tells the caller what was actually selected.
	require.Equal(t, http.StatusOK, rec.Code)
	tmpl := decodeBody[templates.ResumeTemplate](t, rec)
	assert.Equal(t, templates.IDModern, tmpl.ID)
	assert.Equal(t, templates.IDModern, st.ActiveTemplate().ID)
}

func TestHandleActiveSection_RoundTrip(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := perform(srv, http.MethodPut, "/resume/active-section",
		jsonBody(t, SetActiveSectionRequest{Section: "education"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = perform(srv, http.MethodGet, "/resume/active-section", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]types.Section](t, rec)
	assert.Equal(t, types.SectionEducation, body["section"])
}

func TestHandleSetActiveSection_UnknownSection(t *testing.T) {
	srv, st, _ := newTestServer(t)

	rec := perform(srv, http.MethodPut, "/resume/active-section",
		jsonBody(t, SetActiveSectionRequest{Section: "hobbies"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, types.SectionPersonalInfo, st.ActiveSection())
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	if contentType != "" {
		header["Content-Type"] = []string{contentType}
	}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleImport_UnsupportedType(t *testing.T) {
	srv, _, _ := newTestServer(t)

	body, contentType := multipartUpload(t, "resume.txt", "text/plain", []byte("Jane Doe"))
	req := httptest.NewRequest(http.MethodPost, "/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	respBody := decodeBody[map[string]string](t, rec)
	assert.Contains(t, respBody["error"], "unsupported file type")
}

func TestHandleImport_CorruptDocument(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.AddSkill(types.Skill{Name: "Go", Level: 5})

	body, contentType := multipartUpload(t, "resume.pdf", "application/pdf", []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	// A failed import leaves the document untouched.
	assert.Len(t, st.ResumeData().Skills, 1)
}

func TestHandleImport_MissingFileField(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportPDF(t *testing.T) {
	srv, st, pdf := newTestServer(t)
	st.UpdatePersonalInfo(types.PersonalInfoPatch{FirstName: ptr("Jane"), LastName: ptr("Doe")})

	rec := perform(srv, http.MethodGet, "/export/pdf", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-modern.pdf")
	assert.Equal(t, pdf.output, rec.Body.Bytes())
	// The rendered HTML fed to the printer reflects the store.
	assert.Contains(t, pdf.html, "Jane Doe")
}

func TestHandleExportPDF_TemplateQueryParam(t *testing.T) {
	srv, _, pdf := newTestServer(t)

	rec := perform(srv, http.MethodGet, "/export/pdf?template="+templates.IDCreative, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-creative.pdf")
	assert.Contains(t, pdf.html, "#8b5cf6")
}

func TestHandleExportPDF_UnknownTemplateFallsBack(t *testing.T) {
	srv, st, _ := newTestServer(t)
	st.SetActiveTemplate(templates.IDProfessional)

	rec := perform(srv, http.MethodGet, "/export/pdf?template=brutalist", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-modern.pdf")
}

func TestHandleExportPDF_RendererFailure(t *testing.T) {
	srv, _, pdf := newTestServer(t)
	pdf.err = errors.New("chrome exited")

	rec := perform(srv, http.MethodGet, "/export/pdf", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Config{Port: 0})
	assert.Error(t, err)
}

func ptr(s string) *string { return &s }
