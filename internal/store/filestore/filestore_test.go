package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestNew_RequiresDir(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "storage")

	p, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, store.StorageKey+".json"), p.Path())
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	_, ok, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	state := store.PersistedState{
		ActiveSection: types.SectionEducation,
		Data: types.ResumeData{
			PersonalInfo: types.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
			Skills:       []types.Skill{{ID: "s1", Name: "Go", Level: 4}},
		},
		ActiveTemplateID: templates.IDProfessional,
	}
	require.NoError(t, p.Save(context.Background(), state))

	loaded, ok, err := p.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state.ActiveSection, loaded.ActiveSection)
	assert.Equal(t, state.ActiveTemplateID, loaded.ActiveTemplateID)
	assert.Equal(t, state.Data.PersonalInfo, loaded.Data.PersonalInfo)
	require.Len(t, loaded.Data.Skills, 1)
	assert.Equal(t, "s1", loaded.Data.Skills[0].ID)
}

func TestSave_ReplacesPriorDocument(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Save(context.Background(), store.PersistedState{ActiveTemplateID: templates.IDModern}))
	require.NoError(t, p.Save(context.Background(), store.PersistedState{ActiveTemplateID: templates.IDCreative}))

	loaded, ok, err := p.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, templates.IDCreative, loaded.ActiveTemplateID)

	// No leftover temp file from the atomic write
	_, err = os.Stat(p.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p.Path(), []byte("{not json"), 0o644))

	_, ok, err := p.Load(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
}
