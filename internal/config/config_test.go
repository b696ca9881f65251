package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"storage_dir": "/var/lib/resume",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/resume", cfg.StorageDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
	// Unset fields stay zero for merging
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.ChromePath)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	existing := writeConfigFile(t, `{}`)

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero config", Config{}, ""},
		{"valid port", Config{Port: 8080}, ""},
		{"port too large", Config{Port: 70000}, "'port' must be between"},
		{"negative port", Config{Port: -1}, "'port' must be between"},
		{"missing chrome binary", Config{ChromePath: "/no/such/chrome"}, "chrome binary not found"},
		{"missing schema file", Config{SchemaPath: "/no/such/schema.json"}, "schema file not found"},
		{"existing paths pass", Config{ChromePath: existing, SchemaPath: existing}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090, DatabaseURL: "postgres://localhost/resume"}
	defaults := Config{
		StorageDir:  "/var/lib/resume",
		DatabaseURL: "postgres://default/resume",
		Port:        8080,
		ChromePath:  "/usr/bin/chromium",
		Verbose:     true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/resume", merged.DatabaseURL)
	// Empty fields come from defaults
	assert.Equal(t, "/var/lib/resume", merged.StorageDir)
	assert.Equal(t, "/usr/bin/chromium", merged.ChromePath)
	assert.True(t, merged.Verbose)
	// The receiver is not mutated
	assert.Empty(t, cfg.StorageDir)
}

func TestDefaultStorageDir(t *testing.T) {
	dir := DefaultStorageDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, ".resume-builder")
}
