package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"resume": "resume.docx",
		"job_url": "https://example.com/posting",
		"model": "gemini-custom",
		"timeout_seconds": 120,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.docx", cfg.Resume)
	assert.Equal(t, "https://example.com/posting", cfg.JobURL)
	assert.Equal(t, "gemini-custom", cfg.Model)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"resume": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_JobAndJobURLMutuallyExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingReferencedFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.docx")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestValidate_EmptyConfig(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Resume: "mine.docx", Verbose: true}
	defaults := Config{
		Resume:         "default.docx",
		Out:            "out.docx",
		Model:          "gemini-custom",
		TimeoutSeconds: 60,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.docx", merged.Resume, "explicit value wins")
	assert.Equal(t, "out.docx", merged.Out)
	assert.Equal(t, "gemini-custom", merged.Model)
	assert.Equal(t, 60, merged.TimeoutSeconds)
	assert.True(t, merged.Verbose)
}
