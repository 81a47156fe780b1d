package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"extract-keywords", "tailor-schema"} {
		prompt, err := Get("tailoring.json", key)
		require.NoError(t, err, "prompt %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("tailoring.json", "nope")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract-keywords")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("tailoring.json", "nope") })
}

func TestFormat(t *testing.T) {
	template := "Job: {{.JobDescription}}\nKeywords: {{.Keywords}}"
	result := Format(template, map[string]string{
		"JobDescription": "cloud role",
		"Keywords":       "AWS, Terraform",
	})

	assert.Equal(t, "Job: cloud role\nKeywords: AWS, Terraform", result)
	assert.False(t, strings.Contains(result, "{{"))
}

func TestFormat_MissingKeyLeavesPlaceholder(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestTailorPromptMentionsStructure(t *testing.T) {
	prompt := MustGet("tailoring.json", "tailor-schema")

	assert.Contains(t, prompt, "{{.JobDescription}}")
	assert.Contains(t, prompt, "{{.Keywords}}")
	assert.Contains(t, prompt, "{{.ResumeJSON}}")
}
