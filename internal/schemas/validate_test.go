package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T, relativePath string) string {
	t.Helper()
	path := ResolveSchemaPath(relativePath)
	require.NotEmpty(t, path, "schema %s not found from package directory", relativePath)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath("schemas/resume.schema.json")
	assert.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no-such.schema.json"))
}

func TestValidateJSONString_ValidResume(t *testing.T) {
	schema := loadSchema(t, "schemas/resume.schema.json")
	doc := `{
		"experiences": [{
			"title": "Engineer",
			"company": "Acme",
			"dates": "2023",
			"bullet_points": [{"text": "Did the work"}]
		}],
		"projects": [{
			"title": "Tailor",
			"bullet_points": [{"text": "Built it"}]
		}]
	}`

	assert.NoError(t, ValidateJSONString(schema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	schema := loadSchema(t, "schemas/resume.schema.json")
	doc := `{"experiences": [{"company": "Acme"}], "projects": []}`

	err := ValidateJSONString(schema, doc)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_EmptyBulletText(t *testing.T) {
	schema := loadSchema(t, "schemas/resume.schema.json")
	doc := `{
		"experiences": [{"title": "Engineer", "bullet_points": [{"text": ""}]}],
		"projects": []
	}`

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateJSONString(schema, doc), &validationErr)
}

func TestValidateJSONString_UnknownField(t *testing.T) {
	schema := loadSchema(t, "schemas/resume.schema.json")
	doc := `{"experiences": [], "projects": [], "extra": true}`

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateJSONString(schema, doc), &validationErr)
}

func TestValidateJSONString_ValidTemplate(t *testing.T) {
	schema := loadSchema(t, "schemas/template.schema.json")
	doc := `{
		"source_document": "resume.docx",
		"sections": [{
			"table_index": 0,
			"rows": [
				{"row_index": 0, "kind": "heading", "runs": [{"run_index": 0, "kind": "title"}]},
				{"row_index": 1, "kind": "bullet", "runs": [{"run_index": 0, "kind": "bullet"}]}
			]
		}]
	}`

	assert.NoError(t, ValidateJSONString(schema, doc))
}

func TestValidateJSONString_BadTemplateKind(t *testing.T) {
	schema := loadSchema(t, "schemas/template.schema.json")
	doc := `{
		"source_document": "resume.docx",
		"sections": [{
			"table_index": 0,
			"rows": [{"row_index": 0, "kind": "mystery"}]
		}]
	}`

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateJSONString(schema, doc), &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": nonsense`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := ResolveSchemaPath("schemas/resume.schema.json")
	require.NotEmpty(t, schemaPath)

	docPath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"experiences": [], "projects": []}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingDocument(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/resume.schema.json")
	require.NotEmpty(t, schemaPath)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
