package extraction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/document"
	"github.com/jonathan/resume-tailor/internal/document/documenttest"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractFixture(t *testing.T, sections ...documenttest.Section) *types.StructuralTemplate {
	t.Helper()
	path := documenttest.WriteDocx(t, t.TempDir(), sections...)
	doc, err := document.Open(path)
	require.NoError(t, err)
	defer func() { _ = doc.Close() }()
	return Extract(doc)
}

func TestExtract_ClassifiesHeadingAndBullets(t *testing.T) {
	tmpl := extractFixture(t, documenttest.Section{
		Heading: []string{"Graduate Data Scientist/Analyst Intern", "Viasat", "Jun 2023 – Sep 2023"},
		Bullets: []string{"b1", "b2", "b3", "b4"},
	})

	require.Len(t, tmpl.Sections, 1)
	section := tmpl.Sections[0]
	assert.Equal(t, 0, section.TableIndex)
	require.Len(t, section.Rows, 5)

	heading := section.Rows[0]
	assert.Equal(t, types.RowHeading, heading.Kind)
	require.Len(t, heading.Runs, 3)
	assert.Equal(t, types.SlotTitle, heading.Runs[0].Kind)
	assert.Equal(t, types.SlotCompany, heading.Runs[1].Kind)
	assert.Equal(t, types.SlotDates, heading.Runs[2].Kind)

	for _, row := range section.Rows[1:] {
		assert.Equal(t, types.RowBullet, row.Kind)
		require.Len(t, row.Runs, 1)
		assert.Equal(t, types.SlotBullet, row.Runs[0].Kind)
	}

	assert.Equal(t, 4, section.BulletSlotCount())
}

func TestExtract_ContentFree(t *testing.T) {
	tmpl := extractFixture(t, documenttest.Section{
		Heading: []string{"Engineer", "Acme"},
		Bullets: []string{"Shipped the product"},
	})

	// The template must not carry any document content, only positions.
	data := templateJSON(t, tmpl)
	assert.NotContains(t, data, "Engineer")
	assert.NotContains(t, data, "Acme")
	assert.NotContains(t, data, "Shipped the product")
}

func TestExtract_NoTablesYieldsEmptyTemplate(t *testing.T) {
	tmpl := extractFixture(t)

	assert.Empty(t, tmpl.Sections)
	assert.Equal(t, 0, tmpl.SlotCount())
}

func TestExtract_RowWithoutTextRunsIsUnclassified(t *testing.T) {
	tmpl := extractFixture(t, documenttest.Section{
		Heading: []string{"Engineer"},
		Bullets: []string{"b1"},
		RawRows: []string{`<w:tr><w:tc><w:p><w:r><w:br/></w:r></w:p></w:tc></w:tr>`},
	})

	require.Len(t, tmpl.Sections, 1)
	rows := tmpl.Sections[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, types.RowUnclassified, rows[2].Kind)
	assert.Empty(t, rows[2].Runs)
}

func TestExtract_ExtraHeadingRunsUnclassified(t *testing.T) {
	tmpl := extractFixture(t, documenttest.Section{
		Heading: []string{"Engineer", "Acme", "2023", "extra"},
	})

	heading := tmpl.Sections[0].Rows[0]
	require.Len(t, heading.Runs, 4)
	assert.Equal(t, types.SlotUnclassified, heading.Runs[3].Kind)
}

func TestExtract_Idempotent(t *testing.T) {
	path := documenttest.WriteDocx(t, t.TempDir(), documenttest.Section{
		Heading: []string{"Engineer", "Acme"},
		Bullets: []string{"b1", "b2"},
	})

	first := extractFrom(t, path)
	second := extractFrom(t, path)

	assert.Equal(t, templateJSON(t, first), templateJSON(t, second))
}

func TestSaveLoadTemplate_RoundTrip(t *testing.T) {
	tmpl := extractFixture(t, documenttest.Section{
		Heading: []string{"Engineer", "Acme"},
		Bullets: []string{"b1"},
	})

	path := filepath.Join(t.TempDir(), "document_template.json")
	require.NoError(t, SaveTemplate(tmpl, path))

	loaded, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, tmpl, loaded)
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func extractFrom(t *testing.T, path string) *types.StructuralTemplate {
	t.Helper()
	doc, err := document.Open(path)
	require.NoError(t, err)
	defer func() { _ = doc.Close() }()
	return Extract(doc)
}

func templateJSON(t *testing.T, tmpl *types.StructuralTemplate) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tmpl.json")
	require.NoError(t, SaveTemplate(tmpl, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
