package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintTemplate(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintTemplate(&types.StructuralTemplate{
		SourceDocument: "resume.docx",
		Sections: []types.SectionSlot{{
			TableIndex: 0,
			Rows: []types.RowSlot{
				{RowIndex: 0, Kind: types.RowHeading, Runs: []types.RunSlot{{RunIndex: 0, Kind: types.SlotTitle}}},
				{RowIndex: 1, Kind: types.RowBullet, Runs: []types.RunSlot{{RunIndex: 0, Kind: types.SlotBullet}}},
			},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Structural Template")
	assert.Contains(t, out, "resume.docx")
	assert.Contains(t, out, "1 bullet slots")
}

func TestPrintTemplate_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTemplate(nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords([]string{"Kubernetes", "Terraform"})

	out := buf.String()
	assert.Contains(t, out, "Keywords (2)")
	assert.Contains(t, out, "Kubernetes")
	assert.Contains(t, out, "Terraform")
}

func TestPrintKeywords_TruncatesLongLists(t *testing.T) {
	keywords := make([]string, 12)
	for i := range keywords {
		keywords[i] = fmt.Sprintf("keyword-%d", i)
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(keywords)

	out := buf.String()
	assert.Contains(t, out, "keyword-7")
	assert.NotContains(t, out, "keyword-8")
	assert.Contains(t, out, "and 4 more")
}

func TestPrintKeywords_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTailoredSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTailoredSummary(&types.ResumeSchema{
		Experiences: []types.Experience{{
			Title:        "Engineer",
			Company:      "Acme",
			BulletPoints: []types.BulletPoint{{Text: "a"}, {Text: "b"}},
		}},
		Projects: []types.Project{{
			Title:        "Tailor",
			BulletPoints: []types.BulletPoint{{Text: "c"}},
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Engineer, Acme (2 bullets)")
	assert.Contains(t, out, "Tailor (1 bullets)")
}
