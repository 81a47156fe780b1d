// Package extraction builds a content-free structural template from a source
// DOCX document. The template records where content lives (table, row, run),
// never what it says; population later fills the same positions from a resume
// schema.
package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/document"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Heading runs are classified positionally: first text run is the title,
// second the company, third the date range. The layout contract expects one
// table per experience/project, a heading row first, then one row per bullet.
var headingSlotOrder = []types.SlotKind{types.SlotTitle, types.SlotCompany, types.SlotDates}

// Extract walks the document's tables in document order and records every
// text run position. Content is discarded. A document without tables yields
// an empty template, not an error.
func Extract(doc *document.Document) *types.StructuralTemplate {
	tmpl := &types.StructuralTemplate{
		SourceDocument: filepath.Base(doc.Path()),
		Sections:       []types.SectionSlot{},
	}

	for tableIndex, table := range doc.Tables() {
		section := types.SectionSlot{
			TableIndex: tableIndex,
			Rows:       []types.RowSlot{},
		}
		for rowIndex, row := range table.Rows() {
			section.Rows = append(section.Rows, classifyRow(rowIndex, row))
		}
		tmpl.Sections = append(tmpl.Sections, section)
	}

	return tmpl
}

// classifyRow records the text runs of a row and assigns slot kinds by the
// layout convention. Rows without any text run do not match the expected
// shape; they are recorded positionally with no slots and population leaves
// them untouched.
func classifyRow(rowIndex int, row document.Row) types.RowSlot {
	var textRuns []int
	for runIndex, run := range row.Runs() {
		if run.HasText() {
			textRuns = append(textRuns, runIndex)
		}
	}

	if len(textRuns) == 0 {
		return types.RowSlot{RowIndex: rowIndex, Kind: types.RowUnclassified}
	}

	slot := types.RowSlot{RowIndex: rowIndex}
	if rowIndex == 0 {
		slot.Kind = types.RowHeading
		for n, runIndex := range textRuns {
			kind := types.SlotUnclassified
			if n < len(headingSlotOrder) {
				kind = headingSlotOrder[n]
			}
			slot.Runs = append(slot.Runs, types.RunSlot{RunIndex: runIndex, Kind: kind})
		}
		return slot
	}

	slot.Kind = types.RowBullet
	for n, runIndex := range textRuns {
		kind := types.SlotUnclassified
		if n == 0 {
			kind = types.SlotBullet
		}
		slot.Runs = append(slot.Runs, types.RunSlot{RunIndex: runIndex, Kind: kind})
	}
	return slot
}

// SaveTemplate writes the template as indented JSON.
func SaveTemplate(tmpl *types.StructuralTemplate, path string) error {
	data, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write template file: %w", err)
	}
	return nil
}

// LoadTemplate reads a previously extracted template.
func LoadTemplate(path string) (*types.StructuralTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	var tmpl types.StructuralTemplate
	if err := json.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse template JSON: %w", err)
	}
	return &tmpl, nil
}
