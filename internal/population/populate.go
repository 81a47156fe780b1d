// Package population fills a structural template with resume schema content.
// It walks template slots and the schema's flattened section sequence in
// lockstep, writing text into the addressed runs while leaving every
// formatting attribute and every unclassified slot untouched.
package population

import (
	"github.com/jonathan/resume-tailor/internal/document"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Populate writes schema content into the document through the template's
// positional keys. The template is validated against both the schema and the
// document before any run is modified, so a returned error guarantees the
// document is unchanged.
func Populate(doc *document.Document, tmpl *types.StructuralTemplate, schema *types.ResumeSchema) error {
	sections := schema.Sections()

	if len(tmpl.Sections) == 0 {
		return &LayoutMismatchError{
			Message: "template has no sections; the source document contains no tables",
		}
	}
	if len(tmpl.Sections) != len(sections) {
		return &LayoutMismatchError{
			SlotCount:   len(tmpl.Sections),
			BulletCount: len(sections),
			Message: "template and schema disagree on section count: " +
				"the template's tables must map one-to-one onto experiences followed by projects",
		}
	}

	tables := doc.Tables()
	if err := validate(tables, tmpl, sections); err != nil {
		return err
	}

	for i, sectionSlot := range tmpl.Sections {
		write(tables[sectionSlot.TableIndex], sectionSlot, sections[i])
	}
	return nil
}

// validate checks every positional key against the document and every bullet
// slot count against the schema before anything is written.
func validate(tables []document.Table, tmpl *types.StructuralTemplate, sections []types.Section) error {
	for i, sectionSlot := range tmpl.Sections {
		section := sections[i]

		if slots, bullets := sectionSlot.BulletSlotCount(), len(section.Bullets); slots != bullets {
			return &LayoutMismatchError{
				Section:     section.Title,
				SlotCount:   slots,
				BulletCount: bullets,
			}
		}

		if sectionSlot.TableIndex < 0 || sectionSlot.TableIndex >= len(tables) {
			return &LayoutMismatchError{
				Section: section.Title,
				Message: "template addresses a table the document does not have; the document changed since extraction",
			}
		}
		rows := tables[sectionSlot.TableIndex].Rows()
		for _, rowSlot := range sectionSlot.Rows {
			if rowSlot.RowIndex < 0 || rowSlot.RowIndex >= len(rows) {
				return &LayoutMismatchError{
					Section: section.Title,
					Message: "template addresses a row the document does not have; the document changed since extraction",
				}
			}
			runs := rows[rowSlot.RowIndex].Runs()
			for _, runSlot := range rowSlot.Runs {
				if runSlot.RunIndex < 0 || runSlot.RunIndex >= len(runs) {
					return &LayoutMismatchError{
						Section: section.Title,
						Message: "template addresses a run the document does not have; the document changed since extraction",
					}
				}
			}
		}
	}
	return nil
}

// write fills one table from one schema section. Only classified slots are
// written; heading slots receive title/company/dates, bullet slots consume
// the section's bullets in order.
func write(table document.Table, sectionSlot types.SectionSlot, section types.Section) {
	rows := table.Rows()
	cursor := 0

	for _, rowSlot := range sectionSlot.Rows {
		runs := rows[rowSlot.RowIndex].Runs()

		switch rowSlot.Kind {
		case types.RowHeading:
			for _, runSlot := range rowSlot.Runs {
				switch runSlot.Kind {
				case types.SlotTitle:
					runs[runSlot.RunIndex].SetText(section.Title)
				case types.SlotCompany:
					runs[runSlot.RunIndex].SetText(section.Company)
				case types.SlotDates:
					runs[runSlot.RunIndex].SetText(section.Dates)
				}
			}
		case types.RowBullet:
			for _, runSlot := range rowSlot.Runs {
				if runSlot.Kind != types.SlotBullet {
					continue
				}
				runs[runSlot.RunIndex].SetText(section.Bullets[cursor].Text)
				cursor++
			}
		}
	}
}
