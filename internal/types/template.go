package types

// RowKind classifies a table row within a section table.
type RowKind string

// Row classifications. A heading row carries title/company/dates; a bullet
// row carries exactly one bullet. Rows that match neither shape are
// unclassified and are never written to during population.
const (
	RowHeading      RowKind = "heading"
	RowBullet       RowKind = "bullet"
	RowUnclassified RowKind = "unclassified"
)

// SlotKind classifies a single text run within a row.
type SlotKind string

// Run classifications within heading and bullet rows.
const (
	SlotTitle        SlotKind = "title"
	SlotCompany      SlotKind = "company"
	SlotDates        SlotKind = "dates"
	SlotBullet       SlotKind = "bullet"
	SlotUnclassified SlotKind = "unclassified"
)

// RunSlot addresses one text run inside a row. RunIndex counts every run in
// the row in document order, including runs without text.
type RunSlot struct {
	RunIndex int      `json:"run_index"`
	Kind     SlotKind `json:"kind"`
}

// RowSlot addresses one row inside a section table.
type RowSlot struct {
	RowIndex int       `json:"row_index"`
	Kind     RowKind   `json:"kind"`
	Runs     []RunSlot `json:"runs,omitempty"`
}

// SectionSlot addresses one table of the source document. TableIndex is the
// table's position in document order.
type SectionSlot struct {
	TableIndex int       `json:"table_index"`
	Rows       []RowSlot `json:"rows"`
}

// StructuralTemplate is the content-free skeleton of a source document: every
// content-bearing location, keyed by table/row/run position. The positional
// keys are the binding contract between extraction and population; a template
// is only valid against the document (and document layout) it was extracted
// from.
type StructuralTemplate struct {
	SourceDocument string        `json:"source_document"`
	Sections       []SectionSlot `json:"sections"`
}

// BulletSlotCount returns the number of classified bullet slots in a section.
func (s *SectionSlot) BulletSlotCount() int {
	count := 0
	for _, row := range s.Rows {
		if row.Kind != RowBullet {
			continue
		}
		for _, run := range row.Runs {
			if run.Kind == SlotBullet {
				count++
			}
		}
	}
	return count
}

// SlotCount returns the total number of classified slots in the template.
func (t *StructuralTemplate) SlotCount() int {
	count := 0
	for _, section := range t.Sections {
		for _, row := range section.Rows {
			for _, run := range row.Runs {
				if run.Kind != SlotUnclassified {
					count++
				}
			}
		}
	}
	return count
}
