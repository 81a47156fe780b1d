package population

import "fmt"

// LayoutMismatchError reports that the structural template disagrees with the
// resume schema (or with the document it is being applied to). It usually
// means the schema was edited without re-running extraction, or the source
// document no longer follows the one-row-per-bullet layout.
type LayoutMismatchError struct {
	Section     string
	SlotCount   int
	BulletCount int
	Message     string
}

func (e *LayoutMismatchError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = fmt.Sprintf("template has %d bullet slots but the schema supplies %d bullets", e.SlotCount, e.BulletCount)
	}
	if e.Section != "" {
		detail = fmt.Sprintf("section %q: %s", e.Section, detail)
	}
	return fmt.Sprintf("layout mismatch: %s (re-run extract against the source document, or adjust the resume schema to match its layout)", detail)
}
