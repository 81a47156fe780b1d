// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTemplate outputs a summary of an extracted structural template.
func (p *Printer) PrintTemplate(tmpl *types.StructuralTemplate) {
	if tmpl == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", tmpl.SourceDocument))
	sb.WriteString(fmt.Sprintf("Tables:   %d\n", len(tmpl.Sections)))
	sb.WriteString(fmt.Sprintf("Slots:    %d\n", tmpl.SlotCount()))
	for _, section := range tmpl.Sections {
		sb.WriteString(fmt.Sprintf("  table %d: %d rows, %d bullet slots\n",
			section.TableIndex, len(section.Rows), section.BulletSlotCount()))
	}

	p.printBox("Structural Template", strings.TrimRight(sb.String(), "\n"))
}

// PrintKeywords outputs the keywords extracted from the job description.
func (p *Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(keywords)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Keywords (%d)", len(keywords)), strings.TrimRight(sb.String(), "\n"))
}

// PrintTailoredSummary outputs per-entry bullet counts of a tailored schema.
func (p *Printer) PrintTailoredSummary(schema *types.ResumeSchema) {
	if schema == nil {
		return
	}

	var sb strings.Builder
	for _, exp := range schema.Experiences {
		name := exp.Title
		if exp.Company != "" {
			name = fmt.Sprintf("%s, %s", exp.Title, exp.Company)
		}
		sb.WriteString(fmt.Sprintf("• %s (%d bullets)\n", name, len(exp.BulletPoints)))
	}
	for _, proj := range schema.Projects {
		sb.WriteString(fmt.Sprintf("• %s (%d bullets)\n", proj.Title, len(proj.BulletPoints)))
	}

	p.printBox("Tailored Schema", strings.TrimRight(sb.String(), "\n"))
}
