// Package document provides table/row/run level access to the WordprocessingML
// payload of a DOCX file. The zip container is handled by the docx library;
// the XML tree is edited with etree, which round-trips namespace prefixes and
// attributes untouched so that only the text content we rewrite ever changes.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/nguyenthenguyen/docx"
)

// Document is an open DOCX file with its main document part parsed.
type Document struct {
	path      string
	container *docx.ReplaceDocx
	editable  *docx.Docx
	xml       *etree.Document
}

// Open reads a DOCX file and parses word/document.xml.
// The caller must Close the document when done.
func Open(path string) (*Document, error) {
	container, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx %s: %w", path, err)
	}

	editable := container.Editable()

	xmlDoc := etree.NewDocument()
	if err := xmlDoc.ReadFromString(editable.GetContent()); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to parse document XML in %s: %w", path, err)
	}

	return &Document{
		path:      path,
		container: container,
		editable:  editable,
		xml:       xmlDoc,
	}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// Close releases the underlying container.
func (d *Document) Close() error {
	return d.container.Close()
}

// Table is a w:tbl element of the document body.
type Table struct {
	el *etree.Element
}

// Row is a w:tr element of a table.
type Row struct {
	el *etree.Element
}

// Run is a w:r element of a row.
type Run struct {
	el *etree.Element
}

// Tables returns every table in document order.
func (d *Document) Tables() []Table {
	els := d.xml.FindElements("//w:tbl")
	tables := make([]Table, len(els))
	for i, el := range els {
		tables[i] = Table{el: el}
	}
	return tables
}

// Rows returns every row of the table in document order.
func (t Table) Rows() []Row {
	els := t.el.FindElements(".//w:tr")
	rows := make([]Row, len(els))
	for i, el := range els {
		rows[i] = Row{el: el}
	}
	return rows
}

// Runs returns every run of the row in document order, including runs that
// carry no text (tabs, breaks, field codes).
func (r Row) Runs() []Run {
	els := r.el.FindElements(".//w:r")
	runs := make([]Run, len(els))
	for i, el := range els {
		runs[i] = Run{el: el}
	}
	return runs
}

// HasText reports whether the run contains at least one text element.
func (r Run) HasText() bool {
	return r.el.SelectElement("w:t") != nil
}

// Text returns the concatenated text content of the run.
func (r Run) Text() string {
	var sb strings.Builder
	for _, t := range r.el.SelectElements("w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// SetText replaces the run's text content. The first w:t receives the new
// text and any further w:t elements are removed; run properties (w:rPr) and
// every other child are left untouched. Runs without a w:t are not modified.
func (r Run) SetText(text string) {
	texts := r.el.SelectElements("w:t")
	if len(texts) == 0 {
		return
	}
	texts[0].SetText(text)
	if text != strings.TrimSpace(text) {
		texts[0].CreateAttr("xml:space", "preserve")
	}
	for _, extra := range texts[1:] {
		r.el.RemoveChild(extra)
	}
}

// VisibleText returns every non-empty text fragment of the document body in
// document order, whitespace-trimmed.
func (d *Document) VisibleText() []string {
	var fragments []string
	for _, t := range d.xml.FindElements("//w:t") {
		if text := strings.TrimSpace(t.Text()); text != "" {
			fragments = append(fragments, text)
		}
	}
	return fragments
}

// Save serializes the modified document part back into the container and
// writes the result to path. The file is written to a temporary name in the
// destination directory and renamed into place, so an aborted run never
// leaves a partial file at path.
func (d *Document) Save(path string) error {
	content, err := d.xml.WriteToString()
	if err != nil {
		return fmt.Errorf("failed to serialize document XML: %w", err)
	}
	d.editable.SetContent(content)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".resume-tailor-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	tmpName := tmp.Name()

	if err := d.editable.Write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write docx: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary output file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
