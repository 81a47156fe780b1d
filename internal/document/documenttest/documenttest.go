// Package documenttest builds minimal DOCX fixtures for tests. The generated
// files follow the layout contract: one table per resume section, a heading
// row first, then one row per bullet.
package documenttest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// The docx reader refuses containers without the document part's own
// relationship file, even an empty one.
const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// Section describes one table of a fixture document.
type Section struct {
	// Heading lists the text runs of the heading row, one cell per run
	// (title, company, dates in the conventional order).
	Heading []string
	// Bullets lists the bullet rows, one single-run cell per row.
	Bullets []string
	// RawRows holds extra hand-written w:tr fragments appended after the
	// bullet rows, for exercising unclassified shapes.
	RawRows []string
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

// BuildDocumentXML renders a word/document.xml body with one table per
// section. Heading runs carry run properties so tests can assert formatting
// survives population.
func BuildDocumentXML(sections ...Section) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, section := range sections {
		sb.WriteString(`<w:tbl>`)
		if len(section.Heading) > 0 {
			sb.WriteString(`<w:tr>`)
			for _, run := range section.Heading {
				sb.WriteString(`<w:tc><w:p><w:r><w:rPr><w:b/></w:rPr><w:t>`)
				sb.WriteString(escape(run))
				sb.WriteString(`</w:t></w:r></w:p></w:tc>`)
			}
			sb.WriteString(`</w:tr>`)
		}
		for _, bullet := range section.Bullets {
			sb.WriteString(`<w:tr><w:tc><w:p><w:r><w:rPr><w:sz w:val="20"/></w:rPr><w:t>`)
			sb.WriteString(escape(bullet))
			sb.WriteString(`</w:t></w:r></w:p></w:tc></w:tr>`)
		}
		for _, raw := range section.RawRows {
			sb.WriteString(raw)
		}
		sb.WriteString(`</w:tbl>`)
	}
	sb.WriteString(`<w:p/></w:body></w:document>`)
	return sb.String()
}

// WriteDocx writes a fixture DOCX into dir and returns its path.
func WriteDocx(t *testing.T, dir string, sections ...Section) string {
	t.Helper()
	return WriteDocxXML(t, dir, BuildDocumentXML(sections...))
}

// WriteDocxXML writes a DOCX containing the given word/document.xml payload.
func WriteDocxXML(t *testing.T, dir, documentXML string) string {
	t.Helper()

	path := filepath.Join(dir, "resume.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture docx: %v", err)
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			t.Fatalf("failed to add %s to fixture docx: %v", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			t.Fatalf("failed to write %s in fixture docx: %v", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finalize fixture docx: %v", err)
	}
	return path
}
