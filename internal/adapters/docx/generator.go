package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/hailam/doccraft/internal/adapters/filler"
	"github.com/hailam/doccraft/internal/ports"
)

type DocxGenerator struct{}

func New() ports.FileGenerator {
	return &DocxGenerator{}
}

// Generate writes a minimal word-processing package holding one paragraph of
// filler text.
func (g *DocxGenerator) Generate(path string) error {
	outF, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer outF.Close()

	zw := zip.NewWriter(outF)
	parts := []struct{ name, body string }{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", rootRels},
		{"word/_rels/document.xml.rels", documentRels},
		{"word/document.xml", documentXML(filler.Text)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return fmt.Errorf("failed to write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish docx %s: %w", path, err)
	}
	return outF.Close()
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1"
    Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
    Target="word/document.xml"/>
</Relationships>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// documentXML renders word/document.xml with text as its only paragraph.
func documentXML(text string) string {
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
`)
	b.WriteString("    <w:p><w:r><w:t>")
	b.WriteString(esc.String())
	b.WriteString("</w:t></w:r></w:p>\n")
	b.WriteString("    <w:sectPr/>\n  </w:body>\n</w:document>")
	return b.String()
}
