package docx

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/doccraft/internal/adapters/filler"
)

func TestDocxGenerator_Generate(t *testing.T) {
	generator := New()
	outPath := filepath.Join(t.TempDir(), "project_plan.docx")

	require.NoError(t, generator.Generate(outPath))

	zr, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	defer zr.Close()

	parts := make(map[string]string)
	for _, f := range zr.File {
		r, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(r)
		r.Close()
		require.NoError(t, err)
		parts[f.Name] = string(body)
	}

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/_rels/document.xml.rels", "word/document.xml"} {
		assert.Contains(t, parts, name)
	}
	doc := parts["word/document.xml"]
	assert.Contains(t, doc, "<w:t>"+filler.Text+"</w:t>")
	assert.Equal(t, 1, strings.Count(doc, "<w:p>"))
}

func TestDocumentXML_EscapesText(t *testing.T) {
	doc := documentXML(`a < b & "c"`)
	assert.Contains(t, doc, "a &lt; b &amp; &#34;c&#34;")
}

func TestDocxGenerator_InvalidPath(t *testing.T) {
	err := New().Generate(filepath.Join(t.TempDir(), "nonexistent_dir", "x.docx"))
	require.Error(t, err)
}
