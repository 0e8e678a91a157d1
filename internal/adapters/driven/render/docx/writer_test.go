package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

func sampleDocument() *domain.Document {
	doc := &domain.Document{Title: "Acme - PM Agreement - 2025-2026"}
	doc.Paragraph("Intro & overview <with> \"quotes\"")
	doc.Spacer()
	doc.Heading("General Services")
	doc.Paragraph("1.\tInspect filters.")
	doc.Paragraph("Benefits include:\n•\tPriority scheduling.\n•\tReduced rates.")
	return doc
}

func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = string(body)
	}
	return parts
}

func TestWriter_Metadata(t *testing.T) {
	w := NewWriter()

	assert.Equal(t, ".docx", w.Extension())
	assert.Equal(t, MIMEType, w.MIMEType())
}

func TestWriter_Render_Package(t *testing.T) {
	data, err := NewWriter().Render(sampleDocument())
	require.NoError(t, err)

	parts := readParts(t, data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"docProps/core.xml",
	} {
		assert.Contains(t, parts, name)
	}
}

func TestWriter_Render_DefaultFont(t *testing.T) {
	data, err := NewWriter().Render(sampleDocument())
	require.NoError(t, err)

	styles := readParts(t, data)["word/styles.xml"]
	assert.Contains(t, styles, `w:ascii="Calibri"`)
	assert.Contains(t, styles, `<w:sz w:val="22"/>`)
}

func TestWriter_Render_CustomFont(t *testing.T) {
	doc := sampleDocument()
	doc.FontName = "Arial"
	doc.FontSize = 10.5

	data, err := NewWriter().Render(doc)
	require.NoError(t, err)

	styles := readParts(t, data)["word/styles.xml"]
	assert.Contains(t, styles, `w:ascii="Arial"`)
	assert.Contains(t, styles, `<w:sz w:val="21"/>`)
}

func TestWriter_Render_BodyMarkup(t *testing.T) {
	data, err := NewWriter().Render(sampleDocument())
	require.NoError(t, err)

	body := readParts(t, data)["word/document.xml"]
	assert.Contains(t, body, "Intro &amp; overview &lt;with&gt; &#34;quotes&#34;")
	assert.Contains(t, body, `<w:p/>`)
	assert.Contains(t, body, `<w:rPr><w:b/><w:bCs/></w:rPr><w:t xml:space="preserve">General Services</w:t>`)
	assert.Contains(t, body, `<w:t xml:space="preserve">1.</w:t><w:tab/><w:t xml:space="preserve">Inspect filters.</w:t>`)
	assert.Contains(t, body, `<w:br/>`)
}

func TestWriter_Render_CoreProperties(t *testing.T) {
	w := NewWriter()
	w.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	data, err := w.Render(sampleDocument())
	require.NoError(t, err)

	core := readParts(t, data)["docProps/core.xml"]
	assert.Contains(t, core, "<dc:title>Acme - PM Agreement - 2025-2026</dc:title>")
	assert.Contains(t, core, "2025-03-01T12:00:00Z")
	assert.Contains(t, core, "<dc:identifier>")
}

func TestWriter_Render_Nil(t *testing.T) {
	_, err := NewWriter().Render(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_RoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := NewWriter().Render(doc)
	require.NoError(t, err)

	content, err := Extract(data)
	require.NoError(t, err)
	assert.Equal(t, doc.PlainText(), content.Text)
	assert.Equal(t, doc.Title, content.Title)
}

func TestExtract_NotADocx(t *testing.T) {
	_, err := Extract([]byte("not a zip"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract(buf.Bytes())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
