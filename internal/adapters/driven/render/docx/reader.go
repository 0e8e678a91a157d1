package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// Content is the text and title recovered from a .docx file.
type Content struct {
	Title string
	Text  string
}

// Extract reads the paragraphs of word/document.xml as text, one line per
// paragraph, and the title from docProps/core.xml.
func Extract(data []byte) (*Content, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx package", domain.ErrInvalidInput)
	}

	body, err := readPart(reader, "word/document.xml")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: missing word/document.xml", domain.ErrInvalidInput)
	}
	text, err := parseDocumentXML(body)
	if err != nil {
		return nil, err
	}

	out := &Content{Text: text}
	if core, err := readPart(reader, "docProps/core.xml"); err == nil && core != nil {
		var props struct {
			Title string `xml:"title"`
		}
		if xml.Unmarshal(core, &props) == nil {
			out.Title = strings.TrimSpace(props.Title)
		}
	}
	return out, nil
}

func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s", domain.ErrInvalidInput, name)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s", domain.ErrInvalidInput, name)
		}
		return content, nil
	}
	return nil, nil
}

// parseDocumentXML walks the body tokens in order so tabs and breaks land
// between the text runs they separate.
func parseDocumentXML(content []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var b strings.Builder
	paragraphs := 0
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: malformed document.xml: %v", domain.ErrInvalidInput, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != nsMain {
				continue
			}
			switch t.Name.Local {
			case "p":
				if paragraphs > 0 {
					b.WriteByte('\n')
				}
				paragraphs++
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Space == nsMain && t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
