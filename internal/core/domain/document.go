package domain

import "strings"

// BlockKind identifies how a document block is rendered.
type BlockKind int

// Block kinds.
const (
	// BlockParagraph is body text. Newlines become line breaks and tabs
	// become tab stops.
	BlockParagraph BlockKind = iota

	// BlockHeading is a section title.
	BlockHeading

	// BlockSpacer is an empty paragraph.
	BlockSpacer
)

// Block is one paragraph of the agreement.
type Block struct {
	Kind BlockKind
	Text string
}

// Default document font.
const (
	DefaultFontName = "Calibri"
	DefaultFontSize = 11.0
)

// Document is the ordered structure of a PM agreement, independent of any
// file format.
type Document struct {
	Title    string
	FontName string
	FontSize float64
	Blocks   []Block
}

// Paragraph appends a body paragraph.
func (d *Document) Paragraph(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockParagraph, Text: text})
}

// Heading appends a section heading.
func (d *Document) Heading(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockHeading, Text: text})
}

// Spacer appends an empty paragraph.
func (d *Document) Spacer() {
	d.Blocks = append(d.Blocks, Block{Kind: BlockSpacer})
}

// PlainText joins all blocks with newlines.
func (d *Document) PlainText() string {
	var b strings.Builder
	for i, blk := range d.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(blk.Text)
	}
	return b.String()
}

// HasHeading reports whether a heading block with text exists.
func (d *Document) HasHeading(text string) bool {
	for _, blk := range d.Blocks {
		if blk.Kind == BlockHeading && blk.Text == text {
			return true
		}
	}
	return false
}
