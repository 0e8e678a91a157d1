// Package docx writes agreements as Office Open XML word processing
// documents and reads their text back.
//
// The writer emits the minimal package Word, LibreOffice and Google Docs
// accept: content types, package relationships, the main document part, a
// styles part carrying the base font, and core properties. Headings are
// bold paragraphs; body paragraphs turn "\n" into line breaks and "\t" into
// tabs.
package docx
