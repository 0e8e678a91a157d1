// Package xlsx reads service intake workbooks.
//
// The intake form is a loosely structured sheet filled in by hand. Rather
// than fixed cell addresses, the reader locates two header rows by their
// literal labels and reads the blocks beneath them:
//
//   - the agreement block: the row holding "Preferred Start Date" supplies
//     up to three labels, the row below supplies their values
//   - the equipment table: the row holding "Equipment Type" supplies up to
//     six column headers, every non-blank row below is one piece of equipment
//
// Cells formatted as dates, and text that reads as a date, are normalised
// to YYYY-MM-DD.
package xlsx
