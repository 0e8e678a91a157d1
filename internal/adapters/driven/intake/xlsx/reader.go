package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
	"github.com/custodia-labs/scopegen/internal/datefmt"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// Scan limits.
const (
	headerScanRows = 300
	headerScanCols = 8
	agreementCols  = 3
	equipmentCols  = 6
)

// Ensure Reader implements the interface.
var _ driven.IntakeReader = (*Reader)(nil)

// Reader parses intake workbooks with excelize.
type Reader struct {
	sheet string
}

// NewReader creates a reader for the named sheet. An empty name uses
// domain.DefaultIntakeSheet.
func NewReader(sheet string) *Reader {
	if sheet == "" {
		sheet = domain.DefaultIntakeSheet
	}
	return &Reader{sheet: sheet}
}

// Sheet returns the sheet name the reader looks for.
func (r *Reader) Sheet() string {
	return r.sheet
}

// Parse extracts the agreement block and equipment rows from a workbook.
// A workbook without the intake sheet, or without either header, yields
// empty collections. Bytes that are not a workbook return
// domain.ErrInvalidIntake.
func (r *Reader) Parse(ctx context.Context, data []byte) (*domain.Intake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidIntake)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidIntake, err)
	}
	defer f.Close()

	intake := domain.NewIntake()

	idx, err := f.GetSheetIndex(r.sheet)
	if err != nil || idx < 0 {
		logger.Warn("sheet %q not found, using empty intake", r.sheet)
		return intake, nil
	}

	rows, err := f.GetRows(r.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", domain.ErrInvalidIntake, r.sheet, err)
	}

	g := &grid{file: f, sheet: r.sheet, rows: rows, date1904: is1904(f)}

	if hr, ok := g.findRow(domain.FieldStartDate); ok {
		intake.Agreement = g.agreement(hr)
	} else {
		logger.Debug("no %q header found", domain.FieldStartDate)
	}

	if hr, ok := g.findRow(domain.FieldEquipmentType); ok {
		intake.Equipment = g.equipment(hr)
	} else {
		logger.Debug("no %q header found", domain.FieldEquipmentType)
	}

	return intake, nil
}

// grid is a sheet read as raw strings plus enough of the workbook to
// recover cell formats.
type grid struct {
	file     *excelize.File
	sheet    string
	rows     [][]string
	date1904 bool
}

// raw returns the raw value at (row, col), or "" when out of range.
func (g *grid) raw(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	cells := g.rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// text returns the trimmed value at (row, col).
func (g *grid) text(row, col int) string {
	return strings.TrimSpace(g.raw(row, col))
}

// findRow returns the first row in the scan window with a cell in the
// first columns equal to label after trimming.
func (g *grid) findRow(label string) (int, bool) {
	limit := min(headerScanRows, len(g.rows))
	for i := 0; i < limit; i++ {
		for c := 0; c < headerScanCols; c++ {
			if g.text(i, c) == label {
				return i, true
			}
		}
	}
	return 0, false
}

func (g *grid) agreement(header int) domain.AgreementMetadata {
	out := domain.AgreementMetadata{}
	for c := 0; c < agreementCols; c++ {
		label := g.text(header, c)
		if label == "" {
			continue
		}
		out[label] = g.value(header+1, c, true)
	}
	return out
}

func (g *grid) equipment(header int) []domain.EquipmentRow {
	labels := make([]string, equipmentCols)
	for c := range labels {
		labels[c] = g.text(header, c)
	}

	rows := []domain.EquipmentRow{}
	for r := header + 1; r < len(g.rows); r++ {
		blank := true
		for c := 0; c < equipmentCols; c++ {
			if g.text(r, c) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		row := domain.EquipmentRow{}
		for c, label := range labels {
			if label == "" {
				continue
			}
			row[label] = g.value(r, c, false)
		}
		rows = append(rows, row)
	}
	return rows
}

// value returns the cell at (row, col) as text. Date-formatted numeric cells
// become YYYY-MM-DD; when parseText is set, date-like text does too.
func (g *grid) value(row, col int, parseText bool) string {
	v := g.text(row, col)
	if v == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if g.isDateCell(row, col) {
			if t, err := excelize.ExcelDateToTime(serial, g.date1904); err == nil {
				return t.Format(datefmt.ISOLayout)
			}
		}
		return v
	}
	if parseText {
		return datefmt.Normalize(v)
	}
	return v
}

func (g *grid) isDateCell(row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	styleID, err := g.file.GetCellStyle(g.sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := g.file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	return isDateFormat(style.NumFmt, style.CustomNumFmt)
}

func is1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
