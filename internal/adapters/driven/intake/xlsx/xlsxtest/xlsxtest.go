// Package xlsxtest builds intake workbooks in memory for tests.
package xlsxtest

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// Workbook returns the bytes of a workbook with one sheet holding rows.
// Row i is written starting at cell A(i+1); nil rows are left empty.
// time.Time values are stored as date-formatted serials.
func Workbook(t testing.TB, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("creating sheet: %v", err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("deleting default sheet: %v", err)
		}
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("writing row %d: %v", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return buf.Bytes()
}

// Intake describes a typical intake form.
type Intake struct {
	Start     any
	End       any
	Frequency string
	Equipment []string
}

// Build lays out a typical intake form on the default intake sheet: a title
// row, the agreement block, a blank row, then the equipment table.
func Build(t testing.TB, in Intake) []byte {
	t.Helper()
	return Workbook(t, domain.DefaultIntakeSheet, Rows(in))
}

// Rows returns the grid Build writes.
func Rows(in Intake) [][]any {
	rows := [][]any{
		{"Service Intake Form"},
		{domain.FieldStartDate, domain.FieldEndDate, domain.FieldFrequency},
		{orBlank(in.Start), orBlank(in.End), in.Frequency},
		nil,
		{domain.FieldEquipmentType, "Make", "Model", "Serial", "Location", "Qty"},
	}
	for i, e := range in.Equipment {
		rows = append(rows, []any{e, "Acme", "M-100", "SN" + string(rune('A'+i)), "Roof", 1})
	}
	return rows
}

// Date is a convenience for building date cells.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func orBlank(v any) any {
	if v == nil {
		return ""
	}
	return v
}
