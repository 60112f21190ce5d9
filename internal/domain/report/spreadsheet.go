package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Relatório"

// renderXLSX builds the spreadsheet: merged title row, two metadata
// rows, styled header, then one row per record. The money column keeps
// typed numeric cells so the recipient can recalculate in place.
func (r *Renderer) renderXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := f.MergeCell(sheetName, "A1", "E1"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "A1", reportTitle); err != nil {
		return nil, err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E7D32"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", titleStyle); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(sheetName, "A2", "Data: "+r.Day.Format("02/01/2006"))
	_ = f.SetCellValue(sheetName, "B2", "Dia: "+r.Weekday)
	_ = f.SetCellValue(sheetName, "A3", fmt.Sprintf("Total Funcionários: %d", len(r.Records)))
	_ = f.SetCellValue(sheetName, "B3", "Total a Pagar: R$ "+money(r.Total))

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1565C0"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	for i, header := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 5)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A5", "E5", headerStyle); err != nil {
		return nil, err
	}

	for i, record := range r.Records {
		row := i + 6
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), record.EmployeeName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), record.SalesShare)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), record.CheckIn)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), record.CheckOut)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), orDash(record.Note))
	}

	_ = f.SetColWidth(sheetName, "A", "A", 25)
	_ = f.SetColWidth(sheetName, "B", "B", 15)
	_ = f.SetColWidth(sheetName, "C", "D", 12)
	_ = f.SetColWidth(sheetName, "E", "E", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
