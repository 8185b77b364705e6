package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel renders a quote as a spreadsheet: a sequential dump of rows
// in insertion order. The grid has no page concept, so no pagination and no
// column sizing happens here; the consumer handles layout.
func GenerateExcel(view QuoteView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quote_" + view.QuoteNumber
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	row := 1
	writeRow := func(values ...any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if s, ok := v.(string); ok {
				v = sanitizeSpreadsheetCell(s)
			}
			f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	// Title and metadata rows.
	writeRow(view.Title)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	writeRow("الشركة: " + view.CompanyNameAr)
	writeRow("العميل: " + view.CustomerName)
	writeRow(fmt.Sprintf("المشروع: %s - %s", view.ProjectDescription, view.Location))
	writeRow()

	// Item table header, then one row per item in stored order.
	headerRow := row
	writeRow("#", "الوصف", "الكمية", "الوحدة", "سعر الوحدة", "السعر الإجمالي")
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", headerRow), fmt.Sprintf("F%d", headerRow), headerStyle)

	for _, item := range view.Items {
		writeRow(item.Serial, item.Description, item.Quantity, item.Unit, item.UnitPrice, item.Total)
	}

	// Totals.
	writeRow()
	writeRow("", "", "", "", SubtotalLabel, view.Subtotal)
	writeRow("", "", "", "", TaxLabel, view.Tax)
	totalRow := row
	writeRow("", "", "", "", TotalLabel, view.Total)
	f.SetCellStyle(sheetName,
		fmt.Sprintf("E%d", totalRow), fmt.Sprintf("F%d", totalRow), totalStyle)

	// Sheets read right-to-left to match the document direction.
	rtl := true
	if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, fmt.Errorf("set sheet view: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeSpreadsheetCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel interprets cells starting
// with =, +, -, @, \t or \r as formulas.
func sanitizeSpreadsheetCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
