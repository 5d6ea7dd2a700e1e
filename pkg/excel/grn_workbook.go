package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportLineItem is one row of the exported line-item table. Names are
// already resolved from IDs by the caller; the encoder has no lookup access.
type ExportLineItem struct {
	SubcategoryName string
	ItemDescription string
	Quantity        float64
	UnitPrice       float64
	TaxPercent      float64
	TaxableValue    float64
	TotalAmount     float64
}

// ExportData is the fully resolved GRN snapshot handed to the encoder.
type ExportData struct {
	GRNNumber     string
	GRNDate       string
	InvoiceNumber string
	VendorName    string
	BranchName    string
	LineItems     []ExportLineItem
	Subtotal      float64
	TotalTax      float64
	GrandTotal    float64
}

// BuildGRNWorkbook encodes a GRN into a single-sheet workbook. The sheet
// carries the same marker layout the decoder scans for, so an exported file
// can be re-imported unchanged.
func BuildGRNWorkbook(data *ExportData) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "GRN"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	// NumFmt 4 is the built-in "#,##0.00" format.
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}
	grandTotalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FF0000"},
		NumFmt: 4,
	})
	if err != nil {
		return nil, err
	}

	// Title
	f.SetCellValue(sheet, "A1", "GRN Report")
	f.MergeCell(sheet, "A1", "H1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	// Header section
	f.SetCellValue(sheet, "A3", HeaderMarker)
	f.SetCellStyle(sheet, "A3", "A3", boldStyle)
	f.SetSheetRow(sheet, "A4", &headerLabels)
	headerValues := []interface{}{data.GRNNumber, data.GRNDate, data.InvoiceNumber, data.VendorName, data.BranchName}
	f.SetSheetRow(sheet, "A5", &headerValues)

	// Line-item section
	f.SetCellValue(sheet, "A7", ItemsMarker)
	f.SetCellStyle(sheet, "A7", "A7", boldStyle)
	f.SetSheetRow(sheet, "A8", &exportItemLabels)
	f.SetCellStyle(sheet, "A8", "H8", boldStyle)

	row := 9
	for i, item := range data.LineItems {
		values := []interface{}{
			i + 1,
			item.SubcategoryName,
			item.ItemDescription,
			item.Quantity,
			item.UnitPrice,
			item.TaxPercent,
			item.TaxableValue,
			item.TotalAmount,
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
		row++
	}
	if len(data.LineItems) > 0 {
		f.SetCellStyle(sheet, "D9", fmt.Sprintf("H%d", row-1), moneyStyle)
	}

	// Summary rows: label in column F, amount in column G. The empty first
	// cell is what terminates the decoder's item scan.
	summaries := []struct {
		label string
		value float64
		style int
	}{
		{"Subtotal:", data.Subtotal, moneyStyle},
		{"Total Tax:", data.TotalTax, moneyStyle},
		{"Grand Total:", data.GrandTotal, grandTotalStyle},
	}
	for _, s := range summaries {
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.label)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), boldStyle)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), s.value)
		f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), s.style)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 28)
	f.SetColWidth(sheet, "D", "H", 14)

	return f, nil
}

// BuildTemplate produces the blank input template with the marker layout the
// decoder expects and today's date pre-filled.
func BuildTemplate(today time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "GRN Data"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", HeaderMarker)
	f.SetCellStyle(sheet, "A1", "A1", boldStyle)
	f.SetSheetRow(sheet, "A2", &headerLabels)
	f.SetCellValue(sheet, "B3", today.Format(dateLayout))

	f.SetCellValue(sheet, "A5", ItemsMarker)
	f.SetCellStyle(sheet, "A5", "A5", boldStyle)
	f.SetSheetRow(sheet, "A6", &templateItemLabels)

	// Quantity entries must be positive decimals.
	dv := excelize.NewDataValidation(true)
	dv.Sqref = "C7:C1000"
	if err := dv.SetRange(0.0, 0.0, excelize.DataValidationTypeDecimal, excelize.DataValidationOperatorGreaterThan); err != nil {
		return nil, err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid quantity", "Quantity must be greater than 0")
	if err := f.AddDataValidation(sheet, dv); err != nil {
		return nil, err
	}

	f.SetColWidth(sheet, "A", "E", 20)

	return f, nil
}
