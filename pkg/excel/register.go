package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RegisterRow is one GRN in the register report.
type RegisterRow struct {
	GRNNumber     string
	GRNDate       string
	InvoiceNumber string
	VendorName    string
	BranchName    string
	Status        string
	Subtotal      float64
	TotalTax      float64
	GrandTotal    float64
}

// BuildRegisterWorkbook encodes the filtered GRN register into a workbook.
// This is a flat report, not an exchange format; it is not decodable.
func BuildRegisterWorkbook(rows []RegisterRow) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "GRN Register"
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
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "GRN Register Report")
	f.MergeCell(sheet, "A1", "I1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	labels := []interface{}{"GRN Number", "Date", "Invoice Number", "Vendor", "Branch", "Status", "Subtotal", "Total Tax", "Grand Total"}
	f.SetSheetRow(sheet, "A3", &labels)
	f.SetCellStyle(sheet, "A3", "I3", boldStyle)

	rowNo := 4
	var subtotal, totalTax, grandTotal float64
	for _, r := range rows {
		values := []interface{}{
			r.GRNNumber, r.GRNDate, r.InvoiceNumber, r.VendorName, r.BranchName, r.Status,
			r.Subtotal, r.TotalTax, r.GrandTotal,
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNo), &values)
		subtotal += r.Subtotal
		totalTax += r.TotalTax
		grandTotal += r.GrandTotal
		rowNo++
	}
	if len(rows) > 0 {
		f.SetCellStyle(sheet, "G4", fmt.Sprintf("I%d", rowNo-1), moneyStyle)
	}

	f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNo), "Totals:")
	f.SetCellStyle(sheet, fmt.Sprintf("F%d", rowNo), fmt.Sprintf("F%d", rowNo), boldStyle)
	totalsRow := []interface{}{subtotal, totalTax, grandTotal}
	f.SetSheetRow(sheet, fmt.Sprintf("G%d", rowNo), &totalsRow)
	f.SetCellStyle(sheet, fmt.Sprintf("G%d", rowNo), fmt.Sprintf("I%d", rowNo), moneyStyle)

	f.SetColWidth(sheet, "A", "F", 20)
	f.SetColWidth(sheet, "G", "I", 14)

	return f, nil
}
