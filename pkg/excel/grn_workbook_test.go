package excel

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, f *excelize.File) *bytes.Reader {
	t.Helper()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func sampleExport() *ExportData {
	return &ExportData{
		GRNNumber:     "GRN-202608-417",
		GRNDate:       "2026-08-28",
		InvoiceNumber: "INV-1184",
		VendorName:    "Tech Solutions Inc.",
		BranchName:    "Headquarters",
		LineItems: []ExportLineItem{
			{SubcategoryName: "Laptops", ItemDescription: "14in ultrabook", Quantity: 3, UnitPrice: 100, TaxPercent: 18, TaxableValue: 300, TotalAmount: 354},
			{SubcategoryName: "Monitors", ItemDescription: "27in IPS", Quantity: 1, UnitPrice: 200, TaxPercent: 10, TaxableValue: 200, TotalAmount: 220},
		},
		Subtotal:   500,
		TotalTax:   74,
		GrandTotal: 574,
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	f, err := BuildGRNWorkbook(sampleExport())
	if err != nil {
		t.Fatalf("BuildGRNWorkbook: %v", err)
	}

	parsed, err := ParseGRNWorkbook(workbookBytes(t, f))
	if err != nil {
		t.Fatalf("ParseGRNWorkbook: %v", err)
	}

	if parsed.Header.GRNNumber != "GRN-202608-417" {
		t.Errorf("GRN number = %q", parsed.Header.GRNNumber)
	}
	if parsed.Header.InvoiceNumber != "INV-1184" {
		t.Errorf("invoice number = %q", parsed.Header.InvoiceNumber)
	}
	if parsed.Header.Vendor != "Tech Solutions Inc." || parsed.Header.Branch != "Headquarters" {
		t.Errorf("vendor/branch = %q/%q", parsed.Header.Vendor, parsed.Header.Branch)
	}

	if len(parsed.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(parsed.LineItems))
	}
	first := parsed.LineItems[0]
	if first.Subcategory != "Laptops" || first.Description != "14in ultrabook" {
		t.Errorf("first item = %+v", first)
	}
	if first.Quantity != 3 || first.UnitPrice != 100 || first.TaxPercent != 18 {
		t.Errorf("first item numerics = %v/%v/%v", first.Quantity, first.UnitPrice, first.TaxPercent)
	}
	second := parsed.LineItems[1]
	if second.Quantity != 1 || second.UnitPrice != 200 || second.TaxPercent != 10 {
		t.Errorf("second item numerics = %v/%v/%v", second.Quantity, second.UnitPrice, second.TaxPercent)
	}
}

func TestTemplateDecodesAfterFillIn(t *testing.T) {
	f, err := BuildTemplate(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildTemplate: %v", err)
	}

	// Fill the template in the way a user would.
	const sheet = "GRN Data"
	f.SetCellValue(sheet, "A3", "GRN-202608-500")
	f.SetCellValue(sheet, "C3", "INV-77")
	f.SetCellValue(sheet, "D3", "Office Supplies Co.")
	f.SetCellValue(sheet, "E3", "East Branch")
	row := []interface{}{"Furniture", "Standing desk", 2, 350, 16}
	f.SetSheetRow(sheet, "A7", &row)

	parsed, err := ParseGRNWorkbook(workbookBytes(t, f))
	if err != nil {
		t.Fatalf("ParseGRNWorkbook: %v", err)
	}
	if parsed.Header.GRNDate != "2026-08-28" {
		t.Errorf("pre-filled date = %q", parsed.Header.GRNDate)
	}
	if len(parsed.LineItems) != 1 {
		t.Fatalf("line items = %d, want 1", len(parsed.LineItems))
	}
	if parsed.LineItems[0].Subcategory != "Furniture" || parsed.LineItems[0].Quantity != 2 {
		t.Errorf("item = %+v", parsed.LineItems[0])
	}
}

func TestParseMissingItemsMarker(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", HeaderMarker)
	row := []interface{}{"GRN-1", "2026-01-01", "INV-1", "V", "B"}
	f.SetSheetRow("Sheet1", "A3", &row)

	_, err := ParseGRNWorkbook(workbookBytes(t, f))
	if !errors.Is(err, ErrMalformedWorkbook) {
		t.Fatalf("err = %v, want ErrMalformedWorkbook", err)
	}
}

func TestParseNotAWorkbook(t *testing.T) {
	_, err := ParseGRNWorkbook(strings.NewReader("id,name\n1,notaworkbook\n"))
	if !errors.Is(err, ErrMalformedWorkbook) {
		t.Fatalf("err = %v, want ErrMalformedWorkbook", err)
	}
}

func TestParseNonNumericQuantityAbortsWholeImport(t *testing.T) {
	data := sampleExport()
	data.LineItems = append(data.LineItems, ExportLineItem{
		SubcategoryName: "Printers", ItemDescription: "laser", Quantity: 1, UnitPrice: 80, TaxPercent: 5,
	})
	f, err := BuildGRNWorkbook(data)
	if err != nil {
		t.Fatalf("BuildGRNWorkbook: %v", err)
	}
	// Corrupt the quantity of item 3 (row 11: items start at row 9).
	f.SetCellValue("GRN", "D11", "three")

	parsed, err := ParseGRNWorkbook(workbookBytes(t, f))
	if parsed != nil {
		t.Fatalf("expected nil result, got %d items", len(parsed.LineItems))
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("err = %v, want *RowError", err)
	}
	if rowErr.Item != 3 || rowErr.Field != "Quantity" {
		t.Errorf("row error = %+v, want item 3 / Quantity", rowErr)
	}
	if rowErr.Row != 11 {
		t.Errorf("row error sheet row = %d, want 11", rowErr.Row)
	}
}

func TestParseMissingHeaderField(t *testing.T) {
	data := sampleExport()
	data.InvoiceNumber = ""
	f, err := BuildGRNWorkbook(data)
	if err != nil {
		t.Fatalf("BuildGRNWorkbook: %v", err)
	}

	_, err = ParseGRNWorkbook(workbookBytes(t, f))
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("err = %v, want *RowError", err)
	}
	if rowErr.Item != 0 || rowErr.Field != "Invoice Number" {
		t.Errorf("row error = %+v, want header / Invoice Number", rowErr)
	}
}

func TestParseStopsAtSummaryRows(t *testing.T) {
	f, err := BuildGRNWorkbook(sampleExport())
	if err != nil {
		t.Fatalf("BuildGRNWorkbook: %v", err)
	}

	parsed, err := ParseGRNWorkbook(workbookBytes(t, f))
	if err != nil {
		t.Fatalf("ParseGRNWorkbook: %v", err)
	}
	// The Subtotal/Total Tax/Grand Total rows must not be read as items.
	if len(parsed.LineItems) != 2 {
		t.Errorf("line items = %d, want 2 (summary rows leaked in)", len(parsed.LineItems))
	}
}
