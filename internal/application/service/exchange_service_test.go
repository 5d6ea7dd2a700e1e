package service

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"github.com/nmwangi/assetflow-api/pkg/excel"
)

func newExchangeService() (*ExchangeService, *fakeGRNRepo, *fakeVendorRepo, *fakeBranchRepo, *fakeSubcategoryRepo) {
	grnRepo := &fakeGRNRepo{}
	vendorRepo := &fakeVendorRepo{}
	branchRepo := &fakeBranchRepo{}
	subcatRepo := &fakeSubcategoryRepo{}
	svc := NewExchangeService(grnRepo, vendorRepo, branchRepo, subcatRepo)
	return svc, grnRepo, vendorRepo, branchRepo, subcatRepo
}

func workbookReader(t *testing.T, data *excel.ExportData) *bytes.Reader {
	t.Helper()
	f, err := excel.BuildGRNWorkbook(data)
	if err != nil {
		t.Fatalf("BuildGRNWorkbook: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func importData() *excel.ExportData {
	return &excel.ExportData{
		GRNNumber:     "GRN-202608-123",
		GRNDate:       "2026-08-20",
		InvoiceNumber: "INV-55",
		VendorName:    "Acme Supplies",
		BranchName:    "Head Office",
		LineItems: []excel.ExportLineItem{
			{SubcategoryName: "Laptops", ItemDescription: "Laptop 14in", Quantity: 2, UnitPrice: 50},
			{SubcategoryName: "Furniture", ItemDescription: "Desk", Quantity: 1, UnitPrice: 200, TaxPercent: 10},
		},
	}
}

func TestImportRejectsCSVUpload(t *testing.T) {
	svc, grnRepo, _, _, _ := newExchangeService()

	_, err := svc.ImportGRN(context.Background(), strings.NewReader("a,b,c"), "items.csv", "text/csv")
	appErr := appErrOf(t, err)
	if appErr.Code != 415 {
		t.Errorf("code = %d, want 415", appErr.Code)
	}
	if n, _ := grnRepo.Count(context.Background()); n != 0 {
		t.Errorf("stored %d GRNs, want 0", n)
	}
}

func TestImportReturnsDraftWithoutPersisting(t *testing.T) {
	svc, grnRepo, vendorRepo, branchRepo, subcatRepo := newExchangeService()
	vendor := vendorRepo.add("Acme Supplies")
	branch := branchRepo.add("Head Office")
	subcatRepo.add("Laptops")
	subcatRepo.add("Furniture")

	grn, err := svc.ImportGRN(context.Background(), workbookReader(t, importData()), "GRN_GRN-202608-123.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		t.Fatalf("ImportGRN: %v", err)
	}

	if grn.Status != enum.GRNStatusDraft {
		t.Errorf("status = %v, want draft", grn.Status)
	}
	if grn.GRNNumber != "GRN-202608-123" {
		t.Errorf("GRNNumber = %q", grn.GRNNumber)
	}
	if grn.VendorID == nil || *grn.VendorID != vendor.ID {
		t.Errorf("vendor not resolved: %v", grn.VendorID)
	}
	if grn.BranchID == nil || *grn.BranchID != branch.ID {
		t.Errorf("branch not resolved: %v", grn.BranchID)
	}
	if len(grn.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(grn.LineItems))
	}
	// Derived fields come from the editable fields, not the sheet
	if math.Abs(grn.Subtotal-300) > 1e-9 || math.Abs(grn.TotalTax-20) > 1e-9 || math.Abs(grn.GrandTotal-320) > 1e-9 {
		t.Errorf("totals = %v/%v/%v, want 300/20/320", grn.Subtotal, grn.TotalTax, grn.GrandTotal)
	}
	// The import is a review payload, not a save.
	if n, _ := grnRepo.Count(context.Background()); n != 0 {
		t.Errorf("stored %d GRNs, want 0", n)
	}
}

func TestImportUnknownVendorAbortsWholeImport(t *testing.T) {
	svc, grnRepo, _, branchRepo, subcatRepo := newExchangeService()
	branchRepo.add("Head Office")
	subcatRepo.add("Laptops")
	subcatRepo.add("Furniture")

	_, err := svc.ImportGRN(context.Background(), workbookReader(t, importData()), "upload.xlsx", "")
	appErr := appErrOf(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "Acme Supplies") {
		t.Errorf("message %q does not name the vendor", appErr.Message)
	}
	if n, _ := grnRepo.Count(context.Background()); n != 0 {
		t.Errorf("stored %d GRNs, want 0", n)
	}
}

func TestImportUnknownSubcategoryAbortsWholeImport(t *testing.T) {
	svc, grnRepo, vendorRepo, branchRepo, subcatRepo := newExchangeService()
	vendorRepo.add("Acme Supplies")
	branchRepo.add("Head Office")
	subcatRepo.add("Laptops") // "Furniture" left unresolved

	_, err := svc.ImportGRN(context.Background(), workbookReader(t, importData()), "upload.xlsx", "")
	appErr := appErrOf(t, err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	if n, _ := grnRepo.Count(context.Background()); n != 0 {
		t.Errorf("stored %d GRNs, want 0", n)
	}
}

func TestExportedWorkbookReimports(t *testing.T) {
	svc, grnRepo, vendorRepo, branchRepo, subcatRepo := newExchangeService()
	vendorRepo.add("Acme Supplies")
	branchRepo.add("Head Office")
	subcatRepo.add("Laptops")
	subcatRepo.add("Furniture")

	original, err := svc.ImportGRN(context.Background(), workbookReader(t, importData()), "upload.xlsx", "")
	if err != nil {
		t.Fatalf("ImportGRN: %v", err)
	}
	// Save the reviewed draft so the export path can load it. The import
	// payload carries the resolved vendor/branch/subcategory entities, the
	// same shape GetWithDetails preloads.
	if err := grnRepo.Create(context.Background(), original); err != nil {
		t.Fatalf("Create: %v", err)
	}

	f, filename, err := svc.ExportGRN(context.Background(), original.ID)
	if err != nil {
		t.Fatalf("ExportGRN: %v", err)
	}
	if filename != "GRN_GRN-202608-123.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	parsed, err := excel.ParseGRNWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("re-parse exported workbook: %v", err)
	}
	if parsed.Header.GRNNumber != original.GRNNumber {
		t.Errorf("round-trip GRNNumber = %q, want %q", parsed.Header.GRNNumber, original.GRNNumber)
	}
	if len(parsed.LineItems) != len(original.LineItems) {
		t.Errorf("round-trip items = %d, want %d", len(parsed.LineItems), len(original.LineItems))
	}
}

func TestTemplateCarriesMarkers(t *testing.T) {
	svc, _, _, _, _ := newExchangeService()

	f, filename, err := svc.Template()
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if filename != excel.TemplateFileName {
		t.Errorf("filename = %q, want %q", filename, excel.TemplateFileName)
	}
	header, err := f.GetCellValue("GRN Data", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != excel.HeaderMarker {
		t.Errorf("A1 = %q, want %q", header, excel.HeaderMarker)
	}
}
