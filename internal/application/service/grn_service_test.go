package service

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"github.com/nmwangi/assetflow-api/pkg/apperror"
)

func newGRNService() (*GRNService, *fakeGRNRepo, *fakeVendorRepo, *fakeBranchRepo, *fakeSubcategoryRepo) {
	grnRepo := &fakeGRNRepo{}
	vendorRepo := &fakeVendorRepo{}
	branchRepo := &fakeBranchRepo{}
	subcatRepo := &fakeSubcategoryRepo{}
	svc := NewGRNService(grnRepo, vendorRepo, branchRepo, subcatRepo)
	return svc, grnRepo, vendorRepo, branchRepo, subcatRepo
}

func appErrOf(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr
}

func hasFieldError(appErr *apperror.AppError, field string) bool {
	for _, fe := range appErr.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestCreateGRNDraftSkipsHeaderRequirements(t *testing.T) {
	svc, _, _, _, subcatRepo := newGRNService()
	subcat := subcatRepo.add("Laptops")

	grn, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		Status: enum.GRNStatusDraft,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Laptop", Quantity: 2, UnitPrice: 50},
		},
	})
	if err != nil {
		t.Fatalf("CreateGRN draft: %v", err)
	}
	if !grn.Status.IsDraft() {
		t.Errorf("status = %v, want draft", grn.Status)
	}
	if matched := regexp.MustCompile(`^GRN-\d{6}-\d{3}$`).MatchString(grn.GRNNumber); !matched {
		t.Errorf("GRNNumber = %q, want GRN-YYYYMM-NNN", grn.GRNNumber)
	}
}

func TestCreateGRNSubmitRequiresHeaderAndItems(t *testing.T) {
	svc, grnRepo, _, _, _ := newGRNService()

	_, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		Status: enum.GRNStatusSubmitted,
	})
	appErr := appErrOf(t, err)
	if appErr.Code != 422 {
		t.Fatalf("code = %d, want 422", appErr.Code)
	}
	for _, field := range []string{"grn_date", "invoice_number", "vendor_id", "branch_id", "line_items"} {
		if !hasFieldError(appErr, field) {
			t.Errorf("missing field error for %q", field)
		}
	}
	if n, _ := grnRepo.Count(context.Background()); n != 0 {
		t.Errorf("stored %d GRNs, want 0", n)
	}
}

func TestCreateGRNLineItemViolationsAreIndexed(t *testing.T) {
	svc, _, vendorRepo, branchRepo, subcatRepo := newGRNService()
	vendor := vendorRepo.add("Acme Supplies")
	branch := branchRepo.add("Head Office")
	subcat := subcatRepo.add("Monitors")

	_, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		GRNDate:       "2026-08-20",
		InvoiceNumber: "INV-9",
		VendorID:      &vendor.ID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusSubmitted,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Monitor", Quantity: 1, UnitPrice: 120, TaxPercent: 5},
			{ItemDescription: "", Quantity: 0, UnitPrice: -10, TaxPercent: 130},
		},
	})
	appErr := appErrOf(t, err)
	for _, field := range []string{
		"line_items[1].subcategory_id",
		"line_items[1].item_description",
		"line_items[1].quantity",
		"line_items[1].unit_price",
		"line_items[1].tax_percent",
	} {
		if !hasFieldError(appErr, field) {
			t.Errorf("missing field error for %q", field)
		}
	}
	if hasFieldError(appErr, "line_items[0].quantity") {
		t.Error("valid item flagged")
	}
}

func TestLineItemRulesApplyToDrafts(t *testing.T) {
	svc, _, _, _, _ := newGRNService()

	_, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		Status: enum.GRNStatusDraft,
		LineItems: []GRNLineItemInput{
			{ItemDescription: "Free item", Quantity: 1, UnitPrice: 0},
		},
	})
	appErr := appErrOf(t, err)
	if !hasFieldError(appErr, "line_items[0].unit_price") {
		t.Error("draft bypassed the line-item unit price rule")
	}
	if !hasFieldError(appErr, "line_items[0].subcategory_id") {
		t.Error("draft bypassed the line-item subcategory rule")
	}
	if hasFieldError(appErr, "invoice_number") {
		t.Error("draft should not require header fields")
	}
}

func TestCreateGRNDerivesTotalsServerSide(t *testing.T) {
	svc, _, vendorRepo, branchRepo, subcatRepo := newGRNService()
	vendor := vendorRepo.add("Acme Supplies")
	branch := branchRepo.add("Head Office")
	subcat := subcatRepo.add("Office Equipment")

	grn, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		GRNDate:       "2026-08-20",
		InvoiceNumber: "INV-42",
		VendorID:      &vendor.ID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusSubmitted,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Keyboard", Quantity: 2, UnitPrice: 50, TaxPercent: 0},
			{SubcategoryID: &subcat.ID, ItemDescription: "Desk", Quantity: 1, UnitPrice: 200, TaxPercent: 10},
		},
	})
	if err != nil {
		t.Fatalf("CreateGRN: %v", err)
	}

	if math.Abs(grn.Subtotal-300) > 1e-9 || math.Abs(grn.TotalTax-20) > 1e-9 || math.Abs(grn.GrandTotal-320) > 1e-9 {
		t.Errorf("totals = %v/%v/%v, want 300/20/320", grn.Subtotal, grn.TotalTax, grn.GrandTotal)
	}
	if len(grn.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(grn.LineItems))
	}
	if math.Abs(grn.LineItems[1].TotalAmount-220) > 1e-9 {
		t.Errorf("item total = %v, want 220", grn.LineItems[1].TotalAmount)
	}
	if grn.LineItems[0].Position != 0 || grn.LineItems[1].Position != 1 {
		t.Errorf("positions = %d,%d, want 0,1", grn.LineItems[0].Position, grn.LineItems[1].Position)
	}
}

func TestCreateGRNUnknownVendorFails(t *testing.T) {
	svc, _, _, branchRepo, subcatRepo := newGRNService()
	branch := branchRepo.add("Head Office")
	subcat := subcatRepo.add("Furniture")
	missingID := uuid.New()

	_, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		GRNDate:       "2026-08-20",
		InvoiceNumber: "INV-1",
		VendorID:      &missingID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusSubmitted,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Chair", Quantity: 1, UnitPrice: 80},
		},
	})
	appErr := appErrOf(t, err)
	if appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestUpdateGRNCannotRevertSubmittedToDraft(t *testing.T) {
	svc, _, vendorRepo, branchRepo, subcatRepo := newGRNService()
	vendor := vendorRepo.add("Acme Supplies")
	branch := branchRepo.add("Head Office")
	subcat := subcatRepo.add("Printers")

	grn, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		GRNDate:       "2026-08-20",
		InvoiceNumber: "INV-7",
		VendorID:      &vendor.ID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusSubmitted,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Printer", Quantity: 1, UnitPrice: 500, TaxPercent: 18},
		},
	})
	if err != nil {
		t.Fatalf("CreateGRN: %v", err)
	}

	_, err = svc.UpdateGRN(context.Background(), grn.ID, &SaveGRNInput{
		Status: enum.GRNStatusDraft,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Printer", Quantity: 1, UnitPrice: 500, TaxPercent: 18},
		},
	})
	appErr := appErrOf(t, err)
	if appErr.Code != 409 {
		t.Errorf("code = %d, want 409", appErr.Code)
	}
}

func TestUpdateGRNReplacesLineItemsAndRecalculates(t *testing.T) {
	svc, _, vendorRepo, branchRepo, subcatRepo := newGRNService()
	vendor := vendorRepo.add("Acme Supplies")
	branch := branchRepo.add("Head Office")
	subcat := subcatRepo.add("Scanners")

	grn, err := svc.CreateGRN(context.Background(), &SaveGRNInput{
		GRNDate:       "2026-08-20",
		InvoiceNumber: "INV-8",
		VendorID:      &vendor.ID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusDraft,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Old item", Quantity: 4, UnitPrice: 25},
		},
	})
	if err != nil {
		t.Fatalf("CreateGRN: %v", err)
	}
	number := grn.GRNNumber

	updated, err := svc.UpdateGRN(context.Background(), grn.ID, &SaveGRNInput{
		GRNDate:       "2026-08-21",
		InvoiceNumber: "INV-8",
		VendorID:      &vendor.ID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusSubmitted,
		LineItems: []GRNLineItemInput{
			{SubcategoryID: &subcat.ID, ItemDescription: "Scanner", Quantity: 3, UnitPrice: 100, TaxPercent: 18},
		},
	})
	if err != nil {
		t.Fatalf("UpdateGRN: %v", err)
	}
	if updated.GRNNumber != number {
		t.Errorf("GRNNumber changed on update: %q -> %q", number, updated.GRNNumber)
	}
	if len(updated.LineItems) != 1 || updated.LineItems[0].ItemDescription != "Scanner" {
		t.Fatalf("line items not replaced: %+v", updated.LineItems)
	}
	if math.Abs(updated.GrandTotal-354) > 1e-9 {
		t.Errorf("grand total = %v, want 354", updated.GrandTotal)
	}
}

func TestDeleteGRNNotFound(t *testing.T) {
	svc, _, _, _, _ := newGRNService()

	err := svc.DeleteGRN(context.Background(), uuid.New())
	appErr := appErrOf(t, err)
	if appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}
