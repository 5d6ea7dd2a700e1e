package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/apperror"
	"github.com/nmwangi/assetflow-api/pkg/pagination"
	"github.com/nmwangi/assetflow-api/pkg/utils"
)

// grnNumberAttempts bounds the uniqueness retry loop for generated numbers.
const grnNumberAttempts = 5

// GRNService handles goods-receipt-note operations
type GRNService struct {
	grnRepo    repository.GRNRepository
	vendorRepo repository.VendorRepository
	branchRepo repository.BranchRepository
	subcatRepo repository.AssetSubcategoryRepository
	now        func() time.Time
}

// NewGRNService creates a new GRN service
func NewGRNService(
	grnRepo repository.GRNRepository,
	vendorRepo repository.VendorRepository,
	branchRepo repository.BranchRepository,
	subcatRepo repository.AssetSubcategoryRepository,
) *GRNService {
	return &GRNService{
		grnRepo:    grnRepo,
		vendorRepo: vendorRepo,
		branchRepo: branchRepo,
		subcatRepo: subcatRepo,
		now:        time.Now,
	}
}

// GRNLineItemInput represents one line item in a save request. Quantity,
// UnitPrice and TaxPercent are the only amount fields accepted; derived
// values sent by clients are ignored and recomputed server-side.
type GRNLineItemInput struct {
	SubcategoryID   *uuid.UUID
	ItemDescription string
	Quantity        float64
	UnitPrice       float64
	TaxPercent      float64
}

// SaveGRNInput represents the create/update GRN input
type SaveGRNInput struct {
	GRNDate       string
	InvoiceNumber string
	VendorID      *uuid.UUID
	BranchID      *uuid.UUID
	Status        enum.GRNStatus
	LineItems     []GRNLineItemInput
}

// CreateGRN creates a new GRN. The GRN number is always generated
// server-side; drafts skip the header requirements that submission enforces.
func (s *GRNService) CreateGRN(ctx context.Context, input *SaveGRNInput) (*entity.GRN, error) {
	grnDate, appErr := s.validate(input)
	if appErr != nil {
		return nil, appErr
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	grn := &entity.GRN{
		GRNDate:       grnDate,
		InvoiceNumber: input.InvoiceNumber,
		VendorID:      input.VendorID,
		BranchID:      input.BranchID,
		Status:        input.Status,
	}
	grn.LineItems = buildLineItems(input.LineItems)
	grn.Recalculate()

	number, err := s.generateNumber(ctx)
	if err != nil {
		return nil, err
	}
	grn.GRNNumber = number

	if err := s.grnRepo.Create(ctx, grn); err != nil {
		return nil, err
	}
	return s.grnRepo.GetWithDetails(ctx, grn.ID)
}

// GetGRN retrieves a GRN with vendor, branch and ordered line items
func (s *GRNService) GetGRN(ctx context.Context, id uuid.UUID) (*entity.GRN, error) {
	grn, err := s.grnRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, apperror.NewNotFoundError("GRN")
	}
	return grn, nil
}

// UpdateGRN replaces the header fields and the full line-item set. The GRN
// number is immutable and a submitted GRN cannot be reverted to draft.
func (s *GRNService) UpdateGRN(ctx context.Context, id uuid.UUID, input *SaveGRNInput) (*entity.GRN, error) {
	grn, err := s.grnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, apperror.NewNotFoundError("GRN")
	}
	if !grn.Status.IsDraft() && input.Status.IsDraft() {
		return nil, apperror.NewConflictError("A submitted GRN cannot be reverted to draft")
	}

	grnDate, appErr := s.validate(input)
	if appErr != nil {
		return nil, appErr
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	grn.GRNDate = grnDate
	grn.InvoiceNumber = input.InvoiceNumber
	grn.VendorID = input.VendorID
	grn.BranchID = input.BranchID
	grn.Status = input.Status
	grn.LineItems = buildLineItems(input.LineItems)
	grn.Recalculate()

	if err := s.grnRepo.Update(ctx, grn); err != nil {
		return nil, err
	}
	return s.grnRepo.GetWithDetails(ctx, id)
}

// DeleteGRN deletes a GRN and its line items
func (s *GRNService) DeleteGRN(ctx context.Context, id uuid.UUID) error {
	grn, err := s.grnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if grn == nil {
		return apperror.NewNotFoundError("GRN")
	}
	return s.grnRepo.Delete(ctx, id)
}

// ListGRNs lists GRNs with filtering and pagination
func (s *GRNService) ListGRNs(ctx context.Context, params *repository.GRNFilterParams) (*pagination.PaginatedResult[entity.GRN], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	grns, total, err := s.grnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(grns, pag), nil
}

// validate runs the save gate. Drafts only need a well-formed date when one
// is present; submission requires every header field and at least one valid
// line item. All violations are collected before returning.
func (s *GRNService) validate(input *SaveGRNInput) (time.Time, *apperror.AppError) {
	var fieldErrors []apperror.FieldError
	var grnDate time.Time

	if input.GRNDate != "" {
		parsed, err := time.Parse(entity.DateLayout, input.GRNDate)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "grn_date", Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			grnDate = parsed
		}
	}

	if !input.Status.IsDraft() {
		if input.GRNDate == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "grn_date", Message: "is required"})
		}
		if input.InvoiceNumber == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "invoice_number", Message: "is required"})
		}
		if input.VendorID == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vendor_id", Message: "is required"})
		}
		if input.BranchID == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "branch_id", Message: "is required"})
		}
		if len(input.LineItems) == 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "line_items", Message: "at least one line item is required"})
		}
	}

	// Line-item structural rules hold for drafts too; only the header
	// requirements are submission-gated.
	for i, item := range input.LineItems {
		if item.SubcategoryID == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("line_items[%d].subcategory_id", i), Message: "is required",
			})
		}
		if item.ItemDescription == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("line_items[%d].item_description", i), Message: "is required",
			})
		}
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("line_items[%d].quantity", i), Message: "must be greater than zero",
			})
		}
		if item.UnitPrice <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("line_items[%d].unit_price", i), Message: "must be greater than zero",
			})
		}
		if item.TaxPercent < 0 || item.TaxPercent > 100 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("line_items[%d].tax_percent", i), Message: "must be between 0 and 100",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return time.Time{}, apperror.NewValidationError(fieldErrors)
	}
	return grnDate, nil
}

// checkReferences verifies that the vendor, branch and every referenced
// subcategory exist.
func (s *GRNService) checkReferences(ctx context.Context, input *SaveGRNInput) error {
	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return err
		}
		if vendor == nil {
			return apperror.NewNotFoundError("Vendor")
		}
	}
	if input.BranchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *input.BranchID)
		if err != nil {
			return err
		}
		if branch == nil {
			return apperror.NewNotFoundError("Branch")
		}
	}
	for _, item := range input.LineItems {
		if item.SubcategoryID == nil {
			continue
		}
		subcategory, err := s.subcatRepo.GetByID(ctx, *item.SubcategoryID)
		if err != nil {
			return err
		}
		if subcategory == nil {
			return apperror.NewNotFoundError("Subcategory")
		}
	}
	return nil
}

// generateNumber produces a unique GRN number, retrying on the rare serial
// collision within the month.
func (s *GRNService) generateNumber(ctx context.Context) (string, error) {
	for i := 0; i < grnNumberAttempts; i++ {
		number := utils.GenerateGRNNumber(s.now())
		existing, err := s.grnRepo.GetByGRNNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return number, nil
		}
	}
	return "", apperror.NewAppError(500, "Could not allocate a unique GRN number")
}

func buildLineItems(inputs []GRNLineItemInput) entity.LineItems {
	items := make(entity.LineItems, 0, len(inputs))
	for _, in := range inputs {
		items.Append(entity.GRNLineItem{
			SubcategoryID:   in.SubcategoryID,
			ItemDescription: in.ItemDescription,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			TaxPercent:      in.TaxPercent,
		})
	}
	return items
}
