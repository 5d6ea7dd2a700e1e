package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/apperror"
	"github.com/nmwangi/assetflow-api/pkg/excel"
	"github.com/xuri/excelize/v2"
)

// acceptedContentTypes are the upload MIME types treated as Excel workbooks.
// Browsers are inconsistent here, so the filename extension is checked first.
var acceptedContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	"application/octet-stream":                                          true,
}

// ExchangeService handles the workbook import/export exchange for GRNs
type ExchangeService struct {
	grnRepo    repository.GRNRepository
	vendorRepo repository.VendorRepository
	branchRepo repository.BranchRepository
	subcatRepo repository.AssetSubcategoryRepository
	now        func() time.Time
}

// NewExchangeService creates a new exchange service
func NewExchangeService(
	grnRepo repository.GRNRepository,
	vendorRepo repository.VendorRepository,
	branchRepo repository.BranchRepository,
	subcatRepo repository.AssetSubcategoryRepository,
) *ExchangeService {
	return &ExchangeService{
		grnRepo:    grnRepo,
		vendorRepo: vendorRepo,
		branchRepo: branchRepo,
		subcatRepo: subcatRepo,
		now:        time.Now,
	}
}

// ImportGRN decodes an uploaded workbook into a draft GRN payload without
// persisting it; the client reviews the result and saves through the normal
// create path. The decode is atomic: any violation or unresolved master-data
// name aborts the whole import.
func (s *ExchangeService) ImportGRN(ctx context.Context, r io.Reader, filename, contentType string) (*entity.GRN, error) {
	if err := checkUploadType(filename, contentType); err != nil {
		return nil, err
	}

	parsed, err := excel.ParseGRNWorkbook(r)
	if err != nil {
		return nil, importError(err)
	}

	grnDate, err := time.Parse(entity.DateLayout, parsed.Header.GRNDate)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "grn_date", Message: "must be a date in YYYY-MM-DD format"},
		})
	}

	vendor, branch, err := s.resolveHeaderNames(ctx, &parsed.Header)
	if err != nil {
		return nil, err
	}

	grn := &entity.GRN{
		GRNNumber:     parsed.Header.GRNNumber,
		GRNDate:       grnDate,
		InvoiceNumber: parsed.Header.InvoiceNumber,
		VendorID:      &vendor.ID,
		BranchID:      &branch.ID,
		Status:        enum.GRNStatusDraft,
		Vendor:        vendor,
		Branch:        branch,
	}

	for _, item := range parsed.LineItems {
		subcategory, err := s.resolveSubcategory(ctx, item.Subcategory)
		if err != nil {
			return nil, err
		}
		grn.LineItems.Append(entity.GRNLineItem{
			SubcategoryID:   &subcategory.ID,
			ItemDescription: item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			TaxPercent:      item.TaxPercent,
			Subcategory:     subcategory,
		})
	}
	grn.Recalculate()

	return grn, nil
}

// ExportGRN encodes a stored GRN into a downloadable workbook. Returns the
// workbook and the attachment filename.
func (s *ExchangeService) ExportGRN(ctx context.Context, id uuid.UUID) (*excelize.File, string, error) {
	grn, err := s.grnRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if grn == nil {
		return nil, "", apperror.NewNotFoundError("GRN")
	}

	data := &excel.ExportData{
		GRNNumber:     grn.GRNNumber,
		GRNDate:       grn.GRNDate.Format(entity.DateLayout),
		InvoiceNumber: grn.InvoiceNumber,
		Subtotal:      grn.Subtotal,
		TotalTax:      grn.TotalTax,
		GrandTotal:    grn.GrandTotal,
	}
	if grn.Vendor != nil {
		data.VendorName = grn.Vendor.Name
	}
	if grn.Branch != nil {
		data.BranchName = grn.Branch.Name
	}
	for _, item := range grn.LineItems {
		row := excel.ExportLineItem{
			ItemDescription: item.ItemDescription,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			TaxPercent:      item.TaxPercent,
			TaxableValue:    item.TaxableValue,
			TotalAmount:     item.TotalAmount,
		}
		if item.Subcategory != nil {
			row.SubcategoryName = item.Subcategory.Name
		}
		data.LineItems = append(data.LineItems, row)
	}

	f, err := excel.BuildGRNWorkbook(data)
	if err != nil {
		return nil, "", err
	}
	return f, excel.ExportFileName(grn.GRNNumber), nil
}

// Template builds the blank import template pre-filled with today's date.
func (s *ExchangeService) Template() (*excelize.File, string, error) {
	f, err := excel.BuildTemplate(s.now())
	if err != nil {
		return nil, "", err
	}
	return f, excel.TemplateFileName, nil
}

func (s *ExchangeService) resolveHeaderNames(ctx context.Context, header *excel.ParsedHeader) (*entity.Vendor, *entity.Branch, error) {
	vendor, err := s.vendorRepo.GetByName(ctx, header.Vendor)
	if err != nil {
		return nil, nil, err
	}
	if vendor == nil {
		return nil, nil, apperror.NewUnprocessableError("Unknown vendor " + strconv.Quote(header.Vendor) + "; create it before importing")
	}

	branch, err := s.branchRepo.GetByName(ctx, header.Branch)
	if err != nil {
		return nil, nil, err
	}
	if branch == nil {
		return nil, nil, apperror.NewUnprocessableError("Unknown branch " + strconv.Quote(header.Branch) + "; create it before importing")
	}

	return vendor, branch, nil
}

func (s *ExchangeService) resolveSubcategory(ctx context.Context, name string) (*entity.AssetSubcategory, error) {
	subcategory, err := s.subcatRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewUnprocessableError("Unknown subcategory " + strconv.Quote(name) + "; create it before importing")
	}
	return subcategory, nil
}

func checkUploadType(filename, contentType string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return nil
	}
	if acceptedContentTypes[contentType] {
		return nil
	}
	return apperror.ErrUnsupportedFileType
}

// importError maps decode failures onto the API error taxonomy.
func importError(err error) error {
	var rowErr *excel.RowError
	if errors.As(err, &rowErr) {
		field := rowErr.Field
		if rowErr.Item > 0 {
			field = fmt.Sprintf("line_items[%d].%s", rowErr.Item-1, rowErr.Field)
		}
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: field, Message: rowErr.Reason},
		})
	}
	if errors.Is(err, excel.ErrMalformedWorkbook) {
		return apperror.NewUnprocessableError(err.Error())
	}
	return apperror.NewUnprocessableError("The uploaded file could not be read as a workbook")
}
