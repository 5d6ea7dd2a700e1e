package service

import (
	"context"

	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/pkg/excel"
	"github.com/xuri/excelize/v2"
)

// ReportService builds the GRN register report
type ReportService struct {
	grnRepo repository.GRNRepository
}

// NewReportService creates a new report service
func NewReportService(grnRepo repository.GRNRepository) *ReportService {
	return &ReportService{grnRepo: grnRepo}
}

// GRNRegister returns every GRN matching the filter, newest first, without
// pagination.
func (s *ReportService) GRNRegister(ctx context.Context, params *repository.GRNFilterParams) ([]entity.GRN, error) {
	return s.grnRepo.ListAll(ctx, params)
}

// GRNRegisterWorkbook encodes the filtered register into a downloadable
// workbook. Returns the workbook and the attachment filename.
func (s *ReportService) GRNRegisterWorkbook(ctx context.Context, params *repository.GRNFilterParams) (*excelize.File, string, error) {
	grns, err := s.grnRepo.ListAll(ctx, params)
	if err != nil {
		return nil, "", err
	}

	rows := make([]excel.RegisterRow, 0, len(grns))
	for _, grn := range grns {
		row := excel.RegisterRow{
			GRNNumber:     grn.GRNNumber,
			GRNDate:       grn.GRNDate.Format(entity.DateLayout),
			InvoiceNumber: grn.InvoiceNumber,
			Status:        grn.Status.String(),
			Subtotal:      grn.Subtotal,
			TotalTax:      grn.TotalTax,
			GrandTotal:    grn.GrandTotal,
		}
		if grn.Vendor != nil {
			row.VendorName = grn.Vendor.Name
		}
		if grn.Branch != nil {
			row.BranchName = grn.Branch.Name
		}
		rows = append(rows, row)
	}

	f, err := excel.BuildRegisterWorkbook(rows)
	if err != nil {
		return nil, "", err
	}
	return f, excel.RegisterFileName, nil
}
