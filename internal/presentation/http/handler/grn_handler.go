package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/application/service"
	"github.com/nmwangi/assetflow-api/internal/domain/entity"
	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"github.com/nmwangi/assetflow-api/internal/domain/repository"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/request"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/response"
	"github.com/xuri/excelize/v2"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GRNHandler handles GRN-related HTTP requests, including the workbook
// import/export exchange
type GRNHandler struct {
	grnService      *service.GRNService
	exchangeService *service.ExchangeService
	maxUploadSize   int64
}

// NewGRNHandler creates a new GRN handler
func NewGRNHandler(grnService *service.GRNService, exchangeService *service.ExchangeService, maxUploadSize int64) *GRNHandler {
	return &GRNHandler{
		grnService:      grnService,
		exchangeService: exchangeService,
		maxUploadSize:   maxUploadSize,
	}
}

// List handles listing GRNs with filtering
func (h *GRNHandler) List(c *gin.Context) {
	params := grnFilterFromQuery(c)
	result, err := h.grnService.ListGRNs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "GRNs retrieved successfully", result)
}

// Create handles creating a GRN
func (h *GRNHandler) Create(c *gin.Context) {
	var req request.SaveGRNRequest
	if !bindJSON(c, &req) {
		return
	}

	grn, err := h.grnService.CreateGRN(c.Request.Context(), saveInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "GRN created successfully", grn)
}

// Get handles getting a single GRN with its line items
func (h *GRNHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid GRN ID")
		return
	}

	grn, err := h.grnService.GetGRN(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GRN retrieved successfully", grn)
}

// Update handles updating a GRN
func (h *GRNHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid GRN ID")
		return
	}

	var req request.SaveGRNRequest
	if !bindJSON(c, &req) {
		return
	}

	grn, err := h.grnService.UpdateGRN(c.Request.Context(), id, saveInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GRN updated successfully", grn)
}

// Delete handles deleting a GRN
func (h *GRNHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid GRN ID")
		return
	}

	if err := h.grnService.DeleteGRN(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Import handles a workbook upload and returns the decoded draft GRN payload
func (h *GRNHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A workbook file is required in the \"file\" form field")
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		response.ErrorWithCode(c, 413, "Uploaded file is too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	grn, err := h.exchangeService.ImportGRN(c.Request.Context(), f, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Workbook imported successfully", grn)
}

// Export handles downloading a GRN as a workbook
func (h *GRNHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid GRN ID")
		return
	}

	f, filename, err := h.exchangeService.ExportGRN(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWorkbook(c, f, filename)
}

// Template handles downloading the blank import template
func (h *GRNHandler) Template(c *gin.Context) {
	f, filename, err := h.exchangeService.Template()
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWorkbook(c, f, filename)
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", workbookContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		response.Error(c, err)
	}
}

func saveInputFromRequest(req *request.SaveGRNRequest) *service.SaveGRNInput {
	status := enum.GRNStatusDraft
	if parsed, ok := enum.ParseGRNStatus(req.Status); ok {
		status = parsed
	}

	input := &service.SaveGRNInput{
		GRNDate:       req.GRNDate,
		InvoiceNumber: req.InvoiceNumber,
		VendorID:      req.VendorID,
		BranchID:      req.BranchID,
		Status:        status,
	}
	for _, item := range req.LineItems {
		input.LineItems = append(input.LineItems, service.GRNLineItemInput{
			SubcategoryID:   item.SubcategoryID,
			ItemDescription: item.ItemDescription,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			TaxPercent:      item.TaxPercent,
		})
	}
	return input
}

// grnFilterFromQuery builds GRN filter params from the query string.
// Unparseable values are ignored rather than rejected.
func grnFilterFromQuery(c *gin.Context) *repository.GRNFilterParams {
	params := &repository.GRNFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := enum.ParseGRNStatus(statusStr); ok {
			params.Status = &status
		}
	}
	if vendorIDStr := c.Query("vendor_id"); vendorIDStr != "" {
		if vendorID, err := uuid.Parse(vendorIDStr); err == nil {
			params.VendorID = &vendorID
		}
	}
	if branchIDStr := c.Query("branch_id"); branchIDStr != "" {
		if branchID, err := uuid.Parse(branchIDStr); err == nil {
			params.BranchID = &branchID
		}
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse(entity.DateLayout, fromStr); err == nil {
			params.From = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse(entity.DateLayout, toStr); err == nil {
			params.To = &to
		}
	}

	return params
}
