package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/assetflow-api/internal/application/service"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GRNRegister handles the GRN register report
func (h *ReportHandler) GRNRegister(c *gin.Context) {
	params := grnFilterFromQuery(c)
	params.Pagination = nil // the register is unpaginated

	grns, err := h.reportService.GRNRegister(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GRN register retrieved successfully", grns)
}

// ExportGRNRegister handles downloading the GRN register as a workbook
func (h *ReportHandler) ExportGRNRegister(c *gin.Context) {
	params := grnFilterFromQuery(c)
	params.Pagination = nil

	f, filename, err := h.reportService.GRNRegisterWorkbook(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeWorkbook(c, f, filename)
}
