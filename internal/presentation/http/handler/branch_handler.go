package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/application/service"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/request"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/response"
)

// BranchHandler handles branch-related HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// List handles listing branches
func (h *BranchHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	result, err := h.branchService.ListBranches(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Branches retrieved successfully", result)
}

// Create handles creating a branch
func (h *BranchHandler) Create(c *gin.Context) {
	var req request.SaveBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), &service.BranchInput{
		Name:     req.Name,
		Location: req.Location,
		Code:     req.Code,
		Active:   req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Branch created successfully", branch)
}

// Get handles getting a single branch
func (h *BranchHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	branch, err := h.branchService.GetBranch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branch retrieved successfully", branch)
}

// Update handles updating a branch
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	var req request.SaveBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), id, &service.BranchInput{
		Name:     req.Name,
		Location: req.Location,
		Code:     req.Code,
		Active:   req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branch updated successfully", branch)
}

// Delete handles deleting a branch
func (h *BranchHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
