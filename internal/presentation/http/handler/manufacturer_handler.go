package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/application/service"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/request"
	"github.com/nmwangi/assetflow-api/internal/presentation/http/dto/response"
)

// ManufacturerHandler handles manufacturer-related HTTP requests
type ManufacturerHandler struct {
	manufacturerService *service.ManufacturerService
}

// NewManufacturerHandler creates a new manufacturer handler
func NewManufacturerHandler(manufacturerService *service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{manufacturerService: manufacturerService}
}

// List handles listing manufacturers
func (h *ManufacturerHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	result, err := h.manufacturerService.ListManufacturers(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Manufacturers retrieved successfully", result)
}

// Create handles creating a manufacturer
func (h *ManufacturerHandler) Create(c *gin.Context) {
	var req request.SaveManufacturerRequest
	if !bindJSON(c, &req) {
		return
	}

	manufacturer, err := h.manufacturerService.CreateManufacturer(c.Request.Context(), &service.ManufacturerInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Manufacturer created successfully", manufacturer)
}

// Get handles getting a single manufacturer
func (h *ManufacturerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid manufacturer ID")
		return
	}

	manufacturer, err := h.manufacturerService.GetManufacturer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Manufacturer retrieved successfully", manufacturer)
}

// Update handles updating a manufacturer
func (h *ManufacturerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid manufacturer ID")
		return
	}

	var req request.SaveManufacturerRequest
	if !bindJSON(c, &req) {
		return
	}

	manufacturer, err := h.manufacturerService.UpdateManufacturer(c.Request.Context(), id, &service.ManufacturerInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Manufacturer updated successfully", manufacturer)
}

// Delete handles deleting a manufacturer
func (h *ManufacturerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid manufacturer ID")
		return
	}

	if err := h.manufacturerService.DeleteManufacturer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
