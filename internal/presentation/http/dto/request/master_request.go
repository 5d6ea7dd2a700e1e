package request

import "github.com/google/uuid"

// SaveVendorRequest represents a vendor create/update request
type SaveVendorRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	GSTNumber     *string `json:"gst_number" binding:"omitempty,max=50"`
}

// SaveBranchRequest represents a branch create/update request
type SaveBranchRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Location *string `json:"location" binding:"omitempty,max=255"`
	Code     *string `json:"code" binding:"omitempty,max=50"`
	Active   *bool   `json:"active"`
}

// SaveCategoryRequest represents an asset category create/update request
type SaveCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
}

// SaveSubcategoryRequest represents an asset subcategory create/update request
type SaveSubcategoryRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=2,max=255"`
	Description *string   `json:"description"`
	Active      *bool     `json:"active"`
}

// SaveManufacturerRequest represents a manufacturer create/update request
type SaveManufacturerRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
}

// MasterFilterRequest represents list filter parameters for master data
type MasterFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
