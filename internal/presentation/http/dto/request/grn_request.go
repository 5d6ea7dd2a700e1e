package request

import "github.com/google/uuid"

// GRNLineItemRequest represents one line item in a GRN save request.
// Derived amounts are not accepted; the server computes them.
type GRNLineItemRequest struct {
	SubcategoryID   *uuid.UUID `json:"subcategory_id"`
	ItemDescription string     `json:"item_description" binding:"omitempty,max=500"`
	Quantity        float64    `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	TaxPercent      float64    `json:"tax_percent"`
}

// SaveGRNRequest represents a GRN create/update request
type SaveGRNRequest struct {
	GRNDate       string               `json:"grn_date" binding:"omitempty,datetime=2006-01-02"`
	InvoiceNumber string               `json:"invoice_number" binding:"omitempty,max=100"`
	VendorID      *uuid.UUID           `json:"vendor_id"`
	BranchID      *uuid.UUID           `json:"branch_id"`
	Status        string               `json:"status" binding:"omitempty,oneof=draft submitted"`
	LineItems     []GRNLineItemRequest `json:"line_items" binding:"dive"`
}

// GRNFilterRequest represents GRN list filter parameters
type GRNFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	VendorID  string `form:"vendor_id"`
	BranchID  string `form:"branch_id"`
	From      string `form:"from"`
	To        string `form:"to"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
