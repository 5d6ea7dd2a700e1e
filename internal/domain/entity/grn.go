package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nmwangi/assetflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DateLayout is the wire format for GRN dates.
const DateLayout = "2006-01-02"

// GRN represents a goods receipt note: header fields plus an ordered set of
// line items. Subtotal, TotalTax and GrandTotal are derived from the line
// items and recomputed on every mutation; they are never edited directly.
type GRN struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GRNNumber     string         `gorm:"size:100;unique;not null;column:grn_number" json:"grn_number"`
	GRNDate       time.Time      `gorm:"type:date;column:grn_date" json:"grn_date"`
	InvoiceNumber string         `gorm:"size:100" json:"invoice_number"`
	VendorID      *uuid.UUID     `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	BranchID      *uuid.UUID     `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	Status        enum.GRNStatus `gorm:"default:0" json:"status"`
	Subtotal      float64        `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TotalTax      float64        `gorm:"type:decimal(15,2);default:0" json:"total_tax"`
	GrandTotal    float64        `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor    *Vendor   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Branch    *Branch   `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	LineItems LineItems `gorm:"foreignKey:GRNID" json:"line_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new GRN
func (g *GRN) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GRN model
func (GRN) TableName() string {
	return "grns"
}

// Recalculate refreshes every derived field on the aggregate: per-row
// taxable value and total amount, then the three totals.
func (g *GRN) Recalculate() {
	g.LineItems.Recalculate()
	totals := ComputeTotals(g.LineItems)
	g.Subtotal = totals.Subtotal
	g.TotalTax = totals.TotalTax
	g.GrandTotal = totals.GrandTotal
}

// GRNLineItem represents one received item on a GRN. TaxableValue and
// TotalAmount are display caches derived from Quantity, UnitPrice and
// TaxPercent; Recalculate is the only writer.
type GRNLineItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GRNID           uuid.UUID      `gorm:"type:uuid;not null;index;column:grn_id" json:"grn_id"`
	SubcategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"subcategory_id,omitempty"`
	Position        int            `gorm:"not null" json:"position"`
	ItemDescription string         `gorm:"size:500" json:"item_description"`
	Quantity        float64        `gorm:"type:decimal(15,3);default:0" json:"quantity"`
	UnitPrice       float64        `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	TaxPercent      float64        `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxableValue    float64        `gorm:"type:decimal(15,2);default:0" json:"taxable_value"`
	TotalAmount     float64        `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Subcategory *AssetSubcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *GRNLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GRNLineItem model
func (GRNLineItem) TableName() string {
	return "grn_line_items"
}

// ComputeLine derives the taxable value and tax-inclusive total for a single
// line. Values keep full float precision; rounding happens at serialization.
func ComputeLine(quantity, unitPrice, taxPercent float64) (taxableValue, totalAmount float64) {
	taxableValue = quantity * unitPrice
	totalAmount = taxableValue + taxableValue*taxPercent/100
	return taxableValue, totalAmount
}

// Totals holds the aggregate amounts across a line-item collection
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalTax   float64 `json:"total_tax"`
	GrandTotal float64 `json:"grand_total"`
}

// ComputeTotals folds a line-item collection into its aggregate totals.
// An empty collection yields all zeros.
func ComputeTotals(items []GRNLineItem) Totals {
	var t Totals
	for _, item := range items {
		taxable := item.Quantity * item.UnitPrice
		t.Subtotal += taxable
		t.TotalTax += taxable * item.TaxPercent / 100
	}
	t.GrandTotal = t.Subtotal + t.TotalTax
	return t
}

// LineItems is an ordered collection of GRN line items
type LineItems []GRNLineItem

// Append adds a line item at the end of the collection and assigns its
// position. Derived fields are computed immediately.
func (l *LineItems) Append(item GRNLineItem) {
	item.Position = len(*l)
	item.TaxableValue, item.TotalAmount = ComputeLine(item.Quantity, item.UnitPrice, item.TaxPercent)
	*l = append(*l, item)
}

// Remove deletes the item at the given position, preserving the order of the
// remaining items. Out-of-range indexes are ignored.
func (l *LineItems) Remove(index int) {
	items := *l
	if index < 0 || index >= len(items) {
		return
	}
	items = append(items[:index], items[index+1:]...)
	for i := range items {
		items[i].Position = i
	}
	*l = items
}

// Recalculate refreshes the derived fields of every row from its editable
// fields and renumbers positions.
func (l LineItems) Recalculate() {
	for i := range l {
		l[i].Position = i
		l[i].TaxableValue, l[i].TotalAmount = ComputeLine(l[i].Quantity, l[i].UnitPrice, l[i].TaxPercent)
	}
}
