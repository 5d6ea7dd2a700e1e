package entity

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name        string
		quantity    float64
		unitPrice   float64
		taxPercent  float64
		wantTaxable float64
		wantTotal   float64
	}{
		{"standard tax", 3, 100, 18, 300, 354},
		{"zero tax", 2, 50, 0, 100, 100},
		{"ten percent", 1, 200, 10, 200, 220},
		{"zero quantity", 0, 100, 18, 0, 0},
		{"zero price", 5, 0, 18, 0, 0},
		{"fractional quantity", 2.5, 10, 5, 25, 26.25},
		{"full tax", 1, 100, 100, 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable, total := ComputeLine(tt.quantity, tt.unitPrice, tt.taxPercent)
			if !almostEqual(taxable, tt.wantTaxable) {
				t.Errorf("taxable value = %v, want %v", taxable, tt.wantTaxable)
			}
			if !almostEqual(total, tt.wantTotal) {
				t.Errorf("total amount = %v, want %v", total, tt.wantTotal)
			}
			if total < taxable {
				t.Errorf("total amount %v is less than taxable value %v", total, taxable)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	items := []GRNLineItem{
		{Quantity: 2, UnitPrice: 50, TaxPercent: 0},
		{Quantity: 1, UnitPrice: 200, TaxPercent: 10},
	}

	totals := ComputeTotals(items)
	if !almostEqual(totals.Subtotal, 300) {
		t.Errorf("subtotal = %v, want 300", totals.Subtotal)
	}
	if !almostEqual(totals.TotalTax, 20) {
		t.Errorf("total tax = %v, want 20", totals.TotalTax)
	}
	if !almostEqual(totals.GrandTotal, 320) {
		t.Errorf("grand total = %v, want 320", totals.GrandTotal)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	if totals.Subtotal != 0 || totals.TotalTax != 0 || totals.GrandTotal != 0 {
		t.Errorf("empty collection totals = %+v, want all zeros", totals)
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	items := []GRNLineItem{
		{Quantity: 3, UnitPrice: 100, TaxPercent: 18},
		{Quantity: 2, UnitPrice: 50, TaxPercent: 0},
		{Quantity: 1, UnitPrice: 200, TaxPercent: 10},
		{Quantity: 7.5, UnitPrice: 13.37, TaxPercent: 12.5},
	}
	reversed := make([]GRNLineItem, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}

	a := ComputeTotals(items)
	b := ComputeTotals(reversed)
	if !almostEqual(a.Subtotal, b.Subtotal) || !almostEqual(a.TotalTax, b.TotalTax) || !almostEqual(a.GrandTotal, b.GrandTotal) {
		t.Errorf("totals differ across permutations: %+v vs %+v", a, b)
	}
}

func TestLineItemsAppend(t *testing.T) {
	var items LineItems
	items.Append(GRNLineItem{Quantity: 3, UnitPrice: 100, TaxPercent: 18})
	items.Append(GRNLineItem{Quantity: 1, UnitPrice: 200, TaxPercent: 10})

	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Position != 0 || items[1].Position != 1 {
		t.Errorf("positions = %d, %d, want 0, 1", items[0].Position, items[1].Position)
	}
	if !almostEqual(items[0].TaxableValue, 300) || !almostEqual(items[0].TotalAmount, 354) {
		t.Errorf("derived fields not computed on append: %+v", items[0])
	}
}

func TestLineItemsRemove(t *testing.T) {
	var items LineItems
	items.Append(GRNLineItem{ItemDescription: "first"})
	items.Append(GRNLineItem{ItemDescription: "second"})
	items.Append(GRNLineItem{ItemDescription: "third"})

	items.Remove(1)

	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ItemDescription != "first" || items[1].ItemDescription != "third" {
		t.Errorf("order not preserved after remove: %q, %q", items[0].ItemDescription, items[1].ItemDescription)
	}
	if items[1].Position != 1 {
		t.Errorf("position not renumbered: %d", items[1].Position)
	}

	// Out-of-range indexes are ignored
	items.Remove(-1)
	items.Remove(5)
	if len(items) != 2 {
		t.Errorf("out-of-range remove changed the collection")
	}
}

func TestGRNRecalculate(t *testing.T) {
	grn := &GRN{
		LineItems: LineItems{
			{Quantity: 3, UnitPrice: 100, TaxPercent: 18, TaxableValue: 999, TotalAmount: 999},
			{Quantity: 2, UnitPrice: 50, TaxPercent: 0},
		},
		Subtotal:   1,
		TotalTax:   2,
		GrandTotal: 3,
	}

	grn.Recalculate()

	// Stale derived fields are overwritten from the editable fields.
	if !almostEqual(grn.LineItems[0].TaxableValue, 300) || !almostEqual(grn.LineItems[0].TotalAmount, 354) {
		t.Errorf("row derived fields = %v, %v, want 300, 354", grn.LineItems[0].TaxableValue, grn.LineItems[0].TotalAmount)
	}
	if !almostEqual(grn.Subtotal, 400) {
		t.Errorf("subtotal = %v, want 400", grn.Subtotal)
	}
	if !almostEqual(grn.TotalTax, 54) {
		t.Errorf("total tax = %v, want 54", grn.TotalTax)
	}
	if !almostEqual(grn.GrandTotal, 454) {
		t.Errorf("grand total = %v, want 454", grn.GrandTotal)
	}
}
