// Package excel implements the GRN workbook exchange format: a single-sheet
// layout located by sentinel marker cells rather than fixed addresses, so the
// same decoder accepts both the blank input template and a previously
// exported GRN.
package excel

// Format constants shared by the encoder and decoder. The two sides must
// agree on the marker strings and the data offset; treat any change here as a
// format version bump that invalidates templates already in circulation.
const (
	HeaderMarker = "GRN HEADER INFORMATION"
	ItemsMarker  = "LINE ITEMS"

	// MarkerDataOffset is the number of rows between a marker cell and the
	// first data row of its section (one label row sits in between).
	MarkerDataOffset = 2

	// TemplateFileName is the download name for the blank input template.
	TemplateFileName = "GRN_Template.xlsx"

	// RegisterFileName is the download name for the GRN register report.
	RegisterFileName = "GRN_Report.xlsx"

	dateLayout = "2006-01-02"
)

var (
	headerLabels = []interface{}{"GRN Number", "GRN Date", "Invoice Number", "Vendor", "Branch"}

	templateItemLabels = []interface{}{"Subcategory", "Item Description", "Quantity", "Unit Price", "Tax %"}

	exportItemLabels = []interface{}{"#", "Subcategory", "Item Description", "Qty", "Unit Price", "Tax %", "Taxable Value", "Total Amount"}
)

// ExportFileName returns the download name for an exported GRN workbook.
func ExportFileName(grnNumber string) string {
	return "GRN_" + grnNumber + ".xlsx"
}
