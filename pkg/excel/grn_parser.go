package excel

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedWorkbook is returned when either section marker is absent.
var ErrMalformedWorkbook = errors.New("workbook is missing the GRN header or line items section")

// RowError reports a required-field or numeric violation during import.
// Item is the 1-based line-item number (0 for header rows); Row is the
// 1-based sheet row.
type RowError struct {
	Item   int
	Row    int
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	if e.Item > 0 {
		return fmt.Sprintf("line item %d (row %d): %s %s", e.Item, e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("header (row %d): %s %s", e.Row, e.Field, e.Reason)
}

// ParsedHeader holds the five positional header fields as read from the
// sheet. Vendor and Branch are display names; resolution to identifiers is
// the caller's concern.
type ParsedHeader struct {
	GRNNumber     string
	GRNDate       string
	InvoiceNumber string
	Vendor        string
	Branch        string
}

// ParsedLineItem is one decoded line-item row.
type ParsedLineItem struct {
	Subcategory string
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxPercent  float64
	Row         int // 1-based sheet row the item was read from
}

// ParsedGRN is the result of a successful decode.
type ParsedGRN struct {
	Header    ParsedHeader
	LineItems []ParsedLineItem
}

// ParseGRNWorkbook decodes a workbook produced from either the blank
// template or a previous export. Both sections are located by marker scan;
// the first validation violation aborts the whole import.
func ParseGRNWorkbook(r io.Reader) (*ParsedGRN, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrMalformedWorkbook
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrMalformedWorkbook
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, ErrMalformedWorkbook
	}

	headerIdx := findMarker(rows, HeaderMarker)
	itemsIdx := findMarker(rows, ItemsMarker)
	if headerIdx < 0 || itemsIdx < 0 {
		return nil, ErrMalformedWorkbook
	}

	header, err := parseHeader(rows, headerIdx)
	if err != nil {
		return nil, err
	}

	items, err := parseLineItems(rows, itemsIdx)
	if err != nil {
		return nil, err
	}

	return &ParsedGRN{Header: *header, LineItems: items}, nil
}

func findMarker(rows [][]string, marker string) int {
	for i, row := range rows {
		if cell(row, 0) == marker {
			return i
		}
	}
	return -1
}

func parseHeader(rows [][]string, markerIdx int) (*ParsedHeader, error) {
	dataIdx := markerIdx + MarkerDataOffset
	var row []string
	if dataIdx < len(rows) {
		row = rows[dataIdx]
	}
	sheetRow := dataIdx + 1

	header := &ParsedHeader{
		GRNNumber:     cell(row, 0),
		GRNDate:       cell(row, 1),
		InvoiceNumber: cell(row, 2),
		Vendor:        cell(row, 3),
		Branch:        cell(row, 4),
	}

	fields := []struct {
		name  string
		value string
	}{
		{"GRN Number", header.GRNNumber},
		{"GRN Date", header.GRNDate},
		{"Invoice Number", header.InvoiceNumber},
		{"Vendor", header.Vendor},
		{"Branch", header.Branch},
	}
	for _, fld := range fields {
		if fld.value == "" {
			return nil, &RowError{Row: sheetRow, Field: fld.name, Reason: "is required"}
		}
	}
	return header, nil
}

func parseLineItems(rows [][]string, markerIdx int) ([]ParsedLineItem, error) {
	// The export table prefixes a "#" column; the template does not. The
	// label row under the marker tells us where the five data columns start.
	offset := 0
	if labelIdx := markerIdx + 1; labelIdx < len(rows) && cell(rows[labelIdx], 0) == "#" {
		offset = 1
	}

	var items []ParsedLineItem
	for i := markerIdx + MarkerDataOffset; i < len(rows); i++ {
		row := rows[i]
		if cell(row, 0) == "" {
			break
		}

		itemNo := len(items) + 1
		sheetRow := i + 1

		item := ParsedLineItem{
			Subcategory: cell(row, offset),
			Description: cell(row, offset+1),
			Row:         sheetRow,
		}
		if item.Subcategory == "" {
			return nil, &RowError{Item: itemNo, Row: sheetRow, Field: "Subcategory", Reason: "is required"}
		}
		if item.Description == "" {
			return nil, &RowError{Item: itemNo, Row: sheetRow, Field: "Item Description", Reason: "is required"}
		}

		numerics := []struct {
			name string
			raw  string
			dst  *float64
		}{
			{"Quantity", cell(row, offset+2), &item.Quantity},
			{"Unit Price", cell(row, offset+3), &item.UnitPrice},
			{"Tax %", cell(row, offset+4), &item.TaxPercent},
		}
		for _, n := range numerics {
			if n.raw == "" {
				return nil, &RowError{Item: itemNo, Row: sheetRow, Field: n.name, Reason: "is required"}
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(n.raw, ",", ""), 64)
			if err != nil {
				return nil, &RowError{Item: itemNo, Row: sheetRow, Field: n.name, Reason: "must be a number"}
			}
			*n.dst = v
		}

		items = append(items, item)
	}
	return items, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
