// Package export renders report documents to PDF, XLSX and CSV.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmpty is returned when a report has nothing to export.
var ErrEmpty = errors.New("nothing to export")

// Format is an export file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat defaults to PDF for an empty string.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPDF, nil
	case FormatPDF, FormatXLSX, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/pdf"
	}
}

// Cell is one table cell. Value carries the underlying number for money
// cells so spreadsheets get numbers while PDF and CSV get Text.
type Cell struct {
	Text  string
	Value *decimal.Decimal
}

// TextCell returns a cell with text only.
func TextCell(text string) Cell { return Cell{Text: text} }

// MoneyCell returns a cell showing text and carrying amount.
func MoneyCell(text string, amount decimal.Decimal) Cell {
	return Cell{Text: text, Value: &amount}
}

// Numeric reports whether the cell holds an amount.
func (c Cell) Numeric() bool { return c.Value != nil }

// Section is one table of a document. Heading, when set, is printed above
// the header row.
type Section struct {
	Heading string
	Header  []string
	Rows    [][]Cell
	Footer  [][]Cell
}

// Document is a writer-independent report layout. All writers emit rows in
// the same order.
type Document struct {
	Sheet    string
	FileName string
	Title    []string
	Sections []Section
	// Widths are column widths in spreadsheet character units.
	Widths []float64
	// Grid draws full cell borders in PDF instead of striped rows.
	Grid bool
}

// DataRows counts body rows across sections, footers excluded.
func (d *Document) DataRows() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Rows)
	}
	return n
}

// Columns is the widest row of the document.
func (d *Document) Columns() int {
	n := len(d.Widths)
	for _, s := range d.Sections {
		if len(s.Header) > n {
			n = len(s.Header)
		}
		for _, rows := range [][][]Cell{s.Rows, s.Footer} {
			for _, r := range rows {
				if len(r) > n {
					n = len(r)
				}
			}
		}
	}
	return n
}

func texts(row []Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Text
	}
	return out
}
