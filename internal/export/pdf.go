package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfRowHeight  = 7.0
	pdfTitleSize  = 18.0
	pdfInfoSize   = 11.0
	pdfTableSize  = 9.0
	pdfHeaderGray = 66
	pdfStripeGray = 245
)

// WritePDF renders doc as an A4 portrait PDF: title block, then one table
// per section with a dark header row. Tables are striped unless doc.Grid is
// set.
func WritePDF(w io.Writer, doc *Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, line := range doc.Title {
		size := pdfInfoSize
		style := ""
		if i == 0 {
			size, style = pdfTitleSize, "B"
		}
		pdf.SetFont(pdfFont, style, size)
		pdf.CellFormat(0, size/2+2, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := pdfWidths(pdf, doc)
	for _, section := range doc.Sections {
		if section.Heading != "" {
			pdf.SetFont(pdfFont, "B", 12)
			pdf.CellFormat(0, 8, tr(section.Heading), "", 1, "L", false, 0, "")
		}
		pdf.SetFont(pdfFont, "", pdfTableSize)

		if len(section.Header) > 0 {
			pdf.SetFillColor(pdfHeaderGray, pdfHeaderGray, pdfHeaderGray)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetFont(pdfFont, "B", pdfTableSize)
			for i, h := range section.Header {
				pdf.CellFormat(widths[i], pdfRowHeight, tr(h), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont(pdfFont, "", pdfTableSize)
		}

		for r, row := range section.Rows {
			stripe := !doc.Grid && r%2 == 1
			writePDFRow(pdf, tr, widths, row, doc.Grid, stripe)
		}
		pdf.SetFont(pdfFont, "B", pdfTableSize)
		for _, row := range section.Footer {
			writePDFRow(pdf, tr, widths, row, doc.Grid, false)
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func writePDFRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, row []Cell, grid, stripe bool) {
	border := "B"
	if grid {
		border = "1"
	}
	if stripe {
		pdf.SetFillColor(pdfStripeGray, pdfStripeGray, pdfStripeGray)
	}
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		align := "L"
		if cell.Numeric() {
			align = "R"
		}
		text := fitText(pdf, tr, cell.Text, widths[i]-2)
		pdf.CellFormat(widths[i], pdfRowHeight, text, border, 0, align, stripe, 0, "")
	}
	pdf.Ln(-1)
}

// pdfWidths scales the document's character widths to the printable width.
func pdfWidths(pdf *fpdf.Fpdf, doc *Document) []float64 {
	cols := doc.Columns()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	printable := pageW - left - right

	units := make([]float64, cols)
	total := 0.0
	for i := range units {
		units[i] = 15
		if i < len(doc.Widths) && doc.Widths[i] > 0 {
			units[i] = doc.Widths[i]
		}
		total += units[i]
	}
	out := make([]float64, cols)
	for i, u := range units {
		out[i] = printable * u / total
	}
	return out
}

// fitText translates text for the core font, cutting it with "..." when it is
// wider than width. Cutting happens on the UTF-8 text so a multi-byte
// character is never split.
func fitText(pdf *fpdf.Fpdf, tr func(string) string, text string, width float64) string {
	out := tr(text)
	if pdf.GetStringWidth(out) <= width {
		return out
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		out = tr(string(runes) + "...")
		if pdf.GetStringWidth(out) <= width {
			return out
		}
	}
	return tr("...")
}
