package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX renders doc as a single-sheet workbook: title rows, a spacer,
// then each section's heading, header, data rows and footer rows. Money
// cells are written as numbers.
func WriteXLSX(w io.Writer, doc *Document) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheet := doc.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	row := 1
	put := func(values []interface{}, style int) error {
		if len(values) == 0 {
			row++
			return nil
		}
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return err
		}
		if style != 0 {
			end, err := excelize.CoordinatesToCellName(len(values), row)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, start, end, style); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for i, line := range doc.Title {
		style := 0
		if i == 0 {
			style = bold
		}
		if err := put([]interface{}{line}, style); err != nil {
			return fmt.Errorf("write title: %w", err)
		}
	}
	row++

	for _, section := range doc.Sections {
		if section.Heading != "" {
			if err := put([]interface{}{section.Heading}, bold); err != nil {
				return fmt.Errorf("write heading: %w", err)
			}
		}
		if len(section.Header) > 0 {
			header := make([]interface{}, len(section.Header))
			for i, h := range section.Header {
				header[i] = h
			}
			if err := put(header, bold); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
		}
		for _, r := range section.Rows {
			if err := put(xlsxValues(r), 0); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		for _, r := range section.Footer {
			if err := put(xlsxValues(r), bold); err != nil {
				return fmt.Errorf("write footer: %w", err)
			}
		}
		if len(doc.Sections) > 1 {
			row++
		}
	}

	for i, width := range doc.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func xlsxValues(row []Cell) []interface{} {
	out := make([]interface{}, len(row))
	for i, c := range row {
		if c.Value != nil {
			out[i] = c.Value.InexactFloat64()
			continue
		}
		out[i] = c.Text
	}
	return out
}
