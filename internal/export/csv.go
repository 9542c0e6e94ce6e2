package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV renders doc as CRLF-delimited CSV. Title lines come first as
// "# " comment lines, then each section's heading, header, rows and footer.
func WriteCSV(w io.Writer, doc *Document) error {
	buf := bufio.NewWriter(w)
	cw := csv.NewWriter(buf)
	cw.UseCRLF = true

	for _, line := range doc.Title {
		if _, err := buf.WriteString("# " + line + "\r\n"); err != nil {
			return fmt.Errorf("write csv metadata: %w", err)
		}
	}

	for i, section := range doc.Sections {
		if i > 0 {
			if err := cw.Write([]string{""}); err != nil {
				return err
			}
		}
		if section.Heading != "" {
			if err := cw.Write([]string{section.Heading}); err != nil {
				return err
			}
		}
		if len(section.Header) > 0 {
			if err := cw.Write(section.Header); err != nil {
				return err
			}
		}
		for _, rows := range [][][]Cell{section.Rows, section.Footer} {
			for _, r := range rows {
				if err := cw.Write(texts(r)); err != nil {
					return fmt.Errorf("write csv row: %w", err)
				}
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return buf.Flush()
}
