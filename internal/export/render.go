package export

import (
	"bytes"
	"fmt"
)

// File is a rendered export ready to be served as an attachment.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

// Render writes doc in format and names the file after the document.
func Render(doc *Document, format Format) (*File, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPDF:
		err = WritePDF(&buf, doc)
	case FormatXLSX:
		err = WriteXLSX(&buf, doc)
	case FormatCSV:
		err = WriteCSV(&buf, doc)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        doc.FileName + "." + string(format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
		Rows:        doc.DataRows(),
	}, nil
}
