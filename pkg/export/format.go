package export

import (
	"strings"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

// Format names a rendered document type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat resolves a user-supplied format, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", appErrors.Clonef(appErrors.ErrValidation, "unsupported export format %q; use csv or pdf", raw)
	}
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Dataset defines tabular export content. Details are rendered as labelled
// lines above the table in document formats.
type Dataset struct {
	Title   string
	Details []Detail
	Headers []string
	Rows    []map[string]string
}

// Detail is a labelled line of document metadata.
type Detail struct {
	Label string
	Value string
}
