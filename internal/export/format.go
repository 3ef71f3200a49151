// Package export renders the transactions of a user into downloadable files.
package export

import (
	"fmt"
	"strings"

	"github.com/finance-tracker/backend/internal/models"
)

// Format is a supported export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatPDF}
}

// ParseFormat parses a format token. Case and surrounding whitespace are ignored.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Formats() {
		if f == format {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: the export format '%s' is not supported, use one of csv, pdf", models.ErrValidation, s)
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (f *Format) UnmarshalParam(p string) error {
	format, err := ParseFormat(p)
	if err != nil {
		return err
	}

	*f = format
	return nil
}
