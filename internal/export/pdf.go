package export

import (
	"bytes"
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/go-pdf/fpdf"
)

// DefaultFontFamily is one of the core fonts every PDF reader has.
const DefaultFontFamily = "Helvetica"

// Column widths in mm, the A4 page has 190mm between the margins
var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 35, "L"},
	{"Category", 85, "L"},
	{"Type", 30, "L"},
	{"Amount", 40, "R"},
}

// PDFRenderer renders an A4 document with a table of all rows and the totals below it.
type PDFRenderer struct {
	FontFamily string
}

func (r PDFRenderer) Render(rows []Row, totals Totals) (File, error) {
	family := r.FontFamily
	if family == "" {
		family = DefaultFontFamily
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transactions Report", true)
	pdf.SetAutoPageBreak(true, 15)

	// Core fonts use cp1252, the translator converts from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont(family, "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, column := range pdfColumns {
			pdf.CellFormat(column.width, 8, column.title, "1", 0, column.align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(family, "", 10)
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 12, "Transactions Report", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	header()
	for _, row := range rows {
		// Repeat the header on every page
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}

		values := []string{row.Date.String(), tr(row.Category), string(row.Type), row.Amount.StringFixed(2)}
		for i, column := range pdfColumns {
			pdf.CellFormat(column.width, 7, values[i], "1", 0, column.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont(family, "", 11)
	for _, line := range []string{
		fmt.Sprintf("Income: %s", totals.Income.StringFixed(2)),
		fmt.Sprintf("Expense: %s", totals.Expense.StringFixed(2)),
		fmt.Sprintf("Balance: %s", totals.Balance.StringFixed(2)),
	} {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return File{}, fmt.Errorf("%w: %v", models.ErrExportFailure, err)
	}

	return File{
		Content:     buf.Bytes(),
		Filename:    "transactions.pdf",
		ContentType: "application/pdf",
	}, nil
}
