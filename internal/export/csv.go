package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
)

// CSVRenderer renders comma separated values.
//
// The rows are followed by an empty line and the totals for income, expense
// and balance.
type CSVRenderer struct{}

func (CSVRenderer) Render(rows []Row, totals Totals) (File, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Date", "Category", "Type", "Amount"}}
	for _, row := range rows {
		records = append(records, []string{row.Date.String(), row.Category, string(row.Type), row.Amount.StringFixed(2)})
	}

	if err := w.WriteAll(records); err != nil {
		return File{}, fmt.Errorf("%w: %v", models.ErrExportFailure, err)
	}

	// The csv writer cannot write a record without fields
	buf.WriteString("\n")

	err := w.WriteAll([][]string{
		{"Income", "", "", totals.Income.StringFixed(2)},
		{"Expense", "", "", totals.Expense.StringFixed(2)},
		{"Balance", "", "", totals.Balance.StringFixed(2)},
	})
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", models.ErrExportFailure, err)
	}

	return File{
		Content:     buf.Bytes(),
		Filename:    "transactions.csv",
		ContentType: "text/csv",
	}, nil
}
