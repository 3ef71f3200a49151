package export

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Row is one exported transaction.
type Row struct {
	Date     types.Date
	Category string // Empty for transactions without category
	Type     models.TransactionType
	Amount   decimal.Decimal
}

// NewRows converts transactions to rows, keeping their order.
func NewRows(transactions []models.Transaction) []Row {
	rows := make([]Row, 0, len(transactions))
	for _, transaction := range transactions {
		row := Row{
			Date:   transaction.Date,
			Type:   transaction.Type,
			Amount: transaction.Amount,
		}

		if transaction.Category != nil {
			row.Category = transaction.Category.Name
		}

		rows = append(rows, row)
	}

	return rows
}

// Totals are the sums over all exported rows.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Accumulate computes the totals of rows in a single pass.
func Accumulate(rows []Row) Totals {
	income, expense := decimal.Zero, decimal.Zero

	for _, row := range rows {
		switch row.Type {
		case models.TypeIncome:
			income = income.Add(row.Amount)
		case models.TypeExpense:
			expense = expense.Add(row.Amount)
		}
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
