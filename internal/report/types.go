package report

import (
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MonthlySummary struct {
	Month   types.Month     `json:"month" example:"2024-03"`   // Year and month of the summary
	Income  decimal.Decimal `json:"income" example:"2500.00"`  // Sum of all income
	Expense decimal.Decimal `json:"expense" example:"1800.35"` // Sum of all expenses
	Balance decimal.Decimal `json:"balance" example:"699.65"`  // Income minus expense
}

type CategorySummary struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
	CategoryName string          `json:"categoryName" example:"Food"`                               // Name of the category
	Total        decimal.Decimal `json:"total" example:"150.00"`                                    // Sum of all transactions of the category
}

type PeriodSummary struct {
	From    types.Date      `json:"from" example:"2024-01-01"` // First day of the period
	To      types.Date      `json:"to" example:"2024-03-31"`   // Last day of the period
	Income  decimal.Decimal `json:"income" example:"7500.00"`  // Sum of all income
	Expense decimal.Decimal `json:"expense" example:"5320.10"` // Sum of all expenses
	Balance decimal.Decimal `json:"balance" example:"2179.90"` // Income minus expense
}

type MonthlyTrend struct {
	Month types.Month     `json:"month" example:"2024-03"` // Year and month
	Total decimal.Decimal `json:"total" example:"100.00"`  // Sum of all transactions of the type in the month
}
