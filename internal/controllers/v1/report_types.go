package v1

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/finance-tracker/backend/internal/types"
)

type ReportLinks struct {
	MonthlySummary         string `json:"monthlySummary" example:"https://example.com/api/v1/reports/monthly-summary"`                  // Income, expense and balance of a month
	MonthlyCategorySummary string `json:"monthlyCategorySummary" example:"https://example.com/api/v1/reports/monthly-category-summary"` // Totals per category for a month
	PeriodSummary          string `json:"periodSummary" example:"https://example.com/api/v1/reports/period-summary"`                    // Income, expense and balance of a date range
	MonthlyTrend           string `json:"monthlyTrend" example:"https://example.com/api/v1/reports/monthly-trend"`                      // Totals per month for a range of months
}

type ReportListResponse struct {
	Links ReportLinks `json:"links"`
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}

type QueryMonthType struct {
	Month types.Month            `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
	Type  models.TransactionType `form:"type" example:"EXPENSE"`  // INCOME or EXPENSE
}

type QueryPeriod struct {
	StartDate types.Date `form:"startDate" example:"2024-01-01"` // First day of the period
	EndDate   types.Date `form:"endDate" example:"2024-03-31"`   // Last day of the period
}

type QueryTrend struct {
	From types.Month            `form:"from" example:"2024-01"` // First month
	To   types.Month            `form:"to" example:"2024-06"`   // Last month
	Type models.TransactionType `form:"type" example:"EXPENSE"` // INCOME or EXPENSE
}

type MonthlySummaryResponse struct {
	Data  *report.MonthlySummary `json:"data"`                                                       // Summary of the month
	Error *string                `json:"error" example:"the month is mandatory, use YYYY-MM format"` // The error, if any occurred
}

type CategorySummaryResponse struct {
	Data  []report.CategorySummary `json:"data"`                                                    // Totals per category
	Error *string                  `json:"error" example:"the type must be one of INCOME, EXPENSE"` // The error, if any occurred
}

type PeriodSummaryResponse struct {
	Data  *report.PeriodSummary `json:"data"`                                                 // Summary of the period
	Error *string               `json:"error" example:"the start date is after the end date"` // The error, if any occurred
}

type MonthlyTrendResponse struct {
	Data  []report.MonthlyTrend `json:"data"`                                                   // One entry for every month of the range
	Error *string               `json:"error" example:"the start month is after the end month"` // The error, if any occurred
}
