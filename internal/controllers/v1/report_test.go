package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportData creates transactions in March and April 2024 and returns the
// authentication headers of their owner.
//
// In March there are 2500 income, 150 for Food, 40 for Rent and 30
// without category. In April, there are 20 for Food.
func (suite *TestSuiteStandard) reportData() (map[string]string, v1.Category) {
	_, headers := suite.createTestUser("reports@example.com")
	_, otherHeaders := suite.createTestUser("other@example.com")

	food := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	rent := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Rent"})
	salary := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome})

	transactions := []v1.TransactionEditable{
		{CategoryID: &salary.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(2500), Date: date("2024-03-01")},
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(100), Date: date("2024-03-02")},
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(50), Date: date("2024-03-31")},
		{CategoryID: &rent.ID, Amount: decimal.NewFromInt(40), Date: date("2024-03-15")},
		{Amount: decimal.NewFromInt(30), Date: date("2024-03-20")},
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(20), Date: date("2024-04-01")},
	}

	for _, transaction := range transactions {
		suite.createTestTransaction(headers, transaction)
	}

	// Transactions of other users are never part of reports
	suite.createTestTransaction(otherHeaders, v1.TransactionEditable{Amount: decimal.NewFromInt(999), Date: date("2024-03-10")})

	return headers, food
}

func (suite *TestSuiteStandard) TestReportsLinks() {
	r := suite.request(http.MethodGet, "http://example.com/v1/reports", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/v1/reports/monthly-summary", response.Links.MonthlySummary)
	assert.Equal(suite.T(), "http://example.com/v1/reports/monthly-category-summary", response.Links.MonthlyCategorySummary)
	assert.Equal(suite.T(), "http://example.com/v1/reports/period-summary", response.Links.PeriodSummary)
	assert.Equal(suite.T(), "http://example.com/v1/reports/monthly-trend", response.Links.MonthlyTrend)
}

func (suite *TestSuiteStandard) TestReportsMonthlySummary() {
	headers, _ := suite.reportData()

	tests := []struct {
		month   string
		income  string
		expense string
		balance string
	}{
		{"2024-03", "2500", "220", "2280"},
		{"2024-04", "0", "20", "-20"},
		{"2023-12", "0", "0", "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/monthly-summary?month=%s", tt.month), nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MonthlySummaryResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.month, response.Data.Month.String())
			assert.True(t, decimal.RequireFromString(tt.income).Equal(response.Data.Income), "Income is %s", response.Data.Income)
			assert.True(t, decimal.RequireFromString(tt.expense).Equal(response.Data.Expense), "Expense is %s", response.Data.Expense)
			assert.True(t, decimal.RequireFromString(tt.balance).Equal(response.Data.Balance), "Balance is %s", response.Data.Balance)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsMonthlyCategorySummary() {
	headers, food := suite.reportData()

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/monthly-category-summary?month=2024-03&type=EXPENSE", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorySummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The uncategorized 30 are not included
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), food.ID, response.Data[0].CategoryID)
	assert.Equal(suite.T(), "Food", response.Data[0].CategoryName)
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(response.Data[0].Total), "Total is %s", response.Data[0].Total)
	assert.Equal(suite.T(), "Rent", response.Data[1].CategoryName)
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(response.Data[1].Total))

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/monthly-category-summary?month=2024-03&type=INCOME", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Salary", response.Data[0].CategoryName)

	r = suite.request(http.MethodGet, "http://example.com/v1/reports/monthly-category-summary?month=2023-01&type=INCOME", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestReportsPeriodSummary() {
	headers, _ := suite.reportData()

	tests := []struct {
		name    string
		query   string
		income  string
		expense string
	}{
		{"March", "startDate=2024-03-01&endDate=2024-03-31", "2500", "220"},
		{"Single day", "startDate=2024-03-31&endDate=2024-03-31", "0", "50"},
		{"Across months", "startDate=2024-03-20&endDate=2024-04-30", "0", "100"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/period-summary?%s", tt.query), nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PeriodSummaryResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, decimal.RequireFromString(tt.income).Equal(response.Data.Income), "Income is %s", response.Data.Income)
			assert.True(t, decimal.RequireFromString(tt.expense).Equal(response.Data.Expense), "Expense is %s", response.Data.Expense)
			assert.True(t, response.Data.Income.Sub(response.Data.Expense).Equal(response.Data.Balance))
		})
	}
}

func (suite *TestSuiteStandard) TestReportsMonthlyTrend() {
	headers, _ := suite.reportData()

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/monthly-trend?from=2024-02&to=2024-05&type=EXPENSE", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlyTrendResponse
	test.DecodeResponse(suite.T(), &r, &response)

	expected := []struct {
		month string
		total string
	}{
		{"2024-02", "0"},
		{"2024-03", "220"},
		{"2024-04", "20"},
		{"2024-05", "0"},
	}

	require.Len(suite.T(), response.Data, len(expected))
	for i, e := range expected {
		assert.Equal(suite.T(), e.month, response.Data[i].Month.String())
		assert.True(suite.T(), decimal.RequireFromString(e.total).Equal(response.Data[i].Total), "Total for %s is %s", e.month, response.Data[i].Total)
	}
}

func (suite *TestSuiteStandard) TestReportsBadRequests() {
	_, headers := suite.createTestUser("bad@example.com")

	tests := []struct {
		name     string
		path     string
		status   int
		errorMsg string
	}{
		{"Monthly summary without month", "monthly-summary", http.StatusBadRequest, models.ErrMonthMissing.Error()},
		{"Monthly summary with invalid month", "monthly-summary?month=2024-13", http.StatusBadRequest, ""},
		{"Category summary without type", "monthly-category-summary?month=2024-03", http.StatusBadRequest, "the type query parameter must be set"},
		{"Category summary with invalid type", "monthly-category-summary?month=2024-03&type=SAVINGS", http.StatusBadRequest, models.ErrTypeInvalid.Error()},
		{"Category summary without month", "monthly-category-summary?type=EXPENSE", http.StatusBadRequest, models.ErrMonthMissing.Error()},
		{"Period summary without dates", "period-summary", http.StatusBadRequest, models.ErrDateMissing.Error()},
		{"Period summary reversed", "period-summary?startDate=2024-03-31&endDate=2024-03-01", http.StatusBadRequest, models.ErrDateRange.Error()},
		{"Trend reversed", "monthly-trend?from=2024-05&to=2024-02&type=EXPENSE", http.StatusBadRequest, models.ErrMonthRange.Error()},
		{"Trend without type", "monthly-trend?from=2024-01&to=2024-02", http.StatusBadRequest, "the type query parameter must be set"},
		{"Trend without months", "monthly-trend?type=INCOME", http.StatusBadRequest, models.ErrMonthMissing.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s", tt.path), nil, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.errorMsg != "" {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.errorMsg)
			}
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/reports/monthly-summary?month=2024-03", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
