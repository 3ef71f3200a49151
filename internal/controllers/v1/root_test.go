package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := suite.request(http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Users:        "http://example.com/v1/users",
		Categories:   "http://example.com/v1/categories",
		Transactions: "http://example.com/v1/transactions",
		Reports:      "http://example.com/v1/reports",
		Export:       "http://example.com/v1/export",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	_, headers := suite.createTestUser("options@example.com")
	category := suite.createTestCategory(headers, v1.CategoryEditable{})
	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{})

	tests := []struct {
		path  string
		allow string
	}{
		{"", "OPTIONS, GET"},
		{"/users", "OPTIONS, POST"},
		{"/users/me", "OPTIONS, GET"},
		{"/categories", "OPTIONS, GET, POST"},
		{"/categories/" + category.ID.String(), "OPTIONS, GET, PATCH, DELETE"},
		{"/transactions", "OPTIONS, GET, POST"},
		{"/transactions/" + transaction.ID.String(), "OPTIONS, GET, PATCH, DELETE"},
		{"/reports", "OPTIONS, GET"},
		{"/reports/monthly-summary", "OPTIONS, GET"},
		{"/reports/monthly-category-summary", "OPTIONS, GET"},
		{"/reports/period-summary", "OPTIONS, GET"},
		{"/reports/monthly-trend", "OPTIONS, GET"},
		{"/export", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, "http://example.com/v1"+tt.path, nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailErrors() {
	_, headers := suite.createTestUser("options@example.com")
	_, otherHeaders := suite.createTestUser("other@example.com")
	category := suite.createTestCategory(headers, v1.CategoryEditable{})

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
	}{
		{"Category of other user", "/categories/" + category.ID.String(), otherHeaders, http.StatusNotFound},
		{"Unknown transaction", "/transactions/" + uuid.New().String(), headers, http.StatusNotFound},
		{"Invalid ID", "/transactions/not-a-uuid", headers, http.StatusBadRequest},
		{"Unauthenticated", "/categories/" + category.ID.String(), nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, "http://example.com/v1"+tt.path, nil, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Errors are reported with the error body
	r := suite.request(http.MethodOptions, "http://example.com/v1/transactions/"+uuid.New().String(), nil, headers)
	assert.Equal(suite.T(), "there is no transaction matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
	assert.NotEqual(suite.T(), models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
