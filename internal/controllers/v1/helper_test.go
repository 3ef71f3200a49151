package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const authHeader = "X-User-ID"

func auth(id uuid.UUID) map[string]string {
	return map[string]string{authHeader: id.String()}
}

func date(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (suite *TestSuiteStandard) request(method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	return test.Request(suite.controller, suite.T(), method, url, body, headers...)
}

// createTestUser registers a user and returns the authentication header for it.
func (suite *TestSuiteStandard) createTestUser(email string) (uuid.UUID, map[string]string) {
	r := suite.request(http.MethodPost, "http://example.com/v1/users", v1.UserRegistration{
		Username: "Test User",
		Email:    email,
		Password: "correct horse",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)

	return user.Data.ID, auth(user.Data.ID)
}

func (suite *TestSuiteStandard) createTestCategory(headers map[string]string, editable v1.CategoryEditable) v1.Category {
	if editable.Name == "" {
		editable.Name = "Food"
	}

	if editable.Type == "" {
		editable.Type = models.TypeExpense
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/categories", editable, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)

	return *category.Data
}

func (suite *TestSuiteStandard) createTestTransaction(headers map[string]string, editable v1.TransactionEditable) v1.Transaction {
	if editable.Type == "" {
		editable.Type = models.TypeExpense
	}

	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromFloat(10)
	}

	if editable.Date.IsZero() {
		editable.Date = date("2024-03-12")
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", editable, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var transaction v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)

	return *transaction.Data
}

func transactionURL(id uuid.UUID) string {
	return fmt.Sprintf("http://example.com/v1/transactions/%s", id)
}

func categoryURL(id uuid.UUID) string {
	return fmt.Sprintf("http://example.com/v1/categories/%s", id)
}
