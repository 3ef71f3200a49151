package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	_, headers := suite.createTestUser("categories@example.com")

	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Expense", v1.CategoryEditable{Name: "Food", Type: models.TypeExpense}, http.StatusCreated, ""},
		{"Income", v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome, Description: "Monthly"}, http.StatusCreated, ""},
		{"Blank name", v1.CategoryEditable{Name: "   ", Type: models.TypeExpense}, http.StatusBadRequest, models.ErrCategoryNameBlank.Error()},
		{"Name too long", v1.CategoryEditable{Name: strings.Repeat("a", 51), Type: models.TypeExpense}, http.StatusBadRequest, models.ErrCategoryNameTooLong.Error()},
		{"Invalid type", `{ "name": "Rent", "type": "SAVINGS" }`, http.StatusBadRequest, models.ErrTypeInvalid.Error()},
		{"Missing type", `{ "name": "Rent" }`, http.StatusBadRequest, models.ErrTypeInvalid.Error()},
		{"Broken JSON", `{ "name": "Rent`, http.StatusBadRequest, ""},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/categories", tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)

			if tt.status != http.StatusCreated {
				assert.Nil(t, category.Data)
				if tt.errorMsg != "" {
					assert.Contains(t, *category.Error, tt.errorMsg)
				}
				return
			}

			assert.Nil(t, category.Error)
			assert.NotEqual(t, uuid.Nil, category.Data.ID)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), category.Data.Links.Self)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/transactions?category=%s", category.Data.ID), category.Data.Links.Transactions)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUnauthenticated() {
	r := suite.request(http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = suite.request(http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Food", Type: models.TypeExpense})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = suite.request(http.MethodGet, "http://example.com/v1/categories", nil, map[string]string{authHeader: "not-a-uuid"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	assert.Equal(suite.T(), models.ErrUnauthenticated.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	_, headers := suite.createTestUser("list@example.com")
	_, otherHeaders := suite.createTestUser("other@example.com")

	suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food", Type: models.TypeExpense})
	suite.createTestCategory(headers, v1.CategoryEditable{Name: "Fast Food", Type: models.TypeExpense})
	suite.createTestCategory(headers, v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome})
	suite.createTestCategory(otherHeaders, v1.CategoryEditable{Name: "Food", Type: models.TypeExpense})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Expense", "type=EXPENSE", 2},
		{"Income", "type=INCOME", 1},
		{"Name", "name=food", 2},
		{"Name and type", "name=food&type=INCOME", 0},
		{"No match", "name=rent", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.CategoryListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/categories?type=SAVINGS", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	_, headers := suite.createTestUser("get@example.com")
	_, otherHeaders := suite.createTestUser("other@example.com")

	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})

	r := suite.request(http.MethodGet, categoryURL(category.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Food", response.Data.Name)
	assert.Equal(suite.T(), models.TypeExpense, response.Data.Type)

	// Categories of other users do not exist for the requesting user
	r = suite.request(http.MethodGet, categoryURL(category.ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, categoryURL(uuid.New()), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/v1/categories/not-a-uuid", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	_, headers := suite.createTestUser("update@example.com")
	_, otherHeaders := suite.createTestUser("other@example.com")

	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food", Description: "Groceries"})

	// Only the description is changed
	r := suite.request(http.MethodPatch, categoryURL(category.ID), map[string]any{"description": "Restaurants"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Food", response.Data.Name)
	assert.Equal(suite.T(), "Restaurants", response.Data.Description)

	// Empty strings are set
	r = suite.request(http.MethodPatch, categoryURL(category.ID), map[string]any{"description": ""}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "", response.Data.Description)

	r = suite.request(http.MethodPatch, categoryURL(category.ID), map[string]any{"name": ""}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, categoryURL(category.ID), map[string]any{"type": "SAVINGS"}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, categoryURL(category.ID), `{ "name": 2 }`, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, categoryURL(category.ID), map[string]any{"name": "Stolen"}, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The failed updates did not change the category
	r = suite.request(http.MethodGet, categoryURL(category.ID), nil, headers)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Food", response.Data.Name)
	assert.Equal(suite.T(), models.TypeExpense, response.Data.Type)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	_, headers := suite.createTestUser("delete@example.com")
	_, otherHeaders := suite.createTestUser("other@example.com")

	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{CategoryID: &category.ID})

	r := suite.request(http.MethodDelete, categoryURL(category.ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, categoryURL(category.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, categoryURL(category.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, categoryURL(category.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The transaction is kept without category
	r = suite.request(http.MethodGet, transactionURL(transaction.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	_, headers := suite.createTestUser("dberror@example.com")
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *list.Error)
}
