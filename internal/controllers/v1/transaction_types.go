package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/finance-tracker/backend/internal/types"
	ez_uuid "github.com/finance-tracker/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	CategoryID  *uuid.UUID             `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category, null for none
	Type        models.TransactionType `json:"type" example:"EXPENSE"`                                    // Income or expense
	Amount      decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.01"`                     // The amount, positive with at most two decimal places
	Date        types.Date             `json:"date" example:"2024-03-12"`                                 // Date of the transaction. Must not be in the future
	Description string                 `json:"description" example:"Weekly groceries" default:""`         // A description of the transaction
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

// patch returns a function that sets the fields of a transaction
// that are contained in fields.
func (editable TransactionEditable) patch(fields []string) func(*models.Transaction) {
	return func(transaction *models.Transaction) {
		if slices.Contains(fields, "CategoryID") {
			transaction.CategoryID = editable.CategoryID
		}

		if slices.Contains(fields, "Type") {
			transaction.Type = editable.Type
		}

		if slices.Contains(fields, "Amount") {
			transaction.Amount = editable.Amount
		}

		if slices.Contains(fields, "Date") {
			transaction.Date = editable.Date
		}

		if slices.Contains(fields, "Description") {
			transaction.Description = editable.Description
		}
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(httputil.ContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Amount:      model.Amount,
			Date:        model.Date,
			Description: model.Description,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type        models.TransactionType `form:"type"`        // By type
	CategoryID  ez_uuid.UUID           `form:"category"`    // By ID of the category
	FromDate    types.Date             `form:"fromDate"`    // Transactions at and after this date
	UntilDate   types.Date             `form:"untilDate"`   // Transactions before and at this date
	Description string                 `form:"description"` // Glob pattern for the description
}

func (f TransactionQueryFilter) model() service.TransactionFilter {
	filter := service.TransactionFilter{
		TransactionFilter: ledger.TransactionFilter{
			Type:       f.Type,
			CategoryID: f.CategoryID.Ptr(),
		},
		Description: f.Description,
	}

	if !f.FromDate.IsZero() {
		from := f.FromDate
		filter.From = &from
	}

	if !f.UntilDate.IsZero() {
		until := f.UntilDate
		filter.To = &until
	}

	return filter
}
