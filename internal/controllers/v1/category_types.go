package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string                 `json:"name" example:"Groceries" default:""`              // Name of the category
	Type        models.TransactionType `json:"type" example:"EXPENSE"`                           // Type of the transactions in this category
	Description string                 `json:"description" example:"Food and drinks" default:""` // Description of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Type:        editable.Type,
		Description: editable.Description,
	}
}

// patch returns a function that sets the fields of a category
// that are contained in fields.
func (editable CategoryEditable) patch(fields []string) func(*models.Category) {
	return func(category *models.Category) {
		if slices.Contains(fields, "Name") {
			category.Name = editable.Name
		}

		if slices.Contains(fields, "Type") {
			category.Type = editable.Type
		}

		if slices.Contains(fields, "Description") {
			category.Description = editable.Description
		}
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(httputil.ContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Type:        model.Type,
			Description: model.Description,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Type models.TransactionType `form:"type"` // By type
	Name string                 `form:"name"` // By text contained in the name
}

func (f CategoryQueryFilter) model() ledger.CategoryFilter {
	return ledger.CategoryFilter{
		Type: f.Type,
		Name: f.Name,
	}
}
