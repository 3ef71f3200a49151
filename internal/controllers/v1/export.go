package v1

import (
	"fmt"
	"net/http"

	"github.com/finance-tracker/backend/internal/export"
	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type QueryExport struct {
	Format    export.Format `form:"format" example:"csv"`           // csv or pdf
	StartDate types.Date    `form:"startDate" example:"2024-01-01"` // Only export transactions at and after this date
	EndDate   types.Date    `form:"endDate" example:"2024-03-31"`   // Only export transactions before and at this date
}

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetExport)
}

// @Summary		Export transactions
// @Description	Exports the transactions of the authenticated user as a file, followed by the totals for income, expense and balance
// @Tags			Export
// @Produce		text/csv
// @Produce		application/pdf
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			format		query		string	true	"csv or pdf"
// @Param			startDate	query		string	false	"First day in YYYY-MM-DD format"
// @Param			endDate		query		string	false	"Last day in YYYY-MM-DD format"
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	var query QueryExport
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if query.Format == "" {
		c.JSON(status(errFormatNotSet), httpError{
			Error: errFormatNotSet.Error(),
		})
		return
	}

	var from, to *types.Date
	if !query.StartDate.IsZero() {
		from = &query.StartDate
	}

	if !query.EndDate.IsZero() {
		to = &query.EndDate
	}

	file, err := co.Exports.Export(c.Request.Context(), httputil.UserID(c), query.Format, from, to)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
