package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetReports)

	r.OPTIONS("/monthly-summary", httputil.OptionsGet)
	r.GET("/monthly-summary", co.GetMonthlySummary)

	r.OPTIONS("/monthly-category-summary", httputil.OptionsGet)
	r.GET("/monthly-category-summary", co.GetMonthlyCategorySummary)

	r.OPTIONS("/period-summary", httputil.OptionsGet)
	r.GET("/period-summary", co.GetPeriodSummary)

	r.OPTIONS("/monthly-trend", httputil.OptionsGet)
	r.GET("/monthly-trend", co.GetMonthlyTrend)
}

// @Summary		List reports
// @Description	Returns links to all reports
// @Tags			Reports
// @Success		200	{object}	ReportListResponse
// @Router			/v1/reports [get]
func GetReports(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL)) + "/v1/reports"

	c.JSON(http.StatusOK, ReportListResponse{
		Links: ReportLinks{
			MonthlySummary:         url + "/monthly-summary",
			MonthlyCategorySummary: url + "/monthly-category-summary",
			PeriodSummary:          url + "/period-summary",
			MonthlyTrend:           url + "/monthly-trend",
		},
	})
}

// @Summary		Monthly summary
// @Description	Returns income, expense and balance of the authenticated user for a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlySummaryResponse
// @Failure		400		{object}	MonthlySummaryResponse
// @Failure		401		{object}	MonthlySummaryResponse
// @Failure		500		{object}	MonthlySummaryResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/monthly-summary [get]
func (co Controller) GetMonthlySummary(c *gin.Context) {
	var query QueryMonth
	err := httputil.BindQuery(c, &query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := co.Reports.MonthlySummary(c.Request.Context(), httputil.UserID(c), query.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlySummaryResponse{Data: &summary})
}

// @Summary		Monthly category summary
// @Description	Returns the totals per category of the authenticated user for a month and type. Transactions without category are not included.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CategorySummaryResponse
// @Failure		400		{object}	CategorySummaryResponse
// @Failure		401		{object}	CategorySummaryResponse
// @Failure		500		{object}	CategorySummaryResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			type	query		string	true	"INCOME or EXPENSE"
// @Router			/v1/reports/monthly-category-summary [get]
func (co Controller) GetMonthlyCategorySummary(c *gin.Context) {
	var query QueryMonthType
	err := httputil.BindQuery(c, &query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySummaryResponse{
			Error: &s,
		})
		return
	}

	if query.Type == "" {
		s := errTypeNotSet.Error()
		c.JSON(status(errTypeNotSet), CategorySummaryResponse{
			Error: &s,
		})
		return
	}

	summaries, err := co.Reports.CategorySummary(c.Request.Context(), httputil.UserID(c), query.Month, query.Type)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategorySummaryResponse{Data: summaries})
}

// @Summary		Period summary
// @Description	Returns income, expense and balance of the authenticated user for all days from startDate to endDate
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	PeriodSummaryResponse
// @Failure		400			{object}	PeriodSummaryResponse
// @Failure		401			{object}	PeriodSummaryResponse
// @Failure		500			{object}	PeriodSummaryResponse
// @Param			startDate	query		string	true	"First day in YYYY-MM-DD format"
// @Param			endDate		query		string	true	"Last day in YYYY-MM-DD format"
// @Router			/v1/reports/period-summary [get]
func (co Controller) GetPeriodSummary(c *gin.Context) {
	var query QueryPeriod
	err := httputil.BindQuery(c, &query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodSummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := co.Reports.PeriodSummary(c.Request.Context(), httputil.UserID(c), query.StartDate, query.EndDate)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PeriodSummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PeriodSummaryResponse{Data: &summary})
}

// @Summary		Monthly trend
// @Description	Returns the totals of a type for every month from from to to. Months without transactions have a total of 0.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyTrendResponse
// @Failure		400		{object}	MonthlyTrendResponse
// @Failure		401		{object}	MonthlyTrendResponse
// @Failure		500		{object}	MonthlyTrendResponse
// @Param			from	query		string	true	"First month in YYYY-MM format"
// @Param			to		query		string	true	"Last month in YYYY-MM format"
// @Param			type	query		string	true	"INCOME or EXPENSE"
// @Router			/v1/reports/monthly-trend [get]
func (co Controller) GetMonthlyTrend(c *gin.Context) {
	var query QueryTrend
	err := httputil.BindQuery(c, &query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyTrendResponse{
			Error: &s,
		})
		return
	}

	if query.Type == "" {
		s := errTypeNotSet.Error()
		c.JSON(status(errTypeNotSet), MonthlyTrendResponse{
			Error: &s,
		})
		return
	}

	trend, err := co.Reports.MonthlyTrend(c.Request.Context(), httputil.UserID(c), query.From, query.To, query.Type)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyTrendResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyTrendResponse{Data: trend})
}
