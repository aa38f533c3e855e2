package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbase/backend/internal/httputil"
	"github.com/spendbase/backend/internal/models"
	"github.com/spendbase/backend/internal/reports"
	"github.com/spendbase/backend/internal/types"
)

// RegisterReportRoutes registers the routes for monthly reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonthlyReport)
	r.GET("/:month", GetMonthlyReport)
}

type MonthlyReportResponse struct {
	Data  *reports.MonthlyReport `json:"data"`                                             // The monthly report
	Error *string                `json:"error" example:"parsing time \"13\" as \"2006-01\": cannot parse"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Param			month	path	string	true	"Year and month in YYYY-MM format"
// @Router			/v1/reports/{month} [options]
func OptionsMonthlyReport(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, err := types.ParseMonth(uri.Month); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Returns the total spend and the consolidated category buckets for one calendar month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyReportResponse
// @Failure		400		{object}	MonthlyReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	MonthlyReportResponse
// @Param			month	path		string	true	"Year and month in YYYY-MM format"
// @Router			/v1/reports/{month} [get]
func GetMonthlyReport(c *gin.Context) {
	user := currentUser(c)

	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyReportResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &e})
		return
	}

	report, err := reports.ForMonth(models.DB, user.ID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyReportResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: &report})
}
