package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendbase/backend/internal/httputil"
	"github.com/spendbase/backend/internal/models"
	"github.com/spendbase/backend/internal/reports"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)

	r.OPTIONS("/trend", OptionsDashboard)
	r.GET("/trend", GetTrend)

	r.OPTIONS("/categories", OptionsDashboard)
	r.GET("/categories", GetBreakdown)
}

type DashboardResponse struct {
	Data  *reports.DashboardStats `json:"data"`                                                          // The dashboard statistics
	Error *string                 `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type TrendResponse struct {
	Data  []reports.TrendEntry `json:"data"`                                                          // Spending per day, ascending, days without spending omitted
	Error *string              `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type BreakdownResponse struct {
	Data  []reports.BreakdownEntry `json:"data"`                                                          // Spending per category for the current month, descending by value
	Error *string                  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Dashboard statistics
// @Description	Returns the amortized daily cost of recurring expenses and today's and this month's one-off spending
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	user := currentUser(c)

	stats, err := reports.Dashboard(models.DB, user.ID, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &stats})
}

// @Summary		Spending trend
// @Description	Returns the one-off spending of the last 7 days, grouped by day. Days without spending are omitted.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	TrendResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	TrendResponse
// @Router			/v1/dashboard/trend [get]
func GetTrend(c *gin.Context) {
	user := currentUser(c)

	trend, err := reports.Trend(models.DB, user.ID, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: trend})
}

// @Summary		Category breakdown
// @Description	Returns the current month's one-off spending grouped by category, sorted by value descending
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	BreakdownResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	BreakdownResponse
// @Router			/v1/dashboard/categories [get]
func GetBreakdown(c *gin.Context) {
	user := currentUser(c)

	breakdown, err := reports.Breakdown(models.DB, user.ID, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: breakdown})
}
