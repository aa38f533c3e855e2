package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbase/backend/internal/httputil"
)

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Register          string `json:"register" example:"https://example.com/api/v1/register"`                    // Create a new user
	Login             string `json:"login" example:"https://example.com/api/v1/login"`                          // Get a session token
	Categories        string `json:"categories" example:"https://example.com/api/v1/categories"`                // The user's categories
	Expenses          string `json:"expenses" example:"https://example.com/api/v1/expenses"`                    // One-off expenses
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/recurring-expenses"` // Recurring expenses
	Dashboard         string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`                  // Dashboard statistics
	Reports           string `json:"reports" example:"https://example.com/api/v1/reports/2025-07"`              // Monthly reports
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestHost(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Register:          url + "/register",
			Login:             url + "/login",
			Categories:        url + "/categories",
			Expenses:          url + "/expenses",
			RecurringExpenses: url + "/recurring-expenses",
			Dashboard:         url + "/dashboard",
			Reports:           url + "/reports",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
