package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendbase/backend/internal/httputil"
	"github.com/spendbase/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for one-off expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new one-off expense. The owner is always the authenticated user.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	user := currentUser(c)

	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	if editable.CategoryID == uuid.Nil {
		e := errCategoryIDParameter.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	// The owner is never taken from the request body
	expense := editable.model(user.ID)

	err = models.DB.Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	err = models.DB.Preload("Category").First(&expense, expense.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	data := newExpense(expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns the user's one-off expenses, newest date first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			mode		query	string	false	"Filter by payment mode"
// @Param			offset		query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	user := currentUser(c)

	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	q := models.DB.
		Preload("Category").
		Where("user_id = ?", user.ID).
		Order("date DESC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.Expense
	err = q.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Description	Returns a specific one-off expense of the user
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	user := currentUser(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var expense models.Expense
	err = models.DB.Preload("Category").Where("user_id = ?", user.ID).First(&expense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	data := newExpense(expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes a one-off expense. The ID and the owner must both match.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	DeleteResponse
// @Failure		400	{object}	DeleteResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	DeleteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	user := currentUser(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DeleteResponse{Error: &e})
		return
	}

	err = models.DeleteExpense(models.DB, uri.ID.UUID, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DeleteResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
