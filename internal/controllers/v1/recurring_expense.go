package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendbase/backend/internal/httputil"
	"github.com/spendbase/backend/internal/models"
)

// RegisterRecurringExpenseRoutes registers the routes for recurring expenses
// with the RouterGroup that is passed.
func RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringExpenseList)
		r.GET("", GetRecurringExpenses)
		r.POST("", CreateRecurringExpense)
	}

	// Recurring expense with ID
	{
		r.OPTIONS("/:id", OptionsRecurringExpenseDetail)
		r.GET("/:id", GetRecurringExpense)
		r.DELETE("/:id", DeleteRecurringExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [options]
func OptionsRecurringExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create recurring expense
// @Description	Creates a new recurring expense. The owner is always the authenticated user.
// @Tags			RecurringExpenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	RecurringExpenseResponse
// @Param			expense	body		RecurringExpenseEditable	true	"RecurringExpense"
// @Router			/v1/recurring-expenses [post]
func CreateRecurringExpense(c *gin.Context) {
	user := currentUser(c)

	var editable RecurringExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	if editable.Name == "" {
		e := errNameNotSet.Error()
		c.JSON(http.StatusBadRequest, RecurringExpenseResponse{Error: &e})
		return
	}

	if editable.CategoryID == uuid.Nil {
		e := errCategoryIDParameter.Error()
		c.JSON(http.StatusBadRequest, RecurringExpenseResponse{Error: &e})
		return
	}

	// The owner is never taken from the request body
	recurring := editable.model(user.ID)

	err = models.DB.Create(&recurring).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	err = models.DB.Preload("Category").First(&recurring, recurring.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	data := newRecurringExpense(recurring)
	c.JSON(http.StatusCreated, RecurringExpenseResponse{Data: &data})
}

// @Summary		Get recurring expenses
// @Description	Returns the user's recurring expenses, newest created first
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	RecurringExpenseListResponse
// @Router			/v1/recurring-expenses [get]
func GetRecurringExpenses(c *gin.Context) {
	user := currentUser(c)

	recurring, err := models.RecurringExpenses(models.DB, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{Error: &e})
		return
	}

	data := make([]RecurringExpense, 0, len(recurring))
	for _, r := range recurring {
		data = append(data, newRecurringExpense(r))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: data})
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense of the user
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	RecurringExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [get]
func GetRecurringExpense(c *gin.Context) {
	user := currentUser(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	var recurring models.RecurringExpense
	err = models.DB.Preload("Category").Where("user_id = ?", user.ID).First(&recurring, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{Error: &e})
		return
	}

	data := newRecurringExpense(recurring)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Delete recurring expense
// @Description	Deletes a recurring expense. The ID and the owner must both match.
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	DeleteResponse
// @Failure		400	{object}	DeleteResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	DeleteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [delete]
func DeleteRecurringExpense(c *gin.Context) {
	user := currentUser(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DeleteResponse{Error: &e})
		return
	}

	err = models.DeleteRecurringExpense(models.DB, uri.ID.UUID, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DeleteResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
