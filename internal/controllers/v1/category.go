package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbase/backend/internal/httputil"
	"github.com/spendbase/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)

	r.OPTIONS("/seed", OptionsCategorySeed)
	r.POST("/seed", SeedCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/seed [options]
func OptionsCategorySeed(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get categories
// @Description	Returns the user's categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	user := currentUser(c)

	categories, err := models.Categories(models.DB, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Seed default categories
// @Description	Creates all default taxonomy categories the user does not have yet. Idempotent.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories/seed [post]
func SeedCategories(c *gin.Context) {
	user := currentUser(c)

	err := models.EnsureDefaultCategories(models.DB, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	categories, err := models.Categories(models.DB, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
