package v1

import (
	"github.com/spendbase/backend/internal/models"
)

type Category struct {
	models.DefaultModel
	Name  string              `json:"name" example:"Groceries"`
	Type  models.CategoryType `json:"type" example:"VARIABLE"`
	Icon  string              `json:"icon" example:"ShoppingCart"`
	Color string              `json:"color" example:"#36a2eb"`
}

func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Type:         model.Type,
		Icon:         model.Icon,
		Color:        model.Color,
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
