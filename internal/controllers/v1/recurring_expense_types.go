package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendbase/backend/internal/models"
)

// RecurringExpenseEditable represents all user configurable parameters
type RecurringExpenseEditable struct {
	CategoryID uuid.UUID        `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the recurring expense belongs to
	Name       string           `json:"name" example:"Rent"`                                       // Name of the obligation
	Amount     decimal.Decimal  `json:"amount" example:"1200"`                                     // Amount per period, must be positive
	Frequency  models.Frequency `json:"frequency" example:"MONTHLY"`                               // MONTHLY or YEARLY
	StartDate  time.Time        `json:"startDate" example:"2025-01-01T00:00:00Z"`                  // First day the obligation is active
	EndDate    *time.Time       `json:"endDate" example:"2025-12-31T00:00:00Z"`                    // Last day the obligation is active, open-ended if unset
	Note       string           `json:"note" example:"Apartment" default:""`                       // Free-text note
}

// model converts the editable into a model owned by the given user.
func (editable RecurringExpenseEditable) model(userID uuid.UUID) models.RecurringExpense {
	return models.RecurringExpense{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Name:       editable.Name,
		Amount:     editable.Amount,
		Frequency:  editable.Frequency,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
		Note:       editable.Note,
	}
}

type RecurringExpense struct {
	models.DefaultModel
	RecurringExpenseEditable
	Category Category `json:"category"` // The category of the recurring expense
}

func newRecurringExpense(model models.RecurringExpense) RecurringExpense {
	return RecurringExpense{
		DefaultModel: model.DefaultModel,
		RecurringExpenseEditable: RecurringExpenseEditable{
			CategoryID: model.CategoryID,
			Name:       model.Name,
			Amount:     model.Amount,
			Frequency:  model.Frequency,
			StartDate:  model.StartDate,
			EndDate:    model.EndDate,
			Note:       model.Note,
		},
		Category: newCategory(model.Category),
	}
}

type RecurringExpenseListResponse struct {
	Data  []RecurringExpense `json:"data"`                                                          // List of recurring expenses
	Error *string            `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`                                 // Data for the recurring expense
	Error *string           `json:"error" example:"the amount must be positive"` // The error, if any occurred
}
