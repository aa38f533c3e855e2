package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendbase/backend/internal/models"
	sb_uuid "github.com/spendbase/backend/internal/uuid"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	CategoryID uuid.UUID          `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the expense belongs to
	Amount     decimal.Decimal    `json:"amount" example:"80"`                                       // Amount spent, must be positive
	Date       time.Time          `json:"date" example:"2025-07-12T00:00:00Z"`                       // Calendar day of the expense
	Note       string             `json:"note" example:"Lunch" default:""`                           // Free-text note
	Mode       models.PaymentMode `json:"mode" example:"UPI" default:"UPI"`                          // Payment mode
}

// model converts the editable into a model owned by the given user.
//
// The owner always comes from the resolved session, a client-supplied
// owner is never trusted.
func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Note:       editable.Note,
		Mode:       editable.Mode,
	}
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Category Category `json:"category"` // The category of the expense
}

func newExpense(model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Date:       model.Date,
			Note:       model.Note,
			Mode:       model.Mode,
		},
		Category: newCategory(model.Category),
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of expenses
	Error *string   `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                 // Data for the expense
	Error *string  `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

// DeleteResponse is the structured result of a delete request.
type DeleteResponse struct {
	Success bool    `json:"success" example:"true"`                                 // True when the record was deleted
	Error   *string `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	CategoryID sb_uuid.UUID `form:"category"`                  // By ID of the category
	Mode       string       `form:"mode"`                      // By payment mode
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	return models.Expense{
		CategoryID: f.CategoryID.UUID,
		Mode:       models.PaymentMode(f.Mode),
	}, nil
}
