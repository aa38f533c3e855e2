package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMode is the payment instrument used for a one-off expense.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "CASH"
	PaymentModeCard PaymentMode = "CARD"
	PaymentModeUPI  PaymentMode = "UPI"
)

// Valid reports whether the payment mode is one of the declared values.
func (m PaymentMode) Valid() bool {
	return m == PaymentModeCash || m == PaymentModeCard || m == PaymentModeUPI
}

// Expense is a single dated spending transaction ("daily expense").
// Expenses are created and deleted, never updated in place.
type Expense struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Category   Category
	CategoryID uuid.UUID
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date       time.Time
	Note       string
	Mode       PaymentMode
}

// BeforeSave validates the expense and normalizes its date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Mode == "" {
		e.Mode = PaymentModeUPI
	}
	if !e.Mode.Valid() {
		return ErrPaymentModeInvalid
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

func (e *Expense) checkIntegrity(tx *gorm.DB) error {
	return tx.Where("user_id = ?", e.UserID).First(&Category{}, e.CategoryID).Error
}

// BeforeCreate verifies that the referenced category exists and belongs to
// the same user.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)
	return e.checkIntegrity(tx)
}

// Expenses returns all expenses of the user, newest date first, with the
// category loaded.
func Expenses(db *gorm.DB, userID uuid.UUID) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// ExpensesInRange returns the user's expenses with from <= date < until,
// oldest first, with the category loaded.
func ExpensesInRange(db *gorm.DB, userID uuid.UUID, from, until time.Time) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Preload("Category").
		Where("user_id = ?", userID).
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", from.In(time.UTC), until.In(time.UTC)).
		Order("date ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// DeleteExpense deletes the expense only when both the ID and the owner
// match. A non-existing record and a record owned by another user are
// reported identically so that record existence does not leak.
func DeleteExpense(db *gorm.DB, id, userID uuid.UUID) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&Expense{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w expense matching your query", ErrResourceNotFound)
	}

	return nil
}
