package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency is the cadence of a recurring expense.
type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// Valid reports whether the frequency is one of the declared values.
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyYearly
}

var (
	daysPerMonth  = decimal.NewFromInt(30)
	daysPerYear   = decimal.NewFromInt(365)
	monthsPerYear = decimal.NewFromInt(12)
)

// RecurringExpense is an ongoing obligation with a cadence. It is not a
// ledger of individual postings; reports derive per-period contributions
// from it instead.
type RecurringExpense struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Category   Category
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency  Frequency
	StartDate  time.Time
	EndDate    *time.Time
	Note       string
}

// BeforeSave validates the recurring expense and normalizes its dates to UTC.
func (r *RecurringExpense) BeforeSave(_ *gorm.DB) error {
	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !r.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if r.StartDate.IsZero() {
		r.StartDate = time.Now().In(time.UTC)
	} else {
		r.StartDate = r.StartDate.In(time.UTC)
	}

	if r.EndDate != nil {
		end := r.EndDate.In(time.UTC)
		if end.Before(r.StartDate) {
			return ErrEndBeforeStart
		}
		r.EndDate = &end
	}

	r.Name = strings.TrimSpace(r.Name)
	r.Note = strings.TrimSpace(r.Note)

	return nil
}

// AfterFind updates the dates to use UTC as timezone, not +0000.
func (r *RecurringExpense) AfterFind(_ *gorm.DB) error {
	r.StartDate = r.StartDate.In(time.UTC)

	if r.EndDate != nil {
		end := r.EndDate.In(time.UTC)
		r.EndDate = &end
	}

	return nil
}

func (r *RecurringExpense) checkIntegrity(tx *gorm.DB) error {
	return tx.Where("user_id = ?", r.UserID).First(&Category{}, r.CategoryID).Error
}

// BeforeCreate verifies that the referenced category exists and belongs to
// the same user.
func (r *RecurringExpense) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)
	return r.checkIntegrity(tx)
}

// DailyCost is the amortized per-day burden of the recurring expense.
//
// The divisors are flat 30 and 365 day approximations. This intentionally
// ignores leap years and actual days in month.
func (r RecurringExpense) DailyCost() decimal.Decimal {
	if r.Frequency == FrequencyYearly {
		return r.Amount.Div(daysPerYear)
	}

	return r.Amount.Div(daysPerMonth)
}

// MonthlyCost is the contribution of the recurring expense to a single
// month: the full amount for MONTHLY, a twelfth for YEARLY. There is no
// pro-rating for expenses that start or end mid-month.
func (r RecurringExpense) MonthlyCost() decimal.Decimal {
	if r.Frequency == FrequencyYearly {
		return r.Amount.Div(monthsPerYear)
	}

	return r.Amount
}

// RecurringExpenses returns all recurring expenses of the user, newest
// created first, with the category loaded.
func RecurringExpenses(db *gorm.DB, userID uuid.UUID) ([]RecurringExpense, error) {
	var recurring []RecurringExpense
	err := db.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recurring).Error
	if err != nil {
		return nil, err
	}

	return recurring, nil
}

// RecurringExpensesOverlapping returns the user's recurring expenses whose
// active interval overlaps [from, until]: startDate <= until and the end
// date is either unset or >= from.
func RecurringExpensesOverlapping(db *gorm.DB, userID uuid.UUID, from, until time.Time) ([]RecurringExpense, error) {
	var recurring []RecurringExpense
	err := db.
		Preload("Category").
		Where("user_id = ?", userID).
		Where("datetime(start_date) <= datetime(?)", until.In(time.UTC)).
		Where("end_date IS NULL OR datetime(end_date) >= datetime(?)", from.In(time.UTC)).
		Find(&recurring).Error
	if err != nil {
		return nil, err
	}

	return recurring, nil
}

// DeleteRecurringExpense deletes the recurring expense only when both the ID
// and the owner match.
func DeleteRecurringExpense(db *gorm.DB, id, userID uuid.UUID) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&RecurringExpense{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w recurring expense matching your query", ErrResourceNotFound)
	}

	return nil
}
