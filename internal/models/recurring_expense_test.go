package models_test

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbase/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecurringExpenseFrequencyInvalid() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	recurring := models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Name:       "Netflix",
		Amount:     decimal.NewFromFloat(649),
		Frequency:  "WEEKLY",
	}

	err := models.DB.Create(&recurring).Error
	assert.True(suite.T(), errors.Is(err, models.ErrFrequencyInvalid), "Error is not ErrFrequencyInvalid: %v", err)
}

func (suite *TestSuiteStandard) TestRecurringExpenseEndBeforeStart() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recurring := models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Name:       "Gym",
		Amount:     decimal.NewFromFloat(1000),
		Frequency:  models.FrequencyMonthly,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
	}

	err := models.DB.Create(&recurring).Error
	assert.True(suite.T(), errors.Is(err, models.ErrEndBeforeStart), "Error is not ErrEndBeforeStart: %v", err)
}

func (suite *TestSuiteStandard) TestRecurringExpenseDailyCost() {
	monthly := models.RecurringExpense{
		Amount:    decimal.NewFromInt(300),
		Frequency: models.FrequencyMonthly,
	}
	assert.True(suite.T(), monthly.DailyCost().Equal(decimal.NewFromInt(10)), "300/month is not 10/day: %s", monthly.DailyCost())

	yearly := models.RecurringExpense{
		Amount:    decimal.NewFromInt(730),
		Frequency: models.FrequencyYearly,
	}
	assert.True(suite.T(), yearly.DailyCost().Equal(decimal.NewFromInt(2)), "730/year is not 2/day: %s", yearly.DailyCost())
}

func (suite *TestSuiteStandard) TestRecurringExpenseMonthlyCost() {
	monthly := models.RecurringExpense{
		Amount:    decimal.NewFromInt(499),
		Frequency: models.FrequencyMonthly,
	}
	assert.True(suite.T(), monthly.MonthlyCost().Equal(decimal.NewFromInt(499)))

	yearly := models.RecurringExpense{
		Amount:    decimal.NewFromInt(1200),
		Frequency: models.FrequencyYearly,
	}
	assert.True(suite.T(), yearly.MonthlyCost().Equal(decimal.NewFromInt(100)), "1200/year is not 100/month: %s", yearly.MonthlyCost())
}

func (suite *TestSuiteStandard) TestRecurringExpensesOverlapping() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	// Active for all of 2025
	active := suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	// Ended before the window
	endedAt := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	_ = suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    &endedAt,
	})

	// Starts after the window
	_ = suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		StartDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	recurring, err := models.RecurringExpensesOverlapping(models.DB, user.ID, from, until)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), recurring, 1)
	assert.Equal(suite.T(), active.ID, recurring[0].ID)
}

func (suite *TestSuiteStandard) TestRecurringExpensesOverlappingBoundaries() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	// Ends exactly on the first day of the window, still counts
	endsOnFirst := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	_ = suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    &endsOnFirst,
	})

	// Starts exactly on the last day of the window, still counts
	_ = suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		StartDate:  time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
	})

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	recurring, err := models.RecurringExpensesOverlapping(models.DB, user.ID, from, until)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), recurring, 2)
}

func (suite *TestSuiteStandard) TestDeleteRecurringExpenseOtherUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	recurring := suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	err := models.DeleteRecurringExpense(models.DB, recurring.ID, other.ID)
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound), "Error is not ErrResourceNotFound: %v", err)

	err = models.DeleteRecurringExpense(models.DB, recurring.ID, user.ID)
	assert.Nil(suite.T(), err)
}
