package models_test

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbase/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseAmountNotPositive() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-3.50)} {
		expense := models.Expense{
			UserID:     user.ID,
			CategoryID: category.ID,
			Amount:     amount,
		}

		err := models.DB.Create(&expense).Error
		assert.True(suite.T(), errors.Is(err, models.ErrAmountNotPositive), "Error is not ErrAmountNotPositive: %v", err)
	}
}

func (suite *TestSuiteStandard) TestExpenseModeDefaultsToUPI() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	expense := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	assert.Equal(suite.T(), models.PaymentModeUPI, expense.Mode)
}

func (suite *TestSuiteStandard) TestExpenseModeInvalid() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	expense := models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(1),
		Mode:       "BARTER",
	}

	err := models.DB.Create(&expense).Error
	assert.True(suite.T(), errors.Is(err, models.ErrPaymentModeInvalid), "Error is not ErrPaymentModeInvalid: %v", err)
}

func (suite *TestSuiteStandard) TestExpenseDateDefaultsToNow() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	expense := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	assert.False(suite.T(), expense.Date.IsZero(), "Date is not set on creation")
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
}

func (suite *TestSuiteStandard) TestExpenseCategoryMustBelongToUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	foreign := suite.createTestCategory(models.Category{UserID: other.ID})

	expense := models.Expense{
		UserID:     user.ID,
		CategoryID: foreign.ID,
		Amount:     decimal.NewFromFloat(20),
	}

	err := models.DB.Create(&expense).Error
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound), "Error is not ErrResourceNotFound: %v", err)
}

func (suite *TestSuiteStandard) TestExpensesNewestFirst() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	newest := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
	})

	expenses, err := models.Expenses(models.DB, user.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 2)
	assert.Equal(suite.T(), newest.ID, expenses[0].ID, "Expenses are not sorted newest first")
	assert.Equal(suite.T(), category.Name, expenses[0].Category.Name, "Category is not preloaded")
}

func (suite *TestSuiteStandard) TestExpensesInRangeHalfOpen() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	inside := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC),
	})

	// Exactly at the upper bound, must be excluded
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	expenses, err := models.ExpensesInRange(models.DB, user.ID, from, until)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), inside.ID, expenses[0].ID)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	expense := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	err := models.DeleteExpense(models.DB, expense.ID, user.ID)
	assert.Nil(suite.T(), err)

	expenses, err := models.Expenses(models.DB, user.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 0)
}

func (suite *TestSuiteStandard) TestDeleteExpenseOtherUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	expense := suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	// Another user must not be able to delete the record
	err := models.DeleteExpense(models.DB, expense.ID, other.ID)
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound), "Error is not ErrResourceNotFound: %v", err)

	expenses, err := models.Expenses(models.DB, user.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 1, "Expense was deleted by another user")
}
