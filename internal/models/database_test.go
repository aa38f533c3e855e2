package models_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spendbase/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/this/path/does/not/exist/database.db")
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestQueryCallbackNotFound() {
	err := models.DB.First(&models.Category{}, uuid.New()).Error
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound))
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())

	err = models.DB.First(&models.Expense{}, uuid.New()).Error
	assert.Equal(suite.T(), "there is no expense matching your query", err.Error())

	err = models.DB.First(&models.RecurringExpense{}, uuid.New()).Error
	assert.Equal(suite.T(), "there is no recurring expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralCallbackClosedDB() {
	suite.CloseDB()

	err := models.DB.First(&models.User{}, uuid.New()).Error
	assert.True(suite.T(), errors.Is(err, models.ErrGeneral), "Error is not ErrGeneral: %v", err)
}
