package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spendbase/backend/internal/controllers/v1"
	"github.com/spendbase/backend/internal/models"
	"github.com/spendbase/backend/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetDashboard() {
	user, token := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	// The dashboard is computed relative to the wall clock
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(80),
		Date:       time.Now().In(time.UTC),
	})

	// 300/month -> 10/day
	_ = suite.createTestRecurringExpense(models.RecurringExpense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(300),
		Frequency:  models.FrequencyMonthly,
		StartDate:  time.Now().In(time.UTC).AddDate(-1, 0, 0),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TodaysVariable.Equal(decimal.NewFromInt(80)), "TodaysVariable is not 80: %s", response.Data.TodaysVariable)
	assert.True(suite.T(), response.Data.FixedDailyCost.Equal(decimal.NewFromInt(10)), "FixedDailyCost is not 10: %s", response.Data.FixedDailyCost)
	assert.True(suite.T(), response.Data.TotalDailySpend.Equal(decimal.NewFromInt(90)), "TotalDailySpend is not 90: %s", response.Data.TotalDailySpend)
	assert.Equal(suite.T(), 1, response.Data.RecurringCount)
}

func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	_, token := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalDailySpend.IsZero())
	assert.Equal(suite.T(), 0, response.Data.RecurringCount)
}

func (suite *TestSuiteStandard) TestGetTrend() {
	user, token := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(50),
		Date:       time.Now().In(time.UTC),
	})
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(30),
		Date:       time.Now().In(time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard/trend", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TrendResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Both expenses fall on today, so there is exactly one summed entry
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(80)), "Same-day expenses are not summed: %s", response.Data[0].Amount)
}

func (suite *TestSuiteStandard) TestGetBreakdown() {
	user, token := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries", Color: "#36a2eb"})
	movies := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Movies"})

	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: movies.ID,
		Amount:     decimal.NewFromInt(200),
		Date:       time.Now().In(time.UTC),
	})
	_ = suite.createTestExpense(models.Expense{
		UserID:     user.ID,
		CategoryID: groceries.ID,
		Amount:     decimal.NewFromInt(420),
		Date:       time.Now().In(time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard/categories", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
	assert.Equal(suite.T(), "#36a2eb", response.Data[0].Color)
	assert.Equal(suite.T(), "Movies", response.Data[1].Name)
}
