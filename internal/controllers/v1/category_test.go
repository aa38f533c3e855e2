package v1_test

import (
	"net/http"
	"sort"

	v1 "github.com/spendbase/backend/internal/controllers/v1"
	"github.com/spendbase/backend/internal/models"
	"github.com/spendbase/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetCategoriesEmpty() {
	_, token := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Listing does not seed, a user without categories gets an empty list
	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetCategoriesSorted() {
	user, token := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Zoo"})
	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Aquarium"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	sorted := sort.SliceIsSorted(response.Data, func(i, j int) bool {
		return response.Data[i].Name < response.Data[j].Name
	})
	assert.True(suite.T(), sorted, "Categories are not sorted by name")
}

func (suite *TestSuiteStandard) TestSeedCategories() {
	_, token := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories/seed", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, models.DefaultCategoryCount())

	// Seeding twice does not create duplicates
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories/seed", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, models.DefaultCategoryCount())
}

func (suite *TestSuiteStandard) TestGetCategoriesScopedToUser() {
	user, _ := suite.createTestUser(models.User{})
	_, otherToken := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerHeaders(otherToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0, "Another user's categories are visible")
}

func (suite *TestSuiteStandard) TestCategoryOptions() {
	_, token := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/categories", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "/v1/categories/seed", "", test.BearerHeaders(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", recorder.Header().Get("allow"))
}
