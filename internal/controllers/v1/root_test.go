package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/spendbase/backend/internal/controllers/v1"
	"github.com/spendbase/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "http://example.com/v1/register", response.Links.Register)
	assert.Equal(suite.T(), "http://example.com/v1/dashboard", response.Links.Dashboard)
	assert.Equal(suite.T(), "http://example.com/v1/reports", response.Links.Reports)

	// Every link points below the v1 root
	for _, link := range []string{response.Links.Login, response.Links.Categories, response.Links.Expenses, response.Links.RecurringExpenses} {
		assert.True(suite.T(), strings.HasPrefix(link, "http://example.com/v1/"), "Link does not point below the v1 root: %s", link)
	}
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}
