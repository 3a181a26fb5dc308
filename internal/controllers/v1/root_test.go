package v1_test

import (
	"net/http"

	v1 "github.com/expenseflow/backend/internal/controllers/v1"
	"github.com/expenseflow/backend/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/payees", response.Links.Payees)
	suite.Assert().Equal("http://example.com/v1/payout-methods", response.Links.PayoutMethods)
	suite.Assert().Equal("http://example.com/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("http://example.com/v1/invites", response.Links.Invites)
	suite.Assert().Equal("http://example.com/v1/tag-rules", response.Links.TagRules)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", recorder.Header().Get("allow"))
}
