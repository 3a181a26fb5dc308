package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/expenseflow/backend/internal/controllers/v1"
	"github.com/expenseflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{})
	_ = createTestPayoutMethod(suite.T(), v1.PayoutMethodEditable{PayeeID: payee.Data.ID})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})
	_ = createTestInvite(suite.T(), v1.InviteEditable{ExpenseID: expense.Data.ID})
	_ = createTestTagRule(suite.T(), v1.TagRuleEditable{})

	tests := []string{
		"payees",
		"payout-methods",
		"expenses",
		"invites",
		"tag-rules",
	}

	// The cleanup
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify that all resources are deleted
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/"+tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Wrong confirmation", "?confirm=yes-please-delete-my-data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
