package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/expenseflow/backend/internal/controllers/v1"
	"github.com/expenseflow/backend/internal/models"
	"github.com/expenseflow/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestInvite(t *testing.T, i v1.InviteEditable, expectedStatus ...int) v1.InviteResponse {
	if i.ExpenseID == uuid.Nil {
		i.ExpenseID = createTestExpense(t, v1.ExpenseEditable{}).Data.ID
	}

	if i.Email == "" {
		i.Email = fmt.Sprintf("%s@example.com", uuid.NewString())
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.InviteEditable{i}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/invites", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.InviteCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.InviteResponse{}
}

// TestInvitesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestInvitesOptions() {
	tests := []struct {
		name   string
		id     string // path at the invites endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No invite with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Invite exists", createTestInvite(suite.T(), v1.InviteEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/invites", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInvitesCreate() {
	invite := createTestInvite(suite.T(), v1.InviteEditable{
		Email: "sam@example.com",
		Name:  "Sam Doe",
	})

	suite.Assert().Equal("sam@example.com", invite.Data.Email)
	suite.Assert().Equal(models.InviteStatusPending, invite.Data.Status)
	suite.Assert().Contains(invite.Data.Links.Expense, invite.Data.ExpenseID.String())
}

func (suite *TestSuiteStandard) TestInvitesCreateInvalidEmail() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invites", []v1.InviteEditable{
		{ExpenseID: expense.Data.ID, Email: "not-an-email"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.InviteCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if suite.Assert().Len(response.Data, 1) {
		suite.Assert().Equal(models.ErrInviteEmailInvalid.Error(), *response.Data[0].Error)
	}
}

func (suite *TestSuiteStandard) TestInvitesCreateDuplicateEmail() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	_ = createTestInvite(suite.T(), v1.InviteEditable{ExpenseID: expense.Data.ID, Email: "sam@example.com"})
	createTestInvite(suite.T(), v1.InviteEditable{ExpenseID: expense.Data.ID, Email: "sam@example.com"}, http.StatusBadRequest)

	// The same address can be invited to a different expense
	_ = createTestInvite(suite.T(), v1.InviteEditable{Email: "sam@example.com"})
}

func (suite *TestSuiteStandard) TestInvitesCreateNonexistentExpense() {
	createTestInvite(suite.T(), v1.InviteEditable{
		ExpenseID: uuid.New(),
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvitesGetFilter() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{})

	_ = createTestInvite(suite.T(), v1.InviteEditable{ExpenseID: expense.Data.ID, Email: "one@example.com"})
	_ = createTestInvite(suite.T(), v1.InviteEditable{ExpenseID: expense.Data.ID, Email: "two@example.com", Status: models.InviteStatusSent})
	_ = createTestInvite(suite.T(), v1.InviteEditable{Email: "three@example.com"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Expense", fmt.Sprintf("expense=%s", expense.Data.ID), 2},
		{"Email", "email=two@example.com", 1},
		{"Status", "status=PENDING", 2},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/invites?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InviteListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestInvitesGetSingle() {
	invite := createTestInvite(suite.T(), v1.InviteEditable{})

	r := test.Request(suite.T(), http.MethodGet, invite.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InviteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(invite.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestInvitesDelete() {
	invite := createTestInvite(suite.T(), v1.InviteEditable{})

	r := test.Request(suite.T(), http.MethodDelete, invite.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, invite.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
