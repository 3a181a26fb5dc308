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

func createTestPayee(t *testing.T, p v1.PayeeEditable, expectedStatus ...int) v1.PayeeResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if p.Type == "" {
		p.Type = models.AccountTypeIndividual
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PayeeEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/payees", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.PayeeCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.PayeeResponse{}
}

// TestPayeesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestPayeesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestPayee(t, v1.PayeeEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/payees", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.PayeeListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestPayeesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestPayeesOptions() {
	tests := []struct {
		name   string
		id     string // path at the payees endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No payee with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Payee exists", createTestPayee(suite.T(), v1.PayeeEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/payees", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPayeesCreate() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{
		Name:   "Open Streets Collective",
		Type:   models.AccountTypeCollective,
		Active: true,
	})

	suite.Assert().Equal("Open Streets Collective", payee.Data.Name)
	suite.Assert().Equal(models.AccountTypeCollective, payee.Data.Type)
	suite.Assert().True(payee.Data.Active)
	suite.Assert().NotEqual(uuid.Nil, payee.Data.ID)
}

func (suite *TestSuiteStandard) TestPayeesCreateInvalidType() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payees", []v1.PayeeEditable{
		{Name: "Broken", Type: "SYNDICATE"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.PayeeCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if suite.Assert().Len(response.Data, 1) {
		suite.Assert().Equal(models.ErrAccountTypeInvalid.Error(), *response.Data[0].Error)
	}
}

func (suite *TestSuiteStandard) TestPayeesCreateDuplicateName() {
	_ = createTestPayee(suite.T(), v1.PayeeEditable{Name: "Twice"})
	createTestPayee(suite.T(), v1.PayeeEditable{Name: "Twice"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPayeesGetFilter() {
	_ = createTestPayee(suite.T(), v1.PayeeEditable{Name: "Individual One", Type: models.AccountTypeIndividual})
	_ = createTestPayee(suite.T(), v1.PayeeEditable{Name: "Individual Two", Type: models.AccountTypeIndividual, Active: true})
	_ = createTestPayee(suite.T(), v1.PayeeEditable{Name: "A Collective", Type: models.AccountTypeCollective, Active: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Type match", "type=INDIVIDUAL", 2},
		{"Active", "active=true", 2},
		{"Active false", "active=false", 1},
		{"Name substring", "name=Individual", 2},
		{"Search", "search=collective", 1},
		{"No results", "name=DoesNotExist", 0},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/payees?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PayeeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestPayeesGetSingle() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{})

	r := test.Request(suite.T(), http.MethodGet, payee.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PayeeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(payee.Data.ID, response.Data.ID)
	suite.Assert().Contains(response.Data.Links.EligiblePayoutMethods, "/eligible-payout-methods")
}

func (suite *TestSuiteStandard) TestPayeesUpdate() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, payee.Data.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PayeeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("After", response.Data.Name)
}

func (suite *TestSuiteStandard) TestPayeesDelete() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{})

	r := test.Request(suite.T(), http.MethodDelete, payee.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, payee.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEligiblePayoutMethodsSynthesized() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{
		Name:   "Active individual",
		Type:   models.AccountTypeIndividual,
		Active: true,
	})

	_ = createTestPayoutMethod(suite.T(), v1.PayoutMethodEditable{
		PayeeID: payee.Data.ID,
		Type:    models.PayoutMethodTypeBankAccount,
		Saved:   true,
	})

	r := test.Request(suite.T(), http.MethodGet, payee.Data.Links.EligiblePayoutMethods, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EligiblePayoutMethodsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !suite.Assert().Len(response.Data, 2) {
		return
	}

	// The synthesized account balance method comes first and has no
	// persisted ID, so it carries no self link either
	suite.Assert().Equal(models.PayoutMethodTypeAccountBalance, response.Data[0].Type)
	suite.Assert().Equal(uuid.Nil, response.Data[0].ID)
	suite.Assert().Empty(response.Data[0].Links.Self)

	suite.Assert().Equal(models.PayoutMethodTypeBankAccount, response.Data[1].Type)
	suite.Assert().NotEmpty(response.Data[1].Links.Self)
}

func (suite *TestSuiteStandard) TestEligiblePayoutMethodsCollective() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{
		Name:   "A collective",
		Type:   models.AccountTypeCollective,
		Active: true,
	})

	_ = createTestPayoutMethod(suite.T(), v1.PayoutMethodEditable{
		PayeeID: payee.Data.ID,
		Type:    models.PayoutMethodTypeBankAccount,
		Saved:   true,
	})

	r := test.Request(suite.T(), http.MethodGet, payee.Data.Links.EligiblePayoutMethods, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EligiblePayoutMethodsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !suite.Assert().Len(response.Data, 1) {
		return
	}
	suite.Assert().Equal(models.PayoutMethodTypeAccountBalance, response.Data[0].Type)
}

func (suite *TestSuiteStandard) TestEligiblePayoutMethodsEmpty() {
	payee := createTestPayee(suite.T(), v1.PayeeEditable{
		Name: "Inactive collective",
		Type: models.AccountTypeCollective,
	})

	r := test.Request(suite.T(), http.MethodGet, payee.Data.Links.EligiblePayoutMethods, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EligiblePayoutMethodsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestEligiblePayoutMethodsNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/payees/%s/eligible-payout-methods", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
