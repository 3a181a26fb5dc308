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

func createTestTagRule(t *testing.T, r v1.TagRuleEditable, expectedStatus ...int) v1.TagRuleResponse {
	if r.Pattern == "" {
		r.Pattern = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TagRuleEditable{r}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/tag-rules", body)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.TagRuleCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	if recorder.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TagRuleResponse{}
}

// TestTagRulesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTagRulesOptions() {
	tests := []struct {
		name   string
		id     string // path at the tag rules endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No tag rule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Tag rule exists", createTestTagRule(suite.T(), v1.TagRuleEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/tag-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTagRulesCreateDuplicatePattern() {
	_ = createTestTagRule(suite.T(), v1.TagRuleEditable{Pattern: "*catering*", Tag: "food"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tag-rules", []v1.TagRuleEditable{
		{Pattern: "*catering*", Tag: "events"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TagRuleCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if suite.Assert().Len(response.Data, 1) {
		suite.Assert().Equal(models.ErrTagRulePatternNotUnique.Error(), *response.Data[0].Error)
	}
}

func (suite *TestSuiteStandard) TestTagRulesGetFilter() {
	_ = createTestTagRule(suite.T(), v1.TagRuleEditable{Priority: 1, Pattern: "*dinner*", Tag: "food"})
	_ = createTestTagRule(suite.T(), v1.TagRuleEditable{Priority: 2, Pattern: "*catering*", Tag: "food"})
	_ = createTestTagRule(suite.T(), v1.TagRuleEditable{Priority: 3, Pattern: "*taxi*", Tag: "travel"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Tag", "tag=food", 2},
		{"Priority", "priority=3", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/tag-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TagRuleListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTagRulesUpdate() {
	rule := createTestTagRule(suite.T(), v1.TagRuleEditable{Tag: "before"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"tag": "after",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TagRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("after", response.Data.Tag)
}

func (suite *TestSuiteStandard) TestTagRulesDelete() {
	rule := createTestTagRule(suite.T(), v1.TagRuleEditable{})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
