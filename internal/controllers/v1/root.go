package v1

import (
	"net/http"

	"github.com/expenseflow/backend/internal/httputil"
	"github.com/expenseflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Payees        string `json:"payees" example:"https://example.com/api/v1/payees"`                // Accounts that can receive expense payments
	PayoutMethods string `json:"payoutMethods" example:"https://example.com/api/v1/payout-methods"` // Saved payout methods
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // Expense drafts and submissions
	Invites       string `json:"invites" example:"https://example.com/api/v1/invites"`              // Third party payee invites
	TagRules      string `json:"tagRules" example:"https://example.com/api/v1/tag-rules"`           // Automatic tagging rules
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Payees:        url + "/v1/payees",
			PayoutMethods: url + "/v1/payout-methods",
			Expenses:      url + "/v1/expenses",
			Invites:       url + "/v1/invites",
			TagRules:      url + "/v1/tag-rules",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
