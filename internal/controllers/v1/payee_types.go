package v1

import (
	"fmt"

	"github.com/expenseflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// PayeeEditable represents all user configurable parameters
type PayeeEditable struct {
	Name     string             `json:"name" example:"Open Streets Collective" default:""`        // Name of the payee
	Type     models.AccountType `json:"type" example:"COLLECTIVE"`                                // Account family of the payee
	LegacyID uint               `json:"legacyId" example:"31337" default:"0"`                     // Numeric ID from the previous account reference scheme, 0 when unset
	Active   bool               `json:"active" example:"true" default:"false"`                    // Does the payee manage its own budget and balance?
	Note     string             `json:"note" example:"Prefers payouts at the end of the quarter"` // Notes about the payee
}

func (editable PayeeEditable) model() models.Payee {
	return models.Payee{
		Name:     editable.Name,
		Type:     editable.Type,
		LegacyID: editable.LegacyID,
		Active:   editable.Active,
		Note:     editable.Note,
	}
}

type PayeeLinks struct {
	Self                  string `json:"self" example:"https://example.com/api/v1/payees/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                 // The payee itself
	PayoutMethods         string `json:"payoutMethods" example:"https://example.com/api/v1/payout-methods?payee=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`          // Saved payout methods of this payee
	EligiblePayoutMethods string `json:"eligiblePayoutMethods" example:"https://example.com/api/v1/payees/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/eligible-payout-methods"` // Payout methods that may be offered for this payee
	Expenses              string `json:"expenses" example:"https://example.com/api/v1/expenses?payee=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // Expenses for this payee
}

// Payee is the API representation of a payee.
type Payee struct {
	models.DefaultModel
	PayeeEditable
	Links PayeeLinks `json:"links"`
}

func newPayee(c *gin.Context, model models.Payee) Payee {
	url := c.GetString(string(models.DBContextURL))

	return Payee{
		DefaultModel: model.DefaultModel,
		PayeeEditable: PayeeEditable{
			Name:     model.Name,
			Type:     model.Type,
			LegacyID: model.LegacyID,
			Active:   model.Active,
			Note:     model.Note,
		},
		Links: PayeeLinks{
			Self:                  fmt.Sprintf("%s/v1/payees/%s", url, model.ID),
			PayoutMethods:         fmt.Sprintf("%s/v1/payout-methods?payee=%s", url, model.ID),
			EligiblePayoutMethods: fmt.Sprintf("%s/v1/payees/%s/eligible-payout-methods", url, model.ID),
			Expenses:              fmt.Sprintf("%s/v1/expenses?payee=%s", url, model.ID),
		},
	}
}

type PayeeListResponse struct {
	Data       []Payee     `json:"data"`                                                          // List of payees
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PayeeCreateResponse struct {
	Data  []PayeeResponse `json:"data"`                                                          // List of the created payees or their respective error
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PayeeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PayeeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PayeeResponse struct {
	Data  *Payee  `json:"data"`                                                          // Data for the payee
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// EligiblePayoutMethodsResponse contains the payout methods that may be
// offered for the payee. An empty list means payout method selection and
// submission must be disabled.
type EligiblePayoutMethodsResponse struct {
	Data  []PayoutMethod `json:"data"`                                                          // Eligible payout methods, synthesized account balance method first
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PayeeQueryFilter struct {
	Name     string             `form:"name" filterField:"false"`   // By name
	Type     models.AccountType `form:"type"`                       // By account family
	Active   bool               `form:"active"`                     // Does the payee manage its own balance?
	LegacyID uint               `form:"legacyId"`                   // By legacy ID
	Note     string             `form:"note" filterField:"false"`   // By note
	Search   string             `form:"search" filterField:"false"` // By string in name or note
	Offset   uint               `form:"offset" filterField:"false"` // The offset of the first payee returned. Defaults to 0.
	Limit    int                `form:"limit" filterField:"false"`  // Maximum number of payees to return. Defaults to 50.
}

func (f PayeeQueryFilter) model() (models.Payee, error) {
	return models.Payee{
		Type:     f.Type,
		Active:   f.Active,
		LegacyID: f.LegacyID,
	}, nil
}
