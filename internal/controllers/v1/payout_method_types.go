package v1

import (
	"fmt"

	"github.com/expenseflow/backend/internal/models"
	ef_uuid "github.com/expenseflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayoutMethodEditable represents all user configurable parameters
type PayoutMethodEditable struct {
	PayeeID uuid.UUID               `json:"payeeId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`        // ID of the payee the method belongs to
	Name    string                  `json:"name" example:"Business account" default:""`                    // Name of the payout method
	Type    models.PayoutMethodType `json:"type" example:"BANK_ACCOUNT"`                                   // Mechanism used to disburse funds
	Saved   bool                    `json:"isSaved" example:"true" default:"false"`                        // Is the method persisted for reuse?
	Data    models.PayoutMethodData `json:"data" swaggertype:"object,string" example:"accountNumber:1234"` // Method specific fields, e.g. bank routing details
}

func (editable PayoutMethodEditable) model() models.PayoutMethod {
	return models.PayoutMethod{
		PayeeID: editable.PayeeID,
		Name:    editable.Name,
		Type:    editable.Type,
		Saved:   editable.Saved,
		Data:    editable.Data,
	}
}

type PayoutMethodLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/payout-methods/d430d7c3-d14c-4712-9336-ee56965a6673"` // The payout method itself. Empty for methods that are not persisted.
	Payee string `json:"payee" example:"https://example.com/api/v1/payees/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`        // The payee the method belongs to
}

// PayoutMethod is the API representation of a payout method.
type PayoutMethod struct {
	models.DefaultModel
	PayoutMethodEditable
	Links PayoutMethodLinks `json:"links"`
}

func newPayoutMethod(c *gin.Context, model models.PayoutMethod) PayoutMethod {
	url := c.GetString(string(models.DBContextURL))

	method := PayoutMethod{
		DefaultModel: model.DefaultModel,
		PayoutMethodEditable: PayoutMethodEditable{
			PayeeID: model.PayeeID,
			Name:    model.Name,
			Type:    model.Type,
			Saved:   model.Saved,
			Data:    model.Data,
		},
		Links: PayoutMethodLinks{
			Payee: fmt.Sprintf("%s/v1/payees/%s", url, model.PayeeID),
		},
	}

	// Synthesized methods are not persisted, they have no link yet
	if model.ID != uuid.Nil {
		method.Links.Self = fmt.Sprintf("%s/v1/payout-methods/%s", url, model.ID)
	}

	return method
}

type PayoutMethodListResponse struct {
	Data       []PayoutMethod `json:"data"`                                                          // List of payout methods
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type PayoutMethodCreateResponse struct {
	Data  []PayoutMethodResponse `json:"data"`                                                          // List of the created payout methods or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PayoutMethodCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PayoutMethodResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PayoutMethodResponse struct {
	Data  *PayoutMethod `json:"data"`                                                          // Data for the payout method
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PayoutMethodQueryFilter struct {
	PayeeID ef_uuid.UUID            `form:"payee"`                      // By ID of the payee
	Name    string                  `form:"name" filterField:"false"`   // By name
	Type    models.PayoutMethodType `form:"type"`                       // By mechanism
	Saved   bool                    `form:"isSaved"`                    // Is the method persisted for reuse?
	Search  string                  `form:"search" filterField:"false"` // By string in name
	Offset  uint                    `form:"offset" filterField:"false"` // The offset of the first payout method returned. Defaults to 0.
	Limit   int                     `form:"limit" filterField:"false"`  // Maximum number of payout methods to return. Defaults to 50.
}

func (f PayoutMethodQueryFilter) model() (models.PayoutMethod, error) {
	return models.PayoutMethod{
		PayeeID: f.PayeeID.UUID,
		Type:    f.Type,
		Saved:   f.Saved,
	}, nil
}
