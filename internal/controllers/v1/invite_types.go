package v1

import (
	"fmt"

	"github.com/expenseflow/backend/internal/models"
	ef_uuid "github.com/expenseflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InviteEditable represents all user configurable parameters
type InviteEditable struct {
	ExpenseID uuid.UUID           `json:"expenseId" example:"0f0c6488-c877-4c80-bc93-d42a57a55fd4"` // ID of the expense the third party is invited to complete
	Email     string              `json:"email" example:"sam@example.com"`                          // Email address of the invited third party
	Name      string              `json:"name" example:"Sam Doe" default:""`                        // Name of the invited third party
	Status    models.InviteStatus `json:"status" example:"PENDING" default:"PENDING"`               // Lifecycle state of the invite
}

func (editable InviteEditable) model() models.Invite {
	return models.Invite{
		ExpenseID: editable.ExpenseID,
		Email:     editable.Email,
		Name:      editable.Name,
		Status:    editable.Status,
	}
}

type InviteLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/invites/27b67d5e-0f42-49c7-bc6a-4c0e6d7b0f71"`      // The invite itself
	Expense string `json:"expense" example:"https://example.com/api/v1/expenses/0f0c6488-c877-4c80-bc93-d42a57a55fd4"` // The expense the invite belongs to
}

// Invite is the API representation of an invite.
type Invite struct {
	models.DefaultModel
	InviteEditable
	Links InviteLinks `json:"links"`
}

func newInvite(c *gin.Context, model models.Invite) Invite {
	url := c.GetString(string(models.DBContextURL))

	return Invite{
		DefaultModel: model.DefaultModel,
		InviteEditable: InviteEditable{
			ExpenseID: model.ExpenseID,
			Email:     model.Email,
			Name:      model.Name,
			Status:    model.Status,
		},
		Links: InviteLinks{
			Self:    fmt.Sprintf("%s/v1/invites/%s", url, model.ID),
			Expense: fmt.Sprintf("%s/v1/expenses/%s", url, model.ExpenseID),
		},
	}
}

type InviteListResponse struct {
	Data       []Invite    `json:"data"`                                                          // List of invites
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InviteCreateResponse struct {
	Data  []InviteResponse `json:"data"`                                                          // List of the created invites or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *InviteCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InviteResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InviteResponse struct {
	Data  *Invite `json:"data"`                                                          // Data for the invite
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InviteQueryFilter struct {
	ExpenseID ef_uuid.UUID        `form:"expense"`                    // By ID of the expense
	Email     string              `form:"email"`                      // By email address
	Status    models.InviteStatus `form:"status"`                     // By lifecycle state
	Offset    uint                `form:"offset" filterField:"false"` // The offset of the first invite returned. Defaults to 0.
	Limit     int                 `form:"limit" filterField:"false"`  // Maximum number of invites to return. Defaults to 50.
}

func (f InviteQueryFilter) model() (models.Invite, error) {
	return models.Invite{
		ExpenseID: f.ExpenseID.UUID,
		Email:     f.Email,
		Status:    f.Status,
	}, nil
}
