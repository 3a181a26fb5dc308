package v1

import (
	"fmt"
	"time"

	"github.com/expenseflow/backend/internal/models"
	"github.com/expenseflow/backend/internal/submission"
	ef_uuid "github.com/expenseflow/backend/internal/uuid"
	"github.com/expenseflow/backend/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseItemEditable represents all user configurable parameters of a
// line item. Items are managed through the expense they belong to.
type ExpenseItemEditable struct {
	ID          uuid.UUID       `json:"id" example:"5733c72f-4b2c-41a5-a0d8-2cbd43f36e4b"` // Zero UUID for items created in this session
	Description string          `json:"description" example:"Taxi to the venue" default:""`
	Amount      decimal.Decimal `json:"amount" example:"14.50"`
	URL         string          `json:"url" example:"https://files.example.com/receipt.jpg" default:""` // Receipt scan, only meaningful for receipts
	IncurredAt  *time.Time      `json:"incurredAt"`                                                     // Manually entered date for receipt items without a scan
}

func (editable ExpenseItemEditable) model() models.ExpenseItem {
	return models.ExpenseItem{
		DefaultModel: models.DefaultModel{ID: editable.ID},
		Description:  editable.Description,
		Amount:       editable.Amount,
		URL:          editable.URL,
		IncurredAt:   editable.IncurredAt,
	}
}

// ExpenseItem is the API representation of a line item.
type ExpenseItem struct {
	models.DefaultModel
	Description string          `json:"description" example:"Taxi to the venue"`
	Amount      decimal.Decimal `json:"amount" example:"14.50"`
	URL         string          `json:"url" example:"https://files.example.com/receipt.jpg"`
	IncurredAt  *time.Time      `json:"incurredAt"`
}

func newExpenseItem(model models.ExpenseItem) ExpenseItem {
	return ExpenseItem{
		DefaultModel: model.DefaultModel,
		Description:  model.Description,
		Amount:       model.Amount,
		URL:          model.URL,
		IncurredAt:   model.IncurredAt,
	}
}

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description     string                `json:"description" example:"Team offsite catering" default:""`
	LongDescription string                `json:"longDescription" example:"Catering for the two day offsite" default:""`
	Type            models.ExpenseType    `json:"type" example:"RECEIPT"`
	Currency        string                `json:"currency" example:"EUR" default:""`                      // ISO 4217 code
	PayeeID         *uuid.UUID            `json:"payeeId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // ID of the payee receiving the funds
	PayoutMethodID  *uuid.UUID            `json:"payoutMethodId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	PayeeLocation   models.Location       `json:"payeeLocation"` // Only required for invoices
	PrivateMessage  string                `json:"privateMessage" example:"Please pay out before Friday" default:""`
	InvoiceInfo     string                `json:"invoiceInfo" example:"VAT ID DE123456789" default:""`
	Tags            models.Tags           `json:"tags" example:"catering,offsite"`
	AttachedFiles   models.Files          `json:"attachedFiles"` // Only meaningful for invoices
	Items           []ExpenseItemEditable `json:"items"`
}

func (editable ExpenseEditable) model() models.Expense {
	expense := models.Expense{
		Description:     editable.Description,
		LongDescription: editable.LongDescription,
		Type:            editable.Type,
		Currency:        editable.Currency,
		PayeeID:         editable.PayeeID,
		PayoutMethodID:  editable.PayoutMethodID,
		PayeeLocation:   editable.PayeeLocation,
		PrivateMessage:  editable.PrivateMessage,
		InvoiceInfo:     editable.InvoiceInfo,
		Tags:            editable.Tags,
		AttachedFiles:   editable.AttachedFiles,
	}

	for _, item := range editable.Items {
		expense.Items = append(expense.Items, item.model())
	}

	return expense
}

type ExpenseLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/expenses/0f0c6488-c877-4c80-bc93-d42a57a55fd4"`             // The expense itself
	Validate     string `json:"validate" example:"https://example.com/api/v1/expenses/0f0c6488-c877-4c80-bc93-d42a57a55fd4/validate"` // Validation endpoint for the expense
	Submit       string `json:"submit" example:"https://example.com/api/v1/expenses/0f0c6488-c877-4c80-bc93-d42a57a55fd4/submit"`     // Submission endpoint for the expense
	Payee        string `json:"payee" example:"https://example.com/api/v1/payees/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`               // The payee receiving the funds. Empty if no payee is selected yet.
	PayoutMethod string `json:"payoutMethod" example:"https://example.com/api/v1/payout-methods/d430d7c3-d14c-4712-9336-ee56965a6673"` // The selected payout method. Empty if none is selected yet.
	Invites      string `json:"invites" example:"https://example.com/api/v1/invites?expense=0f0c6488-c877-4c80-bc93-d42a57a55fd4"`     // Invites for this expense
}

// Expense is the API representation of an expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Status      models.ExpenseStatus `json:"status" example:"DRAFT"`        // Lifecycle state, read-only
	TotalAmount decimal.Decimal      `json:"totalAmount" example:"102.50"`  // Sum of all item amounts
	Links       ExpenseLinks         `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	expense := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description:     model.Description,
			LongDescription: model.LongDescription,
			Type:            model.Type,
			Currency:        model.Currency,
			PayeeID:         model.PayeeID,
			PayoutMethodID:  model.PayoutMethodID,
			PayeeLocation:   model.PayeeLocation,
			PrivateMessage:  model.PrivateMessage,
			InvoiceInfo:     model.InvoiceInfo,
			Tags:            model.Tags,
			AttachedFiles:   model.AttachedFiles,
		},
		Status:      model.Status,
		TotalAmount: model.TotalAmount(),
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Validate: fmt.Sprintf("%s/v1/expenses/%s/validate", url, model.ID),
			Submit:   fmt.Sprintf("%s/v1/expenses/%s/submit", url, model.ID),
			Invites:  fmt.Sprintf("%s/v1/invites?expense=%s", url, model.ID),
		},
	}

	if expense.Tags == nil {
		expense.Tags = models.Tags{}
	}

	if expense.AttachedFiles == nil {
		expense.AttachedFiles = models.Files{}
	}

	if model.PayeeID != nil {
		expense.Links.Payee = fmt.Sprintf("%s/v1/payees/%s", url, *model.PayeeID)
	}

	if model.PayoutMethodID != nil {
		expense.Links.PayoutMethod = fmt.Sprintf("%s/v1/payout-methods/%s", url, *model.PayoutMethodID)
	}

	expense.Items = make([]ExpenseItemEditable, 0, len(model.Items))
	for _, item := range model.Items {
		expense.Items = append(expense.Items, ExpenseItemEditable{
			ID:          item.ID,
			Description: item.Description,
			Amount:      item.Amount,
			URL:         item.URL,
			IncurredAt:  item.IncurredAt,
		})
	}

	return expense
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ExpenseValidation is the outcome of validating a draft.
type ExpenseValidation struct {
	Valid  bool              `json:"valid" example:"false"` // Does the expense pass all checks?
	Result validation.Result `json:"result"`                // The failed checks. Empty when the expense is valid.
}

type ExpenseValidationResponse struct {
	Data  *ExpenseValidation `json:"data"`                                                          // Validation outcome
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ExpenseSubmitResponse carries the submission payload on success. When
// the expense does not pass validation, Validation carries the failed
// checks instead.
type ExpenseSubmitResponse struct {
	Data       *submission.Payload `json:"data"`                 // The payload handed to the submission API
	Validation *validation.Result  `json:"validation,omitempty"` // The failed checks, only set when validation failed
	Error      *string             `json:"error" example:"the expense does not pass validation and cannot be submitted"`
}

type ExpenseQueryFilter struct {
	Description    string               `form:"description" filterField:"false"` // By description
	Type           models.ExpenseType   `form:"type"`                            // By expense type
	Status         models.ExpenseStatus `form:"status"`                          // By lifecycle state
	Currency       string               `form:"currency"`                        // By ISO 4217 code
	PayeeID        ef_uuid.UUID         `form:"payee"`                           // By ID of the payee
	PayoutMethodID ef_uuid.UUID         `form:"payoutMethod"`                    // By ID of the selected payout method
	Search         string               `form:"search" filterField:"false"`      // By string in description
	Offset         uint                 `form:"offset" filterField:"false"`      // The offset of the first expense returned. Defaults to 0.
	Limit          int                  `form:"limit" filterField:"false"`       // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	var payeeID, payoutMethodID *uuid.UUID
	if f.PayeeID.UUID != uuid.Nil {
		payeeID = &f.PayeeID.UUID
	}
	if f.PayoutMethodID.UUID != uuid.Nil {
		payoutMethodID = &f.PayoutMethodID.UUID
	}

	return models.Expense{
		Type:           f.Type,
		Status:         f.Status,
		Currency:       f.Currency,
		PayeeID:        payeeID,
		PayoutMethodID: payoutMethodID,
	}, nil
}
