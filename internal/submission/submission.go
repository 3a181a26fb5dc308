// Package submission reshapes a validated expense into the payload that
// is handed to the submission API.
package submission

import (
	"time"

	"github.com/expenseflow/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRef identifies a payee account in exactly one of the two
// coexisting account reference schemes: by the modern string ID or by the
// numeric ID of the previous scheme. The shim between the two schemes is
// a feature the submission API depends on, not an accident.
type AccountRef struct {
	ID       string `json:"id,omitempty" example:"5733c72f-4b2c-41a5-a0d8-2cbd43f36e4b"`
	LegacyID uint   `json:"legacyId,omitempty" example:"31337"`
}

// ByID references an account by its modern string identifier.
func ByID(id string) AccountRef {
	return AccountRef{ID: id}
}

// ByLegacyID references an account by its numeric legacy identifier.
func ByLegacyID(id uint) AccountRef {
	return AccountRef{LegacyID: id}
}

// PayeeRef returns the reference for a payee, preferring the modern ID.
func PayeeRef(payee models.Payee) AccountRef {
	if payee.ID != uuid.Nil {
		return ByID(payee.ID.String())
	}

	return ByLegacyID(payee.LegacyID)
}

// PayoutMethodPayload is the reduced payout method handed to the
// submission API.
type PayoutMethodPayload struct {
	ID    *uuid.UUID              `json:"id,omitempty"`
	Name  string                  `json:"name"`
	Data  models.PayoutMethodData `json:"data"`
	Saved bool                    `json:"isSaved"`
	Type  models.PayoutMethodType `json:"type"`
}

// ItemPayload is a single line item as handed to the submission API.
type ItemPayload struct {
	ID          *uuid.UUID      `json:"id,omitempty"` // Omitted for items created in this session
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	URL         string          `json:"url,omitempty"` // Only kept for receipts
	IncurredAt  *time.Time      `json:"incurredAt,omitempty"`
}

// Payload is the de-facto wire contract for expense submission.
type Payload struct {
	ID              uuid.UUID           `json:"id"`
	Description     string              `json:"description"`
	LongDescription string              `json:"longDescription,omitempty"`
	Type            models.ExpenseType  `json:"type"`
	PrivateMessage  string              `json:"privateMessage,omitempty"`
	InvoiceInfo     string              `json:"invoiceInfo,omitempty"`
	Tags            []string            `json:"tags"`
	Payee           AccountRef          `json:"payee"`
	PayoutMethod    PayoutMethodPayload `json:"payoutMethod"`
	PayeeLocation   *models.Location    `json:"payeeLocation"`
	AttachedFiles   []models.File       `json:"attachedFiles"`
	Items           []ItemPayload       `json:"items"`
}

// Prepare reduces the expense to its submission shape. It is a pure
// transform with no error conditions and is idempotent over the fields it
// touches.
func Prepare(expense models.Expense) Payload {
	payload := Payload{
		ID:              expense.ID,
		Description:     expense.Description,
		LongDescription: expense.LongDescription,
		Type:            expense.Type,
		PrivateMessage:  expense.PrivateMessage,
		InvoiceInfo:     expense.InvoiceInfo,
		Tags:            expense.Tags,
		PayeeLocation:   nil,
		AttachedFiles:   []models.File{},
	}

	if payload.Tags == nil {
		payload.Tags = []string{}
	}

	if expense.Payee != nil {
		payload.Payee = PayeeRef(*expense.Payee)
	}

	if expense.PayoutMethod != nil {
		method := *expense.PayoutMethod

		payload.PayoutMethod = PayoutMethodPayload{
			Name:  method.Name,
			Data:  method.Data,
			Saved: method.Saved,
			Type:  method.Type,
		}

		if method.ID != uuid.Nil {
			id := method.ID
			payload.PayoutMethod.ID = &id
		}

		if payload.PayoutMethod.Data == nil {
			payload.PayoutMethod.Data = models.PayoutMethodData{}
		}
	}

	// Location and attachments are only meaningful for invoices
	if expense.Type == models.ExpenseTypeInvoice {
		location := expense.PayeeLocation
		payload.PayeeLocation = &location

		if expense.AttachedFiles != nil {
			payload.AttachedFiles = expense.AttachedFiles
		}
	}

	payload.Items = make([]ItemPayload, 0, len(expense.Items))
	for _, item := range expense.Items {
		p := ItemPayload{
			Description: item.Description,
			Amount:      item.Amount,
			URL:         item.URL,
			IncurredAt:  item.IncurredAt,
		}

		// Items created in this session have no persisted ID yet
		if item.ID != uuid.Nil {
			id := item.ID
			p.ID = &id
		}

		// Receipt scans are only meaningful for receipt expenses
		if expense.Type == models.ExpenseTypeInvoice || expense.Type == models.ExpenseTypeFundingRequest {
			p.URL = ""
		}

		payload.Items = append(payload.Items, p)
	}

	return payload
}
