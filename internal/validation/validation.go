// Package validation decides whether an expense is complete enough to
// submit.
//
// Everything in this package is a total function: invalid input yields a
// non-empty Result, never an error. The caller renders the result as
// inline messages, the user corrects the draft and tries again.
package validation

import (
	"strings"

	"github.com/expenseflow/backend/internal/models"
	"golang.org/x/text/currency"
)

// Kind tags why a field failed validation.
type Kind string

const (
	KindRequired Kind = "FORM_FIELD_REQUIRED"
	KindInvalid  Kind = "FORM_FIELD_INVALID"
)

// FieldErrors maps field names to the reason they failed.
type FieldErrors map[string]Kind

// Result is the outcome of validating an expense. An empty result means
// the expense is submittable.
type Result struct {
	Fields        FieldErrors   `json:"fields,omitempty"`        // Top level required fields
	PayeeLocation FieldErrors   `json:"payeeLocation,omitempty"` // Location fields, only checked for invoices
	PayoutMethod  FieldErrors   `json:"payoutMethod,omitempty"`  // Structural errors of the selected payout method
	Items         []FieldErrors `json:"items,omitempty"`         // Per item errors, index-aligned with the expense items
}

// Empty reports whether the expense passed all checks.
func (r Result) Empty() bool {
	if len(r.Fields) > 0 || len(r.PayeeLocation) > 0 || len(r.PayoutMethod) > 0 {
		return false
	}

	for _, item := range r.Items {
		if len(item) > 0 {
			return false
		}
	}

	return true
}

// Validate runs all checks on the expense. All rules are independent and
// every applicable rule contributes to the result, there is no
// short-circuiting.
func Validate(expense models.Expense) Result {
	result := Result{
		Fields: FieldErrors{},
	}

	if strings.TrimSpace(expense.Description) == "" {
		result.Fields["description"] = KindRequired
	}

	if expense.PayeeID == nil {
		result.Fields["payee"] = KindRequired
	}

	if expense.PayoutMethod == nil && expense.PayoutMethodID == nil {
		result.Fields["payoutMethod"] = KindRequired
	}

	if strings.TrimSpace(expense.Currency) == "" {
		result.Fields["currency"] = KindRequired
	} else if _, err := currency.ParseISO(expense.Currency); err != nil {
		result.Fields["currency"] = KindInvalid
	}

	if len(result.Fields) == 0 {
		result.Fields = nil
	}

	if len(expense.Items) > 0 {
		items := make([]FieldErrors, 0, len(expense.Items))
		failed := false

		for _, item := range expense.Items {
			errs := ValidateItem(item, expense.Type)
			if len(errs) > 0 {
				failed = true
			}

			items = append(items, errs)
		}

		if failed {
			result.Items = items
		}
	}

	if expense.PayoutMethod != nil {
		if errs := ValidatePayoutMethod(*expense.PayoutMethod); len(errs) > 0 {
			result.PayoutMethod = errs
		}
	}

	if expense.Type == models.ExpenseTypeInvoice {
		location := FieldErrors{}

		if strings.TrimSpace(expense.PayeeLocation.Country) == "" {
			location["country"] = KindRequired
		}

		if strings.TrimSpace(expense.PayeeLocation.Address) == "" {
			location["address"] = KindRequired
		}

		if len(location) > 0 {
			result.PayeeLocation = location
		}
	}

	return result
}

// ValidateItem checks a single line item.
//
// Every item needs a description and a positive amount. Receipt expenses
// additionally need either a receipt scan or a manually entered date for
// each item.
func ValidateItem(item models.ExpenseItem, expenseType models.ExpenseType) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(item.Description) == "" {
		errs["description"] = KindRequired
	}

	if !item.Amount.IsPositive() {
		errs["amount"] = KindInvalid
	}

	if expenseType == models.ExpenseTypeReceipt && item.URL == "" && item.IncurredAt == nil {
		errs["incurredAt"] = KindRequired
	}

	return errs
}

// requiredData lists the data fields each payout method type must carry.
var requiredData = map[models.PayoutMethodType][]string{
	models.PayoutMethodTypeBankAccount: {"accountNumber", "routingNumber"},
	models.PayoutMethodTypePaypal:      {"email"},
	models.PayoutMethodTypeOther:       {"content"},
}

// ValidatePayoutMethod runs the structural checks for the method type.
// Account balance methods have no structure to check.
func ValidatePayoutMethod(method models.PayoutMethod) FieldErrors {
	errs := FieldErrors{}

	for _, field := range requiredData[method.Type] {
		if strings.TrimSpace(method.Data[field]) == "" {
			errs[field] = KindRequired
		}
	}

	return errs
}
