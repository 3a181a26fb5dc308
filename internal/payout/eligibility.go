// Package payout computes which payout methods can be offered to a payee.
package payout

import (
	"github.com/expenseflow/backend/internal/models"
)

// EligibleMethods computes the subset of the payee's payout methods that
// may be presented for selection.
//
// Only saved methods are eligible. When the payee manages its own balance
// and has no saved account balance method, a synthesized one is prepended.
// The synthesized method carries the zero UUID, marking it as not yet
// persisted.
//
// Payees in the collective family can only be paid through their fiscal
// host's balance, so for them everything except account balance methods
// is discarded, including methods retained by the earlier steps.
//
// An empty result means there is no way to pay the payee: callers must
// disable payout method selection and submission.
func EligibleMethods(payee *models.Payee) []models.PayoutMethod {
	methods := []models.PayoutMethod{}
	if payee == nil {
		return methods
	}

	hasBalance := false
	for _, m := range payee.PayoutMethods {
		if !m.Saved {
			continue
		}

		if m.Type == models.PayoutMethodTypeAccountBalance {
			hasBalance = true
		}

		methods = append(methods, m)
	}

	if payee.Active && !hasBalance {
		balance := models.PayoutMethod{
			PayeeID: payee.ID,
			Type:    models.PayoutMethodTypeAccountBalance,
			Saved:   true,
			Data:    models.PayoutMethodData{},
		}

		methods = append([]models.PayoutMethod{balance}, methods...)
	}

	if payee.Type.InCollectiveFamily() {
		balanceOnly := methods[:0]
		for _, m := range methods {
			if m.Type == models.PayoutMethodTypeAccountBalance {
				balanceOnly = append(balanceOnly, m)
			}
		}

		methods = balanceOnly
	}

	return methods
}
