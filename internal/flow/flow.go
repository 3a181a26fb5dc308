// Package flow models the two steps of the expense form as an explicit
// state machine. The current step is passed around explicitly instead of
// living in ambient UI state, and transitions are gated by the completion
// predicates of the payee and expense steps.
package flow

import (
	"errors"

	"github.com/expenseflow/backend/internal/models"
	"github.com/expenseflow/backend/internal/payout"
	"github.com/expenseflow/backend/internal/validation"
)

// Step is a step of the expense form.
//
// swagger:enum Step
type Step string

const (
	StepPayee   Step = "PAYEE"
	StepExpense Step = "EXPENSE"
)

var (
	ErrUnknownStep        = errors.New("the step is not part of the expense flow")
	ErrPayeeIncomplete    = errors.New("the payee step is not complete")
	ErrNoEligibleMethod   = errors.New("the payee has no eligible payout method")
	ErrExpenseNotComplete = errors.New("the expense does not pass validation")
	ErrAlreadyAtLastStep  = errors.New("the expense step is the last step")
)

// PayeeComplete reports whether the payee step can be left: a payee must
// be selected, it must have at least one eligible payout method and one
// of them must be chosen.
func PayeeComplete(expense models.Expense) bool {
	if expense.Payee == nil {
		return false
	}

	if len(payout.EligibleMethods(expense.Payee)) == 0 {
		return false
	}

	return expense.PayoutMethod != nil || expense.PayoutMethodID != nil
}

// Next returns the step after the current one for the expense, or an
// error naming the predicate that failed.
func Next(current Step, expense models.Expense) (Step, error) {
	switch current {
	case StepPayee:
		if expense.Payee == nil {
			return current, ErrPayeeIncomplete
		}

		if len(payout.EligibleMethods(expense.Payee)) == 0 {
			return current, ErrNoEligibleMethod
		}

		if expense.PayoutMethod == nil && expense.PayoutMethodID == nil {
			return current, ErrPayeeIncomplete
		}

		return StepExpense, nil

	case StepExpense:
		return current, ErrAlreadyAtLastStep

	default:
		return current, ErrUnknownStep
	}
}

// CanSubmit reports whether the expense can be submitted from the
// expense step.
func CanSubmit(current Step, expense models.Expense) bool {
	if current != StepExpense {
		return false
	}

	return validation.Validate(expense).Empty()
}
