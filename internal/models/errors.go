package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrPayeeNameNotUnique        = errors.New("the payee name must be unique")
	ErrPayoutMethodInvalidType   = errors.New("the payout method type is invalid")
	ErrAccountTypeInvalid        = errors.New("the account type is invalid")
	ErrExpenseTypeInvalid        = errors.New("the expense type is invalid")
	ErrExpenseAlreadySubmitted   = errors.New("the expense has already been submitted and can no longer be changed")
	ErrTagRulePatternNotUnique   = errors.New("the tag rule pattern must be unique")
	ErrInviteEmailInvalid        = errors.New("the invite email address is invalid")
	ErrInviteEmailExpenseNotSame = errors.New("an invite for this email address already exists for the expense")
)
