package models

import (
	"strings"

	"gorm.io/gorm"
)

// AccountType is the family an account belongs to.
//
// swagger:enum AccountType
type AccountType string

const (
	AccountTypeIndividual   AccountType = "INDIVIDUAL"
	AccountTypeOrganization AccountType = "ORGANIZATION"
	AccountTypeCollective   AccountType = "COLLECTIVE"
	AccountTypeEvent        AccountType = "EVENT"
	AccountTypeProject      AccountType = "PROJECT"
	AccountTypeFund         AccountType = "FUND"
)

// collectiveFamily contains the account types that operate exclusively
// through a fiscal host's balance. These accounts cannot hold external
// bank or payment credentials, only the host can move money to them.
var collectiveFamily = map[AccountType]bool{
	AccountTypeCollective: true,
	AccountTypeEvent:      true,
	AccountTypeProject:    true,
	AccountTypeFund:       true,
}

// InCollectiveFamily reports whether the account type only receives funds
// through internal balance transfers.
func (t AccountType) InCollectiveFamily() bool {
	return collectiveFamily[t]
}

// Valid reports whether the account type is one of the known types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeIndividual, AccountTypeOrganization, AccountTypeCollective,
		AccountTypeEvent, AccountTypeProject, AccountTypeFund:
		return true
	}
	return false
}

// Payee is an account that can receive expense payments.
type Payee struct {
	DefaultModel
	Name          string      `gorm:"uniqueIndex:payee_name"`
	Type          AccountType // The account family of the payee
	LegacyID      uint        // Numeric identifier from the previous account reference scheme. 0 when the payee only has a modern ID.
	Active        bool        // Whether the account currently manages its own budget and balance
	Note          string
	PayoutMethods []PayoutMethod `json:"-"`
}

// BeforeSave trims whitespace and verifies the account type.
func (p *Payee) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	if !p.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	return nil
}

// SavedPayoutMethods returns all persisted payout methods for the payee.
func (p Payee) SavedPayoutMethods(db *gorm.DB) ([]PayoutMethod, error) {
	var methods []PayoutMethod

	err := db.
		Where(&PayoutMethod{PayeeID: p.ID}).
		Where("saved = ?", true).
		Order("created_at ASC").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}

	return methods, nil
}

// Expenses returns all expenses that name this payee.
func (p Payee) Expenses(db *gorm.DB) []Expense {
	var expenses []Expense

	db.Where(Expense{PayeeID: &p.ID}).Find(&expenses)
	return expenses
}
