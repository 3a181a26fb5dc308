package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteStatus is the lifecycle state of an invite.
//
// swagger:enum InviteStatus
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusSent     InviteStatus = "SENT"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusDeclined InviteStatus = "DECLINED"
)

var validate = validator.New()

// Invite asks a third party without an account to complete an expense
// as its payee.
type Invite struct {
	DefaultModel
	ExpenseID uuid.UUID `gorm:"uniqueIndex:invite_expense_email"`
	Expense   Expense   `json:"-"`
	Email     string    `gorm:"uniqueIndex:invite_expense_email"`
	Name      string
	Status    InviteStatus
}

// BeforeSave validates the email address, defaults the status and trims
// whitespace.
func (i *Invite) BeforeSave(_ *gorm.DB) error {
	i.Email = strings.TrimSpace(i.Email)
	i.Name = strings.TrimSpace(i.Name)

	if i.Status == "" {
		i.Status = InviteStatusPending
	}

	if err := validate.Var(i.Email, "required,email"); err != nil {
		return ErrInviteEmailInvalid
	}

	return nil
}

func (i *Invite) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	// Verify that the expense exists
	return tx.First(&Expense{}, i.ExpenseID).Error
}
