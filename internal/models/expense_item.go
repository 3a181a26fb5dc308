package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseItem is a single line item of an expense.
type ExpenseItem struct {
	DefaultModel
	ExpenseID   uuid.UUID
	Expense     Expense `json:"-"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	URL         string          // Reference to a receipt scan. Only meaningful for receipt expenses.
	IncurredAt  *time.Time      // Manually entered date for receipt items without a scan
}

// BeforeSave trims whitespace from all strings.
func (i *ExpenseItem) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	i.URL = strings.TrimSpace(i.URL)

	return nil
}

func (i *ExpenseItem) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	// Verify that the expense exists
	return tx.First(&Expense{}, i.ExpenseID).Error
}
