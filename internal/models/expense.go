package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseType determines which fields an expense requires and how it is
// reshaped for submission.
//
// swagger:enum ExpenseType
type ExpenseType string

const (
	ExpenseTypeInvoice        ExpenseType = "INVOICE"
	ExpenseTypeReceipt        ExpenseType = "RECEIPT"
	ExpenseTypeFundingRequest ExpenseType = "FUNDING_REQUEST"
)

// Valid reports whether the expense type is one of the known types.
func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseTypeInvoice, ExpenseTypeReceipt, ExpenseTypeFundingRequest:
		return true
	}
	return false
}

// ExpenseStatus is the lifecycle state of an expense.
//
// swagger:enum ExpenseStatus
type ExpenseStatus string

const (
	ExpenseStatusDraft     ExpenseStatus = "DRAFT"
	ExpenseStatusSubmitted ExpenseStatus = "SUBMITTED"
)

// Location is the payee's declared location. It is only required for
// invoices.
type Location struct {
	Country string `json:"country" example:"DE"`
	Address string `json:"address" example:"Willy-Brandt-Straße 1, 10557 Berlin"`
}

// File references an uploaded document, e.g. the PDF of an invoice.
type File struct {
	URL  string `json:"url" example:"https://files.example.com/invoice.pdf"`
	Name string `json:"name" example:"invoice.pdf"`
}

// Files is a JSON-serialized list of file references.
type Files []File

func (f Files) Value() (driver.Value, error) {
	if f == nil {
		f = Files{}
	}

	j, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	return string(j), nil
}

func (f *Files) Scan(value any) error {
	return scanJSON(value, f)
}

// Tags is a JSON-serialized list of tags.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}

	j, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	return string(j), nil
}

func (t *Tags) Scan(value any) error {
	return scanJSON(value, t)
}

func scanJSON(value, target any) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T", value)
	}

	return json.Unmarshal(bytes, target)
}

// Expense is an in-progress or submitted expense.
//
// While the status is DRAFT, the expense is the server-side autosave of the
// submission form. Writes follow "last write wins", there is no consistency
// guarantee beyond that.
type Expense struct {
	DefaultModel
	Description     string
	LongDescription string
	Type            ExpenseType
	Status          ExpenseStatus
	Currency        string // ISO 4217 code
	PayeeID         *uuid.UUID
	Payee           *Payee `json:"-"`
	PayoutMethodID  *uuid.UUID
	PayoutMethod    *PayoutMethod `json:"-"`
	PayeeLocation   Location      `gorm:"embedded;embeddedPrefix:payee_location_"`
	PrivateMessage  string
	InvoiceInfo     string
	Tags            Tags          `gorm:"type:TEXT"`
	AttachedFiles   Files         `gorm:"type:TEXT"`
	Items           []ExpenseItem `json:"-"`
}

// BeforeSave ensures consistency for the expense.
//
// It verifies the type, defaults the status to DRAFT and trims whitespace
// from all strings.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if !e.Type.Valid() {
		return ErrExpenseTypeInvalid
	}

	if e.Status == "" {
		e.Status = ExpenseStatusDraft
	}

	e.Description = strings.TrimSpace(e.Description)
	e.LongDescription = strings.TrimSpace(e.LongDescription)
	e.Currency = strings.TrimSpace(e.Currency)
	e.PayeeLocation.Country = strings.TrimSpace(e.PayeeLocation.Country)
	e.PayeeLocation.Address = strings.TrimSpace(e.PayeeLocation.Address)

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)
	return e.checkIntegrity(tx)
}

// BeforeUpdate verifies the state of the expense before committing an
// update to the database. Submitted expenses are immutable.
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	if e.Status == ExpenseStatusSubmitted && !tx.Statement.Changed("Status") {
		return ErrExpenseAlreadySubmitted
	}

	if tx.Statement.Changed("PayeeID") || tx.Statement.Changed("PayoutMethodID") {
		toSave, ok := tx.Statement.Dest.(Expense)
		if !ok {
			return nil
		}

		return toSave.checkIntegrity(tx)
	}

	return nil
}

// checkIntegrity verifies references to other resources.
func (e *Expense) checkIntegrity(tx *gorm.DB) error {
	if e.PayeeID != nil && *e.PayeeID != uuid.Nil {
		err := tx.First(&Payee{}, *e.PayeeID).Error
		if err != nil {
			return err
		}
	}

	if e.PayoutMethodID != nil && *e.PayoutMethodID != uuid.Nil {
		err := tx.First(&PayoutMethod{}, *e.PayoutMethodID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// WithRelations loads the payee, payout method and items for the expense.
func (e Expense) WithRelations(db *gorm.DB) (Expense, error) {
	err := db.
		Preload("Payee").
		Preload("PayoutMethod").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("expense_items.created_at ASC")
		}).
		First(&e, e.ID).Error
	if err != nil {
		return Expense{}, err
	}

	return e, nil
}

// TotalAmount is the sum of all item amounts.
func (e Expense) TotalAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range e.Items {
		sum = sum.Add(item.Amount)
	}

	return sum
}
