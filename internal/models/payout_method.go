package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayoutMethodType is the mechanism used to disburse funds to a payee.
//
// swagger:enum PayoutMethodType
type PayoutMethodType string

const (
	PayoutMethodTypeBankAccount    PayoutMethodType = "BANK_ACCOUNT"
	PayoutMethodTypePaypal         PayoutMethodType = "PAYPAL"
	PayoutMethodTypeAccountBalance PayoutMethodType = "ACCOUNT_BALANCE"
	PayoutMethodTypeOther          PayoutMethodType = "OTHER"
)

// Valid reports whether the payout method type is one of the known types.
func (t PayoutMethodType) Valid() bool {
	switch t {
	case PayoutMethodTypeBankAccount, PayoutMethodTypePaypal,
		PayoutMethodTypeAccountBalance, PayoutMethodTypeOther:
		return true
	}
	return false
}

// PayoutMethodData holds the method specific fields, e.g. bank routing
// details. It is stored as a JSON string.
type PayoutMethodData map[string]string

func (d PayoutMethodData) Value() (driver.Value, error) {
	if d == nil {
		d = PayoutMethodData{}
	}

	j, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	return string(j), nil
}

func (d *PayoutMethodData) Scan(value any) error {
	if value == nil {
		*d = PayoutMethodData{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PayoutMethodData", value)
	}

	return json.Unmarshal(bytes, d)
}

// PayoutMethod is a mechanism for a payee to receive funds.
type PayoutMethod struct {
	DefaultModel
	PayeeID uuid.UUID
	Payee   Payee `json:"-"`
	Name    string
	Type    PayoutMethodType
	Saved   bool             // Whether the method is persisted for reuse or ad hoc
	Data    PayoutMethodData `gorm:"type:TEXT"`
}

// BeforeSave verifies the payout method type and trims the name.
func (m *PayoutMethod) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)

	if !m.Type.Valid() {
		return ErrPayoutMethodInvalidType
	}

	if m.Data == nil {
		m.Data = PayoutMethodData{}
	}

	return nil
}

func (m *PayoutMethod) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	// Verify that the payee exists
	return tx.First(&Payee{}, m.PayeeID).Error
}
