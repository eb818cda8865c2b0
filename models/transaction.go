package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionStatusConfirmed = "confirmed"
	TransactionStatusCanceled  = "canceled"
)

// Transaction starts with an empty status and is settled by the confirm
// endpoint based on its payment's status.
type Transaction struct {
	gorm.Model

	ReferenceCode string  `json:"reference_code" gorm:"column:reference_code;uniqueIndex;size:64"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status" gorm:"size:32"`

	Payment *Payment `json:"payment,omitempty" gorm:"foreignKey:TransactionID"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(t.ReferenceCode) == "" {
		t.ReferenceCode = "TXN-" + strings.ToUpper(uuid.NewString())
	}
	return nil
}
