package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusSuccess = "success"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

// Payment rows are written by the external payment flow. This service reads
// Status and flips it to failed when the transaction gets canceled; any
// status other than success counts as not paid. GatewayPayload keeps the raw
// record the gateway reported.
type Payment struct {
	gorm.Model

	TransactionID  uint           `json:"transaction_id" gorm:"column:transaction_id;uniqueIndex;not null"`
	Method         string         `json:"method" gorm:"size:50"`
	Amount         float64        `json:"amount"`
	Status         string         `json:"status" gorm:"size:32"`
	GatewayPayload datatypes.JSON `json:"gateway_payload,omitempty" gorm:"column:gateway_payload"`
}
