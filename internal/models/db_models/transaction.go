package db_models

import "github.com/google/uuid"

type TxnStatus string

const (
	TxnStatusPending TxnStatus = "pending"
	TxnStatusPaid    TxnStatus = "paid"
	TxnStatusFailed  TxnStatus = "failed"
)

type Transaction struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	AmountMinor int64
	Currency    string
	Status      TxnStatus `gorm:"size:16"`
	Provider    string
	// ProviderTxnID links the local record to the provider order.
	ProviderTxnID string `gorm:"uniqueIndex"`
	PaidAt        int64
	Metadata      []byte `gorm:"type:jsonb"`
}
