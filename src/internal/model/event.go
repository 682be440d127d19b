package model

import (
	"time"

	"wallet-service/src/internal/entity"
)

type Event interface {
	GetId() string
}

type WalletEvent struct {
	EventID     string                `json:"event_id"`
	Transaction entity.Transaction    `json:"transaction"`
	Wallet      entity.WalletSnapshot `json:"wallet"`
}

func (e *WalletEvent) GetId() string {
	return e.Transaction.ID
}

// StatusEvent reports a lifecycle step of a leave, voucher, identity,
// training record or holding.
type StatusEvent struct {
	EventID    string    `json:"event_id"`
	RecordID   string    `json:"record_id"`
	Kind       string    `json:"kind"`
	Action     string    `json:"action"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *StatusEvent) GetId() string {
	return e.RecordID
}
