package entity

import "time"

// Snapshot is one persisted store state, keyed by its slot name.
type Snapshot struct {
	Slot      string    `gorm:"column:slot;primaryKey;size:64"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

const (
	SlotWallet   = "wallet-store"
	SlotRate     = "rate-store"
	SlotIdentity = "identity-store"
	SlotTraining = "training-store"
	SlotInvest   = "invest-store"
	SlotLeave    = "leave-store"
	SlotVoucher  = "voucher-store"
	SlotService  = "service-store"
)
