package model

import (
	"wallet-service/src/internal/entity"

	"github.com/shopspring/decimal"
)

type IncomeRequest struct {
	Category  string          `json:"category" validate:"required,oneof=salary leaveAllowance remoteDuty islandDuty bonus other"`
	AmountCMD decimal.Decimal `json:"amountCMD"`
	Note      string          `json:"note,omitempty" validate:"max=200"`
}

type SpendRequest struct {
	Category     string          `json:"category" validate:"required,oneof=px transfer qr conversion purchase other"`
	AmountCMD    decimal.Decimal `json:"amountCMD"`
	Note         string          `json:"note,omitempty" validate:"max=200"`
	Counterparty string          `json:"counterparty,omitempty" validate:"max=100"`
}

type ConvertRequest struct {
	AmountCMD decimal.Decimal `json:"amountCMD"`
}

type QRSendRequest struct {
	AmountCMD  decimal.Decimal `json:"amountCMD"`
	MerchantID string          `json:"merchantId,omitempty" validate:"max=100"`
}

type QRReceiveRequest struct {
	AmountCMD    decimal.Decimal `json:"amountCMD"`
	PeerWalletID string          `json:"peerWalletId,omitempty" validate:"max=100"`
}

type TransactionListRequest struct {
	Kind  string `query:"kind" validate:"omitempty,oneof=income expense conversion qr"`
	Limit int    `query:"limit" validate:"gte=0,lte=500"`
}

type WalletResponse struct {
	Wallet      entity.WalletSnapshot `json:"wallet"`
	Transaction *entity.Transaction   `json:"transaction,omitempty"`
}

type TransactionListResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

type SetRateRequest struct {
	KRWPerCMD decimal.Decimal `json:"krwPerCMD"`
}
