package messaging

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/pkg/kafka"
	"wallet-service/src/pkg/log"
)

const TopicWalletTransaction = "wallet-transaction"

type WalletProducer struct {
	Producer[*model.WalletEvent]
}

func NewWalletProducer(producer kafka.Producer, log log.Log) *WalletProducer {
	return &WalletProducer{
		Producer: Producer[*model.WalletEvent]{
			Producer: producer,
			Topic:    TopicWalletTransaction,
			Log:      log,
		},
	}
}
