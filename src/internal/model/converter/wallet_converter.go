package converter

import (
	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
)

func LedgerToResponse(ledger entity.Ledger, withLatest bool) *model.WalletResponse {
	response := &model.WalletResponse{Wallet: ledger.Wallet}
	if withLatest && len(ledger.Transactions) > 0 {
		txn := ledger.Transactions[0]
		response.Transaction = &txn
	}
	return response
}

func TransactionsToResponse(txns []entity.Transaction) *model.TransactionListResponse {
	return &model.TransactionListResponse{
		Transactions: txns,
		Count:        len(txns),
	}
}

func LedgerToEvent(eventID string, ledger entity.Ledger) *model.WalletEvent {
	return &model.WalletEvent{
		EventID:     eventID,
		Transaction: ledger.Transactions[0],
		Wallet:      ledger.Wallet,
	}
}
