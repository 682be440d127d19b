package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionIncome     TransactionKind = "income"
	TransactionExpense    TransactionKind = "expense"
	TransactionConversion TransactionKind = "conversion"
	TransactionQR         TransactionKind = "qr"
)

type IncomeCategory string

const (
	IncomeSalary         IncomeCategory = "salary"
	IncomeLeaveAllowance IncomeCategory = "leaveAllowance"
	IncomeRemoteDuty     IncomeCategory = "remoteDuty"
	IncomeIslandDuty     IncomeCategory = "islandDuty"
	IncomeBonus          IncomeCategory = "bonus"
	IncomeOther          IncomeCategory = "other"
)

type ExpenseCategory string

const (
	ExpensePX         ExpenseCategory = "px"
	ExpenseTransfer   ExpenseCategory = "transfer"
	ExpenseQR         ExpenseCategory = "qr"
	ExpenseConversion ExpenseCategory = "conversion"
	ExpensePurchase   ExpenseCategory = "purchase"
	ExpenseOther      ExpenseCategory = "other"
)

type QRDirection string

const (
	QRSend    QRDirection = "send"
	QRReceive QRDirection = "receive"
)

const PrimaryWalletID = "primary"

var (
	conversionFeeRate = decimal.RequireFromString("0.01")
	minConversionFee  = decimal.NewFromInt(1)
)

type WalletSnapshot struct {
	ID        string          `json:"id"`
	CMD       decimal.Decimal `json:"cmd"`
	KRW       decimal.Decimal `json:"krw"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ConversionDetail struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Rate        decimal.Decimal `json:"rate"`
	FeeCMD      decimal.Decimal `json:"feeCMD"`
	ReceivedKRW decimal.Decimal `json:"receivedKRW"`
}

type QRDetail struct {
	Direction    QRDirection `json:"direction"`
	MerchantID   string      `json:"merchantId,omitempty"`
	PeerWalletID string      `json:"peerWalletId,omitempty"`
}

// Transaction is one entry of the append-only log. Kind selects which of
// Category/Counterparty, Conversion or QR is populated.
type Transaction struct {
	ID           string            `json:"id"`
	Kind         TransactionKind   `json:"kind"`
	Timestamp    time.Time         `json:"ts"`
	Note         string            `json:"note,omitempty"`
	AmountCMD    decimal.Decimal   `json:"amountCMD"`
	Category     string            `json:"category,omitempty"`
	Counterparty string            `json:"counterparty,omitempty"`
	Conversion   *ConversionDetail `json:"conversion,omitempty"`
	QR           *QRDetail         `json:"qr,omitempty"`
}

// SignedAmount is the effect of the transaction on the CMD balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Kind {
	case TransactionIncome:
		return t.AmountCMD
	case TransactionQR:
		if t.QR != nil && t.QR.Direction == QRReceive {
			return t.AmountCMD
		}
		return t.AmountCMD.Neg()
	default:
		return t.AmountCMD.Neg()
	}
}

// Ledger is the wallet balance plus its transaction log, newest first.
type Ledger struct {
	Wallet       WalletSnapshot  `json:"wallet"`
	Transactions []Transaction   `json:"txns"`
	SeedTotal    decimal.Decimal `json:"seedTotal"`
	Seeded       bool            `json:"seeded"`
}

func NewLedger(at time.Time) Ledger {
	return Ledger{
		Wallet: WalletSnapshot{
			ID:        PrimaryWalletID,
			CMD:       decimal.Zero,
			KRW:       decimal.Zero,
			UpdatedAt: at,
		},
		SeedTotal: decimal.Zero,
	}
}

// ConversionFee is 1% of the amount with a floor of 1 CMD.
func ConversionFee(amountCMD decimal.Decimal) decimal.Decimal {
	return decimal.Max(amountCMD.Mul(conversionFeeRate), minConversionFee)
}

func (l Ledger) record(wallet WalletSnapshot, txn Transaction) Ledger {
	wallet.UpdatedAt = later(l.Wallet.UpdatedAt, txn.Timestamp)
	txns := make([]Transaction, 0, len(l.Transactions)+1)
	txns = append(txns, txn)
	txns = append(txns, l.Transactions...)
	l.Wallet = wallet
	l.Transactions = txns
	return l
}

func (l Ledger) debit(amountCMD decimal.Decimal) (WalletSnapshot, error) {
	if !amountCMD.IsPositive() {
		return l.Wallet, ErrInvalidAmount
	}
	if l.Wallet.CMD.LessThan(amountCMD) {
		return l.Wallet, ErrInsufficientBalance
	}
	w := l.Wallet
	w.CMD = w.CMD.Sub(amountCMD)
	return w, nil
}

func (l Ledger) AddIncome(s Stamp, category IncomeCategory, amountCMD decimal.Decimal, note string) (Ledger, error) {
	if !amountCMD.IsPositive() {
		return l, ErrInvalidAmount
	}
	w := l.Wallet
	w.CMD = w.CMD.Add(amountCMD)
	return l.record(w, Transaction{
		ID:        s.ID,
		Kind:      TransactionIncome,
		Timestamp: s.At,
		Note:      note,
		AmountCMD: amountCMD,
		Category:  string(category),
	}), nil
}

func (l Ledger) Spend(s Stamp, category ExpenseCategory, amountCMD decimal.Decimal, note, counterparty string) (Ledger, error) {
	w, err := l.debit(amountCMD)
	if err != nil {
		return l, err
	}
	return l.record(w, Transaction{
		ID:           s.ID,
		Kind:         TransactionExpense,
		Timestamp:    s.At,
		Note:         note,
		AmountCMD:    amountCMD,
		Category:     string(category),
		Counterparty: counterparty,
	}), nil
}

// ConvertToKRW burns the fee and credits (amount - fee) * rate KRW.
func (l Ledger) ConvertToKRW(s Stamp, amountCMD, rate decimal.Decimal) (Ledger, error) {
	if !rate.IsPositive() {
		return l, ErrInvalidRate
	}
	w, err := l.debit(amountCMD)
	if err != nil {
		return l, err
	}
	fee := ConversionFee(amountCMD)
	net := amountCMD.Sub(fee)
	if !net.IsPositive() {
		return l, ErrInvalidAmount
	}
	received := net.Mul(rate)
	w.KRW = w.KRW.Add(received)
	return l.record(w, Transaction{
		ID:        s.ID,
		Kind:      TransactionConversion,
		Timestamp: s.At,
		AmountCMD: amountCMD,
		Conversion: &ConversionDetail{
			From:        "CMD",
			To:          "KRW",
			Rate:        rate,
			FeeCMD:      fee,
			ReceivedKRW: received,
		},
	}), nil
}

func (l Ledger) QRSend(s Stamp, amountCMD decimal.Decimal, merchantID string) (Ledger, error) {
	w, err := l.debit(amountCMD)
	if err != nil {
		return l, err
	}
	return l.record(w, Transaction{
		ID:        s.ID,
		Kind:      TransactionQR,
		Timestamp: s.At,
		AmountCMD: amountCMD,
		QR:        &QRDetail{Direction: QRSend, MerchantID: merchantID},
	}), nil
}

func (l Ledger) QRReceive(s Stamp, amountCMD decimal.Decimal, peerWalletID string) (Ledger, error) {
	if !amountCMD.IsPositive() {
		return l, ErrInvalidAmount
	}
	w := l.Wallet
	w.CMD = w.CMD.Add(amountCMD)
	return l.record(w, Transaction{
		ID:        s.ID,
		Kind:      TransactionQR,
		Timestamp: s.At,
		AmountCMD: amountCMD,
		QR:        &QRDetail{Direction: QRReceive, PeerWalletID: peerWalletID},
	}), nil
}

// Filter returns up to limit transactions of the given kind in log order.
// An empty kind matches everything; limit <= 0 means no limit.
func (l Ledger) Filter(kind TransactionKind, limit int) []Transaction {
	out := make([]Transaction, 0)
	for _, t := range l.Transactions {
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

type LedgerAudit struct {
	SeedTotal  decimal.Decimal `json:"seedTotal"`
	NetFlow    decimal.Decimal `json:"netFlow"`
	Expected   decimal.Decimal `json:"expected"`
	Actual     decimal.Decimal `json:"actual"`
	Consistent bool            `json:"consistent"`
}

// Audit checks cmd == seedTotal + the signed sum of every live (non-seed) entry.
func (l Ledger) Audit() LedgerAudit {
	flow := decimal.Zero
	for _, t := range l.Transactions {
		flow = flow.Add(t.SignedAmount())
	}
	if l.Seeded {
		// seeded incomes sit in the log but are already counted in SeedTotal
		flow = flow.Sub(l.SeedTotal)
	}
	expected := l.SeedTotal.Add(flow)
	return LedgerAudit{
		SeedTotal:  l.SeedTotal,
		NetFlow:    flow,
		Expected:   expected,
		Actual:     l.Wallet.CMD,
		Consistent: expected.Equal(l.Wallet.CMD),
	}
}
