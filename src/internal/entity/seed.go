package entity

import (
	"sort"
	"time"

	"wallet-service/src/pkg/token"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// DemoKRW is the KRW balance a seeded wallet starts with.
var DemoKRW = decimal.NewFromInt(50000)

// SeedLedger opens the wallet with four historical incomes; the CMD balance
// equals their total.
func SeedLedger(gen token.Generator, now time.Time) Ledger {
	seeds := []struct {
		category IncomeCategory
		amount   int64
		daysAgo  int
		note     string
	}{
		{IncomeSalary, 1200, 4, "기본급"},
		{IncomeLeaveAllowance, 150, 3, "휴가비"},
		{IncomeRemoteDuty, 200, 2, "격오지 근무 수당"},
		{IncomeBonus, 100, 1, "포상금"},
	}
	txns := make([]Transaction, 0, len(seeds))
	total := decimal.Zero
	for _, s := range seeds {
		amount := decimal.NewFromInt(s.amount)
		total = total.Add(amount)
		txns = append(txns, Transaction{
			ID:        gen.ID(),
			Kind:      TransactionIncome,
			Timestamp: now.Add(-time.Duration(s.daysAgo) * day),
			Note:      s.note,
			AmountCMD: amount,
			Category:  string(s.category),
		})
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Timestamp.After(txns[j].Timestamp)
	})
	return Ledger{
		Wallet: WalletSnapshot{
			ID:        PrimaryWalletID,
			CMD:       total,
			KRW:       DemoKRW,
			UpdatedAt: now,
		},
		Transactions: txns,
		SeedTotal:    total,
		Seeded:       true,
	}
}

func SeedPortfolio(gen token.Generator, now time.Time) Portfolio {
	seeds := []struct {
		productID string
		principal int64
		daysAgo   int
	}{
		{"prod_savings", 800, 30},
		{"prod_fund1", 600, 15},
		{"prod_ai", 400, 7},
	}
	p := Portfolio{Holdings: make([]Holding, 0, len(seeds))}
	for _, s := range seeds {
		product, _ := FindProduct(s.productID)
		investedAt := now.Add(-time.Duration(s.daysAgo) * day)
		principal := decimal.NewFromInt(s.principal)
		p.Holdings = append(p.Holdings, Holding{
			ID:               gen.ID(),
			ProductID:        product.ID,
			ProductName:      product.Name,
			Principal:        principal,
			InvestedAt:       investedAt,
			AccruedReturnCMD: Accrue(principal, product.ExpectedAPR, investedAt, now),
		})
	}
	return p
}

func SeedTraining(gen token.Generator, enc token.Encoder, now time.Time) TrainingLedger {
	drafts := []struct {
		draft   TrainingDraft
		daysAgo int
	}{
		{TrainingDraft{Title: "기초 군사훈련", Level: TrainingBasic, Hours: 120, Institution: "훈련소", Instructor: "교관A"}, 30},
		{TrainingDraft{Title: "야간 전술 향상", Level: TrainingAdvanced, Hours: 40, Institution: "교육대", Instructor: "교관B"}, 10},
	}
	l := TrainingLedger{Records: make([]TrainingRecord, 0, len(drafts))}
	for _, d := range drafts {
		at := now.Add(-time.Duration(d.daysAgo) * day)
		d.draft.CompletedDate = FormatDate(at)
		l.Records = append(l.Records, NewTrainingRecord(gen, enc, Stamp{ID: gen.ID(), At: at}, d.draft))
	}
	return l
}

func SeedLeaves(gen token.Generator, now time.Time) LeaveBook {
	date := func(days int) string { return FormatDate(now.Add(time.Duration(days) * day)) }
	printedAt := now.Add(-16 * day)
	return LeaveBook{Leaves: []LeaveRequest{
		{
			ID: gen.ID(), Purpose: "정기휴가", Origin: "BASE", Destination: "HOME",
			StartDate: date(3), EndDate: date(7), Status: LeaveApproved,
			CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-2 * day),
			OfficerName: "중대장", OfficerContact: "010-1111-2222",
			Transport: &TransportTicket{ID: gen.ID(), Mode: TransportBus},
		},
		{
			ID: gen.ID(), Purpose: "특별위로휴가", Origin: "BASE", Destination: "JEJU",
			StartDate: date(10), EndDate: date(14), Status: LeaveApproved,
			CreatedAt: now.Add(-1 * day), UpdatedAt: now.Add(-1 * day),
			OfficerName: "중대장", OfficerContact: "010-1111-2222",
			Transport: &TransportTicket{ID: gen.ID(), Mode: TransportAir},
		},
		{
			ID: gen.ID(), Purpose: "청원휴가", Origin: "BASE", Destination: "BUSAN",
			StartDate: date(-8), EndDate: date(-4), Status: LeaveCompleted,
			CreatedAt: now.Add(-15 * day), UpdatedAt: now.Add(-4 * day),
			OfficerName: "중대장", OfficerContact: "010-1111-2222",
			Transport: &TransportTicket{ID: gen.ID(), Mode: TransportRail, TicketHash: "DEMOHASH123", PrintedAt: &printedAt},
		},
	}}
}
