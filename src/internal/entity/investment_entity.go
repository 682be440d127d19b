package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Risk string

const (
	RiskLow  Risk = "low"
	RiskMid  Risk = "mid"
	RiskHigh Risk = "high"
)

type InvestmentProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	ExpectedAPR decimal.Decimal `json:"expectedAPR"`
	Risk        Risk            `json:"risk"`
}

// Products is the fixed catalog holdings are opened against.
var Products = []InvestmentProduct{
	{ID: "prod_savings", Name: "단기 적금", Category: "savings", ExpectedAPR: decimal.RequireFromString("4.0"), Risk: RiskLow},
	{ID: "prod_fund1", Name: "국방 인프라 펀드", Category: "fund", ExpectedAPR: decimal.RequireFromString("7.5"), Risk: RiskMid},
	{ID: "prod_green", Name: "친환경 에너지 채권", Category: "bond", ExpectedAPR: decimal.RequireFromString("5.2"), Risk: RiskLow},
	{ID: "prod_ai", Name: "AI 전략 펀드", Category: "fund", ExpectedAPR: decimal.RequireFromString("12.0"), Risk: RiskHigh},
}

func FindProduct(id string) (InvestmentProduct, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return InvestmentProduct{}, false
}

type Holding struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	Principal        decimal.Decimal `json:"principal"`
	InvestedAt       time.Time       `json:"investedAt"`
	AccruedReturnCMD decimal.Decimal `json:"accruedReturnCMD"`
}

type Portfolio struct {
	Holdings []Holding `json:"holdings"`
}

type PortfolioSummary struct {
	Holdings       int             `json:"holdings"`
	TotalPrincipal decimal.Decimal `json:"totalPrincipal"`
	TotalAccrued   decimal.Decimal `json:"totalAccrued"`
	TotalValue     decimal.Decimal `json:"totalValue"`
}

var accrualDenominator = decimal.NewFromInt(100 * 365).Mul(decimal.NewFromInt(int64(24 * time.Hour)))

// Accrue is simple pro-rata interest: principal * apr/100 * days/365.
// Elapsed time before investedAt counts as zero.
func Accrue(principal, apr decimal.Decimal, investedAt, now time.Time) decimal.Decimal {
	elapsed := now.Sub(investedAt)
	if elapsed <= 0 {
		return decimal.Zero
	}
	return principal.Mul(apr).Mul(decimal.NewFromInt(int64(elapsed))).Div(accrualDenominator)
}

func (p Portfolio) Invest(s Stamp, productID string, amountCMD decimal.Decimal) (Portfolio, Holding, error) {
	if !amountCMD.IsPositive() {
		return p, Holding{}, ErrInvalidAmount
	}
	product, ok := FindProduct(productID)
	if !ok {
		return p, Holding{}, ErrUnknownProduct
	}
	h := Holding{
		ID:               s.ID,
		ProductID:        product.ID,
		ProductName:      product.Name,
		Principal:        amountCMD,
		InvestedAt:       s.At,
		AccruedReturnCMD: decimal.Zero,
	}
	holdings := make([]Holding, 0, len(p.Holdings)+1)
	holdings = append(holdings, h)
	holdings = append(holdings, p.Holdings...)
	p.Holdings = holdings
	return p, h, nil
}

func (p Portfolio) Redeem(id string) (Portfolio, Holding, error) {
	for i, h := range p.Holdings {
		if h.ID != id {
			continue
		}
		holdings := make([]Holding, 0, len(p.Holdings)-1)
		holdings = append(holdings, p.Holdings[:i]...)
		holdings = append(holdings, p.Holdings[i+1:]...)
		p.Holdings = holdings
		return p, h, nil
	}
	return p, Holding{}, ErrNotFound
}

// Tick recomputes every accrual from now; principal is never touched.
// Holdings whose product left the catalog keep their last value.
func (p Portfolio) Tick(now time.Time) Portfolio {
	holdings := make([]Holding, len(p.Holdings))
	for i, h := range p.Holdings {
		if product, ok := FindProduct(h.ProductID); ok {
			h.AccruedReturnCMD = Accrue(h.Principal, product.ExpectedAPR, h.InvestedAt, now)
		}
		holdings[i] = h
	}
	p.Holdings = holdings
	return p
}

func (p Portfolio) Summary() PortfolioSummary {
	sum := PortfolioSummary{
		Holdings:       len(p.Holdings),
		TotalPrincipal: decimal.Zero,
		TotalAccrued:   decimal.Zero,
	}
	for _, h := range p.Holdings {
		sum.TotalPrincipal = sum.TotalPrincipal.Add(h.Principal)
		sum.TotalAccrued = sum.TotalAccrued.Add(h.AccruedReturnCMD)
	}
	sum.TotalValue = sum.TotalPrincipal.Add(sum.TotalAccrued)
	return sum
}
