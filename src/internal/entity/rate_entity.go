package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is KRW per 1 CMD.
type ExchangeRate struct {
	Base        string          `json:"base"`
	KRWPerCMD   decimal.Decimal `json:"krwPerCMD"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

func NewExchangeRate(krwPerCMD decimal.Decimal, at time.Time) ExchangeRate {
	return ExchangeRate{Base: "CMD", KRWPerCMD: krwPerCMD, LastUpdated: at}
}

func (r ExchangeRate) Set(krwPerCMD decimal.Decimal, at time.Time) (ExchangeRate, error) {
	if !krwPerCMD.IsPositive() {
		return r, ErrInvalidRate
	}
	r.KRWPerCMD = krwPerCMD
	r.LastUpdated = at
	return r, nil
}
