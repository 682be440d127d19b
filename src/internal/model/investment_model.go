package model

import (
	"wallet-service/src/internal/entity"

	"github.com/shopspring/decimal"
)

type InvestRequest struct {
	ProductID string          `json:"productId" validate:"required,max=64"`
	AmountCMD decimal.Decimal `json:"amountCMD"`
}

type PortfolioResponse struct {
	Holdings []entity.Holding        `json:"holdings"`
	Summary  entity.PortfolioSummary `json:"summary"`
}
