package usecase

import (
	"context"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/clock"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DefaultRate is the KRW per CMD a fresh rate store starts with.
var DefaultRate = decimal.NewFromInt(1000)

type RateUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Clock    clock.Clock
	state    *stateHolder[entity.ExchangeRate]
}

func NewRateUseCase(logger log.Log, validate *validator.Validate, store repository.SnapshotStore, clk clock.Clock, initial decimal.Decimal) *RateUseCase {
	if !initial.IsPositive() {
		initial = DefaultRate
	}
	return &RateUseCase{
		Log:      logger,
		Validate: validate,
		Clock:    clk,
		state: newStateHolder(store, entity.SlotRate, func() entity.ExchangeRate {
			return entity.NewExchangeRate(initial, clk.Now())
		}),
	}
}

func (c *RateUseCase) GetRate(ctx context.Context) (decimal.Decimal, error) {
	rate, err := c.state.read(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.KRWPerCMD, nil
}

func (c *RateUseCase) Get(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "GetRate", func(r entity.ExchangeRate) entity.ExchangeRate {
		return r
	})
}

func (c *RateUseCase) SetRate(ctx context.Context, request *model.SetRateRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "SetRate", request); err != nil {
		return utils.Result{Error: err}
	}
	rate, err := c.state.mutate(ctx, func(r entity.ExchangeRate) (entity.ExchangeRate, error) {
		return r.Set(request.KRWPerCMD, c.Clock.Now())
	})
	if err == nil {
		c.Log.Info("SetRate", "exchange rate updated", "rate", rate.KRWPerCMD.String())
	}
	return settle(c.Log, "SetRate", rate, err)
}
