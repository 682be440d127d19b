package usecase

import (
	"context"
	"fmt"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/model/converter"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/clock"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/token"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
)

const TypeInvestmentTick = "investment:tick"

type InvestmentUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	Clock             clock.Clock
	Generator         token.Generator
	LifecycleProducer *messaging.LifecycleProducer
	state             *stateHolder[entity.Portfolio]
}

func NewInvestmentUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.SnapshotStore,
	clk clock.Clock,
	gen token.Generator,
	lifecycleProducer *messaging.LifecycleProducer,
	seedDemo bool,
) *InvestmentUseCase {
	return &InvestmentUseCase{
		Log:               logger,
		Validate:          validate,
		Clock:             clk,
		Generator:         gen,
		LifecycleProducer: lifecycleProducer,
		state: newStateHolder(store, entity.SlotInvest, func() entity.Portfolio {
			if seedDemo {
				return entity.SeedPortfolio(gen, clk.Now())
			}
			return entity.Portfolio{Holdings: []entity.Holding{}}
		}),
	}
}

func portfolioView(p entity.Portfolio) *model.PortfolioResponse {
	holdings := p.Holdings
	if holdings == nil {
		holdings = []entity.Holding{}
	}
	return &model.PortfolioResponse{Holdings: holdings, Summary: p.Summary()}
}

func (c *InvestmentUseCase) Products() utils.Result {
	return utils.Result{Data: entity.Products}
}

func (c *InvestmentUseCase) List(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "ListHoldings", portfolioView)
}

func (c *InvestmentUseCase) Summary(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "PortfolioSummary", entity.Portfolio.Summary)
}

func (c *InvestmentUseCase) published(scope, action, holdingID string) {
	event := converter.StatusEvent(c.Generator.ID(), converter.KindInvestment, holdingID, action, "", c.Clock.Now())
	publish(c.Log, scope, c.LifecycleProducer, (*messaging.LifecycleProducer).SendInvestment, event)
}

func (c *InvestmentUseCase) Invest(ctx context.Context, request *model.InvestRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "Invest", request); err != nil {
		return utils.Result{Error: err}
	}
	var holding entity.Holding
	_, err := c.state.mutate(ctx, func(p entity.Portfolio) (entity.Portfolio, error) {
		next, h, err := p.Invest(entity.Stamp{ID: c.Generator.ID(), At: c.Clock.Now()}, request.ProductID, request.AmountCMD)
		holding = h
		return next, err
	})
	if err == nil {
		c.Log.Info("Invest", "holding opened", holding.ID, holding.Principal.String())
		c.published("Invest", "invest", holding.ID)
	}
	return settle(c.Log, "Invest", holding, err)
}

// Redeem removes the holding outright.
func (c *InvestmentUseCase) Redeem(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "Redeem", request); err != nil {
		return utils.Result{Error: err}
	}
	var holding entity.Holding
	_, err := c.state.mutate(ctx, func(p entity.Portfolio) (entity.Portfolio, error) {
		next, h, err := p.Redeem(request.ID)
		holding = h
		return next, err
	})
	if err == nil {
		c.published("Redeem", "redeem", holding.ID)
	}
	return settle(c.Log, "Redeem", holding, err)
}

// Tick recomputes every accrual from the clock; safe to repeat.
func (c *InvestmentUseCase) Tick(ctx context.Context) utils.Result {
	now := c.Clock.Now()
	portfolio, err := c.state.mutate(ctx, func(p entity.Portfolio) (entity.Portfolio, error) {
		return p.Tick(now), nil
	})
	return settle(c.Log, "Tick", portfolioView(portfolio), err)
}

// HandleTick is the asynq handler for TypeInvestmentTick.
func (c *InvestmentUseCase) HandleTick(ctx context.Context, _ *asynq.Task) error {
	result := c.Tick(ctx)
	if result.Error != nil {
		return fmt.Errorf("investment tick: %w", result.Error)
	}
	c.Log.Info("HandleTick", "accruals recomputed", TypeInvestmentTick, "")
	return nil
}
