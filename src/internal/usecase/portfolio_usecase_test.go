package usecase

import (
	"context"
	"testing"
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingMintAndRevoke(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewTrainingUseCase(f.log, f.validate, f.store, f.clock, f.gen, f.enc, f.lifecycle, true)

	m := mutation[entity.TrainingRecord](t, uc.Mint(ctx, &model.MintTrainingRequest{
		Title: "응급처치", Level: "심화", Hours: 16, CompletedDate: "2026-02-27",
	}))
	require.True(t, m.Applied)
	assert.Equal(t, entity.TrainingCompleted, m.Record.Status)

	list := uc.List(ctx).Data.(*model.TrainingListResponse)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, m.Record.ID, list.Records[0].ID)

	m = mutation[entity.TrainingRecord](t, uc.Revoke(ctx, &model.IDRequest{ID: m.Record.ID}))
	require.True(t, m.Applied)
	assert.Equal(t, entity.TrainingRevoked, m.Record.Status)

	m = mutation[entity.TrainingRecord](t, uc.Revoke(ctx, &model.IDRequest{ID: m.Record.ID}))
	assert.False(t, m.Applied)
	assert.Equal(t, 3, uc.List(ctx).Data.(*model.TrainingListResponse).Count)

	assert.Equal(t, []string{messaging.TopicTrainingEvent, messaging.TopicTrainingEvent}, f.kafka.topics())
}

func TestInvestmentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewInvestmentUseCase(f.log, f.validate, f.store, f.clock, f.gen, f.lifecycle, false)

	m := mutation[entity.Holding](t, uc.Invest(ctx, &model.InvestRequest{ProductID: "prod_unknown", AmountCMD: decimal.NewFromInt(10)}))
	assert.False(t, m.Applied)
	assert.Equal(t, entity.ErrUnknownProduct.Error(), m.Reason)

	m = mutation[entity.Holding](t, uc.Invest(ctx, &model.InvestRequest{ProductID: "prod_ai", AmountCMD: decimal.NewFromInt(365)}))
	require.True(t, m.Applied)
	id := m.Record.ID

	f.clock.Advance(10 * 24 * time.Hour)
	tick := mutation[*model.PortfolioResponse](t, uc.Tick(ctx))
	require.True(t, tick.Applied)
	// 365 * 12% * 10/365
	assert.True(t, decimal.RequireFromString("1.2").Equal(tick.Record.Holdings[0].AccruedReturnCMD), tick.Record.Holdings[0].AccruedReturnCMD.String())

	require.NoError(t, uc.HandleTick(ctx, nil))
	sum := uc.Summary(ctx).Data.(entity.PortfolioSummary)
	assert.Equal(t, 1, sum.Holdings)
	assert.True(t, decimal.RequireFromString("366.2").Equal(sum.TotalValue))

	m = mutation[entity.Holding](t, uc.Redeem(ctx, &model.IDRequest{ID: id}))
	require.True(t, m.Applied)
	portfolio := uc.List(ctx).Data.(*model.PortfolioResponse)
	assert.Empty(t, portfolio.Holdings)

	products := uc.Products().Data.([]entity.InvestmentProduct)
	assert.Len(t, products, 4)
}

func TestServiceDischargeDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewServiceUseCase(f.log, f.validate, f.store, f.clock)

	got := uc.Get(ctx).Data.(*model.ServiceResponse)
	assert.Equal(t, "2026-08-28", got.DischargeDate)
	assert.Equal(t, 180, got.DaysRemaining)

	m := mutation[*model.ServiceResponse](t, uc.SetDischargeDate(ctx, &model.SetDischargeRequest{DischargeDate: "someday"}))
	assert.False(t, m.Applied)
	assert.Equal(t, "2026-08-28", m.Record.DischargeDate)

	m = mutation[*model.ServiceResponse](t, uc.SetDischargeDate(ctx, &model.SetDischargeRequest{DischargeDate: "2026-03-11"}))
	require.True(t, m.Applied)
	assert.Equal(t, 10, m.Record.DaysRemaining)
}
