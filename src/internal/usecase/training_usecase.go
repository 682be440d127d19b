package usecase

import (
	"context"

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
)

type TrainingUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	Clock             clock.Clock
	Generator         token.Generator
	Encoder           token.Encoder
	LifecycleProducer *messaging.LifecycleProducer
	state             *stateHolder[entity.TrainingLedger]
}

func NewTrainingUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.SnapshotStore,
	clk clock.Clock,
	gen token.Generator,
	enc token.Encoder,
	lifecycleProducer *messaging.LifecycleProducer,
	seedDemo bool,
) *TrainingUseCase {
	return &TrainingUseCase{
		Log:               logger,
		Validate:          validate,
		Clock:             clk,
		Generator:         gen,
		Encoder:           enc,
		LifecycleProducer: lifecycleProducer,
		state: newStateHolder(store, entity.SlotTraining, func() entity.TrainingLedger {
			if seedDemo {
				return entity.SeedTraining(gen, enc, clk.Now())
			}
			return entity.TrainingLedger{Records: []entity.TrainingRecord{}}
		}),
	}
}

func (c *TrainingUseCase) List(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "ListTraining", converter.TrainingToResponse)
}

func (c *TrainingUseCase) Mint(ctx context.Context, request *model.MintTrainingRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "MintTraining", request); err != nil {
		return utils.Result{Error: err}
	}
	var record entity.TrainingRecord
	_, err := c.state.mutate(ctx, func(l entity.TrainingLedger) (entity.TrainingLedger, error) {
		stamp := entity.Stamp{ID: c.Generator.ID(), At: c.Clock.Now()}
		record = entity.NewTrainingRecord(c.Generator, c.Encoder, stamp, converter.RequestToTrainingDraft(request))
		return l.Mint(record), nil
	})
	if err == nil {
		c.Log.Info("MintTraining", "training minted", record.ID, record.Title)
		event := converter.StatusEvent(c.Generator.ID(), converter.KindTraining, record.ID, "mint", string(record.Status), record.NFT.IssuedAt)
		publish(c.Log, "MintTraining", c.LifecycleProducer, (*messaging.LifecycleProducer).SendTraining, event)
	}
	return settle(c.Log, "MintTraining", record, err)
}

// Revoke flips the record to revoked; it stays in the ledger.
func (c *TrainingUseCase) Revoke(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "RevokeTraining", request); err != nil {
		return utils.Result{Error: err}
	}
	var record entity.TrainingRecord
	_, err := c.state.mutate(ctx, func(l entity.TrainingLedger) (entity.TrainingLedger, error) {
		next, rec, err := l.Revoke(request.ID)
		record = rec
		return next, err
	})
	if err == nil {
		event := converter.StatusEvent(c.Generator.ID(), converter.KindTraining, record.ID, "revoke", string(record.Status), c.Clock.Now())
		publish(c.Log, "RevokeTraining", c.LifecycleProducer, (*messaging.LifecycleProducer).SendTraining, event)
	}
	return settle(c.Log, "RevokeTraining", record, err)
}
