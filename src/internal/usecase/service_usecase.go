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
)

type ServiceUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Clock    clock.Clock
	state    *stateHolder[entity.ServiceRecord]
}

func NewServiceUseCase(logger log.Log, validate *validator.Validate, store repository.SnapshotStore, clk clock.Clock) *ServiceUseCase {
	return &ServiceUseCase{
		Log:      logger,
		Validate: validate,
		Clock:    clk,
		state: newStateHolder(store, entity.SlotService, func() entity.ServiceRecord {
			return entity.NewServiceRecord(clk.Now())
		}),
	}
}

func (c *ServiceUseCase) view(r entity.ServiceRecord) *model.ServiceResponse {
	return &model.ServiceResponse{
		DischargeDate: r.DischargeDate,
		DaysRemaining: r.DaysRemaining(c.Clock.Now()),
	}
}

func (c *ServiceUseCase) Get(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "GetService", c.view)
}

func (c *ServiceUseCase) SetDischargeDate(ctx context.Context, request *model.SetDischargeRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "SetDischargeDate", request); err != nil {
		return utils.Result{Error: err}
	}
	record, err := c.state.mutate(ctx, func(r entity.ServiceRecord) (entity.ServiceRecord, error) {
		return r.SetDischargeDate(request.DischargeDate)
	})
	return settle(c.Log, "SetDischargeDate", c.view(record), err)
}
