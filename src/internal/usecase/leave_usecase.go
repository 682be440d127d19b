package usecase

import (
	"context"
	"time"

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

type LeaveUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	Clock             clock.Clock
	Generator         token.Generator
	Encoder           token.Encoder
	LifecycleProducer *messaging.LifecycleProducer
	state             *stateHolder[entity.LeaveBook]
}

func NewLeaveUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.SnapshotStore,
	clk clock.Clock,
	gen token.Generator,
	enc token.Encoder,
	lifecycleProducer *messaging.LifecycleProducer,
	seedDemo bool,
) *LeaveUseCase {
	return &LeaveUseCase{
		Log:               logger,
		Validate:          validate,
		Clock:             clk,
		Generator:         gen,
		Encoder:           enc,
		LifecycleProducer: lifecycleProducer,
		state: newStateHolder(store, entity.SlotLeave, func() entity.LeaveBook {
			if seedDemo {
				return entity.SeedLeaves(gen, clk.Now())
			}
			return entity.LeaveBook{Leaves: []entity.LeaveRequest{}}
		}),
	}
}

func (c *LeaveUseCase) List(ctx context.Context, request *model.LeaveListRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "ListLeaves", request); err != nil {
		return utils.Result{Error: err}
	}
	return readResult(ctx, c.state, c.Log, "ListLeaves", func(b entity.LeaveBook) *model.LeaveListResponse {
		return converter.LeavesToResponse(b.Filter(entity.LeaveStatus(request.Status)))
	})
}

type leaveCommand func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error)

// apply runs one leave command and announces the resulting status.
func (c *LeaveUseCase) apply(ctx context.Context, scope, action string, cmd leaveCommand) utils.Result {
	var leave entity.LeaveRequest
	_, err := c.state.mutate(ctx, func(b entity.LeaveBook) (entity.LeaveBook, error) {
		next, l, err := cmd(b, c.Clock.Now())
		leave = l
		return next, err
	})
	if err == nil {
		c.Log.Info(scope, "leave "+action, leave.ID, string(leave.Status))
		publish(c.Log, scope, c.LifecycleProducer, (*messaging.LifecycleProducer).SendLeave, converter.LeaveToEvent(c.Generator.ID(), action, leave))
	}
	return settle(c.Log, scope, leave, err)
}

func (c *LeaveUseCase) Request(ctx context.Context, request *model.RequestLeaveRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "RequestLeave", request); err != nil {
		return utils.Result{Error: err}
	}
	draft := converter.RequestToLeaveDraft(request)
	return c.apply(ctx, "RequestLeave", "request", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.Request(entity.Stamp{ID: c.Generator.ID(), At: at}, draft, c.Generator.ID())
	})
}

func (c *LeaveUseCase) Approve(ctx context.Context, request *model.ApproveRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "ApproveLeave", request); err != nil {
		return utils.Result{Error: err}
	}
	officer := converter.ApproveToOfficer(request)
	return c.apply(ctx, "ApproveLeave", "approve", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.Approve(request.ID, officer, at)
	})
}

func (c *LeaveUseCase) Reject(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "RejectLeave", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "RejectLeave", "reject", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.Reject(request.ID, at)
	})
}

func (c *LeaveUseCase) Cancel(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "CancelLeave", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "CancelLeave", "cancel", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.Cancel(request.ID, at)
	})
}

func (c *LeaveUseCase) Complete(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "CompleteLeave", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "CompleteLeave", "complete", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.Complete(request.ID, at)
	})
}

func (c *LeaveUseCase) AttachTransport(ctx context.Context, request *model.AttachTransportRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "AttachTransport", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "AttachTransport", "attach-transport", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.AttachTransport(request.ID, entity.TransportMode(request.Mode), c.Generator.ID(), at)
	})
}

func (c *LeaveUseCase) PrintTransport(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "PrintTransport", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "PrintTransport", "print-transport", func(b entity.LeaveBook, at time.Time) (entity.LeaveBook, entity.LeaveRequest, error) {
		return b.PrintTransport(c.Encoder, request.ID, at)
	})
}
