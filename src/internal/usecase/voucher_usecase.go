package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
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
	"github.com/hibiken/asynq"
)

const TypeVoucherExpireSweep = "voucher:expire-sweep"

// errNothingExpired short-circuits a sweep that would not change the book.
var errNothingExpired = errors.New("nothing expired")

type VoucherUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	Clock             clock.Clock
	Generator         token.Generator
	Encoder           token.Encoder
	LifecycleProducer *messaging.LifecycleProducer
	state             *stateHolder[entity.VoucherBook]
}

func NewVoucherUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.SnapshotStore,
	clk clock.Clock,
	gen token.Generator,
	enc token.Encoder,
	lifecycleProducer *messaging.LifecycleProducer,
) *VoucherUseCase {
	return &VoucherUseCase{
		Log:               logger,
		Validate:          validate,
		Clock:             clk,
		Generator:         gen,
		Encoder:           enc,
		LifecycleProducer: lifecycleProducer,
		state: newStateHolder(store, entity.SlotVoucher, func() entity.VoucherBook {
			return entity.VoucherBook{Vouchers: []entity.Voucher{}}
		}),
	}
}

func (c *VoucherUseCase) List(ctx context.Context, request *model.VoucherListRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "ListVouchers", request); err != nil {
		return utils.Result{Error: err}
	}
	return readResult(ctx, c.state, c.Log, "ListVouchers", func(b entity.VoucherBook) *model.VoucherListResponse {
		return converter.VouchersToResponse(b.Filter(entity.VoucherStatus(request.Status)))
	})
}

type voucherCommand func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error)

func (c *VoucherUseCase) apply(ctx context.Context, scope, action string, cmd voucherCommand) utils.Result {
	var voucher entity.Voucher
	_, err := c.state.mutate(ctx, func(b entity.VoucherBook) (entity.VoucherBook, error) {
		next, v, err := cmd(b, c.Clock.Now())
		voucher = v
		return next, err
	})
	if err == nil {
		c.Log.Info(scope, "voucher "+action, voucher.ID, string(voucher.Status))
		publish(c.Log, scope, c.LifecycleProducer, (*messaging.LifecycleProducer).SendVoucher, converter.VoucherToEvent(c.Generator.ID(), action, voucher))
	}
	return settle(c.Log, scope, voucher, err)
}

func (c *VoucherUseCase) Request(ctx context.Context, request *model.RequestVoucherRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "RequestVoucher", request); err != nil {
		return utils.Result{Error: err}
	}
	draft := converter.RequestToVoucherDraft(request)
	return c.apply(ctx, "RequestVoucher", "request", func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error) {
		return b.Request(entity.Stamp{ID: c.Generator.ID(), At: at}, draft)
	})
}

func (c *VoucherUseCase) Approve(ctx context.Context, request *model.ApproveRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "ApproveVoucher", request); err != nil {
		return utils.Result{Error: err}
	}
	officer := converter.ApproveToOfficer(request)
	return c.apply(ctx, "ApproveVoucher", "approve", func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error) {
		return b.Approve(request.ID, officer, at)
	})
}

func (c *VoucherUseCase) Print(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "PrintVoucher", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "PrintVoucher", "print", func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error) {
		return b.Print(c.Encoder, request.ID, at)
	})
}

func (c *VoucherUseCase) MarkUsed(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "UseVoucher", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "UseVoucher", "use", func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error) {
		return b.MarkUsed(request.ID, at)
	})
}

func (c *VoucherUseCase) Cancel(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "CancelVoucher", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "CancelVoucher", "cancel", func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error) {
		return b.Cancel(request.ID, at)
	})
}

func (c *VoucherUseCase) Destroy(ctx context.Context, request *model.IDRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "DestroyVoucher", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "DestroyVoucher", "destroy", func(b entity.VoucherBook, at time.Time) (entity.VoucherBook, entity.Voucher, error) {
		return b.Destroy(request.ID, at)
	})
}

// ExpireSweep moves overdue printed vouchers to expired. The store is only
// written when something expired.
func (c *VoucherUseCase) ExpireSweep(ctx context.Context) utils.Result {
	now := c.Clock.Now()
	var expired []string
	book, err := c.state.mutate(ctx, func(b entity.VoucherBook) (entity.VoucherBook, error) {
		next, ids := b.ExpireSweep(now)
		if len(ids) == 0 {
			return b, errNothingExpired
		}
		expired = ids
		return next, nil
	})
	if errors.Is(err, errNothingExpired) {
		return utils.Result{Data: model.Applied(&model.SweepResponse{Expired: []string{}})}
	}
	if err == nil {
		c.Log.Info("ExpireSweep", "vouchers expired", "ids", strings.Join(expired, ","))
		for _, id := range expired {
			if v, ok := book.Get(id); ok {
				publish(c.Log, "ExpireSweep", c.LifecycleProducer, (*messaging.LifecycleProducer).SendVoucher, converter.VoucherToEvent(c.Generator.ID(), "expire", v))
			}
		}
	}
	return settle(c.Log, "ExpireSweep", &model.SweepResponse{Expired: expired}, err)
}

// HandleExpireSweep is the asynq handler for TypeVoucherExpireSweep.
func (c *VoucherUseCase) HandleExpireSweep(ctx context.Context, _ *asynq.Task) error {
	result := c.ExpireSweep(ctx)
	if result.Error != nil {
		return fmt.Errorf("voucher expire sweep: %w", result.Error)
	}
	return nil
}
