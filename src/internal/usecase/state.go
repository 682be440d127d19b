package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/repository"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// stateHolder owns one store's in-memory state and its persisted slot.
// All access is serialized; the slot is loaded on first use and seeded
// when it does not exist yet.
type stateHolder[S any] struct {
	mu     sync.Mutex
	store  repository.SnapshotStore
	slot   string
	seed   func() S
	state  S
	loaded bool
}

func newStateHolder[S any](store repository.SnapshotStore, slot string, seed func() S) *stateHolder[S] {
	return &stateHolder[S]{store: store, slot: slot, seed: seed}
}

// load must be called with mu held.
func (h *stateHolder[S]) load(ctx context.Context) error {
	if h.loaded {
		return nil
	}
	var s S
	found, err := h.store.Load(ctx, h.slot, &s)
	if err != nil {
		return fmt.Errorf("load %s: %w", h.slot, err)
	}
	if !found {
		s = h.seed()
		if err := h.store.Save(ctx, h.slot, s); err != nil {
			return fmt.Errorf("seed %s: %w", h.slot, err)
		}
	}
	h.state = s
	h.loaded = true
	return nil
}

func (h *stateHolder[S]) read(ctx context.Context) (S, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.load(ctx); err != nil {
		var zero S
		return zero, err
	}
	return h.state, nil
}

// mutate applies fn and persists its result before swapping it in. When fn
// fails or the save fails, the current state is returned unchanged.
func (h *stateHolder[S]) mutate(ctx context.Context, fn func(S) (S, error)) (S, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.load(ctx); err != nil {
		var zero S
		return zero, err
	}
	next, err := fn(h.state)
	if err != nil {
		return h.state, err
	}
	if err := h.store.Save(ctx, h.slot, next); err != nil {
		return h.state, fmt.Errorf("save %s: %w", h.slot, err)
	}
	h.state = next
	return next, nil
}

func validateRequest(v *validator.Validate, logger log.Log, scope string, request interface{}) error {
	if err := v.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		errObj.Err = err
		logger.Error(scope+"-validation", err.Error(), "request", utils.ConvertString(request))
		return errObj
	}
	return nil
}

// settle maps a command outcome onto a Result: rejections are reported in
// the body, insufficient balance is a 422 and anything else a 500.
func settle[T any](logger log.Log, scope string, record T, err error) utils.Result {
	var result utils.Result
	switch {
	case err == nil:
		result.Data = model.Applied(record)
	case entity.IsRejection(err):
		logger.Info(scope, "command rejected", "rejection", err.Error())
		result.Data = model.Rejected(err, record)
	case errors.Is(err, entity.ErrInsufficientBalance):
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = err.Error()
		errObj.Err = err
		logger.Error(scope, err.Error(), "insufficient-balance", "")
		result.Error = errObj
	default:
		result.Error = internalError(logger, scope, err)
	}
	return result
}

func internalError(logger log.Log, scope string, err error) error {
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("state store: %v", err)
	errObj.Err = err
	logger.Error(scope, errObj.Message, "persistence", "")
	return errObj
}

func readResult[S any, T any](ctx context.Context, h *stateHolder[S], logger log.Log, scope string, view func(S) T) utils.Result {
	var result utils.Result
	state, err := h.read(ctx)
	if err != nil {
		result.Error = internalError(logger, scope, err)
		return result
	}
	result.Data = view(state)
	return result
}

type statusSender func(*messaging.LifecycleProducer, *model.StatusEvent) error

// publish sends a lifecycle event best-effort; failures are only logged.
func publish(logger log.Log, scope string, producer *messaging.LifecycleProducer, send statusSender, event *model.StatusEvent) {
	if producer == nil {
		return
	}
	if err := send(producer, event); err != nil {
		logger.Error(scope, "failed to publish status event", "kafka", err.Error())
	}
}
