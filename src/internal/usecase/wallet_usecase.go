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
	"github.com/shopspring/decimal"
)

// RateProvider supplies the KRW per CMD rate at the moment of conversion.
type RateProvider interface {
	GetRate(ctx context.Context) (decimal.Decimal, error)
}

type WalletUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Clock          clock.Clock
	Generator      token.Generator
	Rates          RateProvider
	WalletProducer *messaging.WalletProducer
	state          *stateHolder[entity.Ledger]
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	store repository.SnapshotStore,
	clk clock.Clock,
	gen token.Generator,
	rates RateProvider,
	walletProducer *messaging.WalletProducer,
	seedDemo bool,
) *WalletUseCase {
	return &WalletUseCase{
		Log:            logger,
		Validate:       validate,
		Clock:          clk,
		Generator:      gen,
		Rates:          rates,
		WalletProducer: walletProducer,
		state: newStateHolder(store, entity.SlotWallet, func() entity.Ledger {
			if seedDemo {
				return entity.SeedLedger(gen, clk.Now())
			}
			return entity.NewLedger(clk.Now())
		}),
	}
}

func (c *WalletUseCase) stamp() entity.Stamp {
	return entity.Stamp{ID: c.Generator.ID(), At: c.Clock.Now()}
}

func (c *WalletUseCase) GetWallet(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "GetWallet", func(l entity.Ledger) *model.WalletResponse {
		return converter.LedgerToResponse(l, false)
	})
}

func (c *WalletUseCase) ListTransactions(ctx context.Context, request *model.TransactionListRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "ListTransactions", request); err != nil {
		return utils.Result{Error: err}
	}
	return readResult(ctx, c.state, c.Log, "ListTransactions", func(l entity.Ledger) *model.TransactionListResponse {
		return converter.TransactionsToResponse(l.Filter(entity.TransactionKind(request.Kind), request.Limit))
	})
}

func (c *WalletUseCase) Audit(ctx context.Context) utils.Result {
	return readResult(ctx, c.state, c.Log, "Audit", func(l entity.Ledger) entity.LedgerAudit {
		return l.Audit()
	})
}

// apply runs a ledger command and publishes the new head transaction when it lands.
func (c *WalletUseCase) apply(ctx context.Context, scope string, cmd func(entity.Ledger) (entity.Ledger, error)) utils.Result {
	ledger, err := c.state.mutate(ctx, cmd)
	if err == nil {
		c.Log.Info(scope, "wallet updated", ledger.Transactions[0].ID, ledger.Wallet.CMD.String())
		if c.WalletProducer != nil {
			if sendErr := c.WalletProducer.Send(converter.LedgerToEvent(c.Generator.ID(), ledger)); sendErr != nil {
				c.Log.Error(scope, "failed to publish wallet event", "kafka", sendErr.Error())
			}
		}
	}
	return settle(c.Log, scope, converter.LedgerToResponse(ledger, err == nil), err)
}

func (c *WalletUseCase) AddIncome(ctx context.Context, request *model.IncomeRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "AddIncome", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "AddIncome", func(l entity.Ledger) (entity.Ledger, error) {
		return l.AddIncome(c.stamp(), entity.IncomeCategory(request.Category), request.AmountCMD, request.Note)
	})
}

func (c *WalletUseCase) Spend(ctx context.Context, request *model.SpendRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "Spend", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "Spend", func(l entity.Ledger) (entity.Ledger, error) {
		return l.Spend(c.stamp(), entity.ExpenseCategory(request.Category), request.AmountCMD, request.Note, request.Counterparty)
	})
}

// ConvertToKRW reads the rate at call time; it is never cached.
func (c *WalletUseCase) ConvertToKRW(ctx context.Context, request *model.ConvertRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "ConvertToKRW", request); err != nil {
		return utils.Result{Error: err}
	}
	rate, err := c.Rates.GetRate(ctx)
	if err != nil {
		return utils.Result{Error: internalError(c.Log, "ConvertToKRW", err)}
	}
	return c.apply(ctx, "ConvertToKRW", func(l entity.Ledger) (entity.Ledger, error) {
		return l.ConvertToKRW(c.stamp(), request.AmountCMD, rate)
	})
}

func (c *WalletUseCase) QRSend(ctx context.Context, request *model.QRSendRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "QRSend", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "QRSend", func(l entity.Ledger) (entity.Ledger, error) {
		return l.QRSend(c.stamp(), request.AmountCMD, request.MerchantID)
	})
}

func (c *WalletUseCase) QRReceive(ctx context.Context, request *model.QRReceiveRequest) utils.Result {
	if err := validateRequest(c.Validate, c.Log, "QRReceive", request); err != nil {
		return utils.Result{Error: err}
	}
	return c.apply(ctx, "QRReceive", func(l entity.Ledger) (entity.Ledger, error) {
		return l.QRReceive(c.stamp(), request.AmountCMD, request.PeerWalletID)
	})
}
