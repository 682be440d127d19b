package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

// respond renders a usecase result; shared by every controller.
func respond(ctx *fiber.Ctx, result utils.Result, message string) error {
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, message, fiber.StatusOK, ctx)
}

// parseBody decodes the JSON body; a malformed body is a 400.
func parseBody(ctx *fiber.Ctx, logger log.Log, scope string, request interface{}) error {
	if err := ctx.BodyParser(request); err != nil {
		logger.Error(scope, "Failed to parse request body", "error", err.Error())
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func parseQuery(ctx *fiber.Ctx, logger log.Log, scope string, request interface{}) error {
	if err := ctx.QueryParser(request); err != nil {
		logger.Error(scope, "Failed to parse query", "error", err.Error())
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func idRequest(ctx *fiber.Ctx) *model.IDRequest {
	return &model.IDRequest{ID: ctx.Params("id")}
}

func (c *WalletController) GetWallet(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.GetWallet(ctx.UserContext()), "Wallet")
}

func (c *WalletController) ListTransactions(ctx *fiber.Ctx) error {
	request := new(model.TransactionListRequest)
	if err := parseQuery(ctx, c.Log, "WalletController.ListTransactions", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.ListTransactions(ctx.UserContext(), request), "Transactions")
}

func (c *WalletController) Audit(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Audit(ctx.UserContext()), "Ledger Audit")
}

func (c *WalletController) AddIncome(ctx *fiber.Ctx) error {
	request := new(model.IncomeRequest)
	if err := parseBody(ctx, c.Log, "WalletController.AddIncome", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.AddIncome(ctx.UserContext(), request), "Add Income")
}

func (c *WalletController) Spend(ctx *fiber.Ctx) error {
	request := new(model.SpendRequest)
	if err := parseBody(ctx, c.Log, "WalletController.Spend", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Spend(ctx.UserContext(), request), "Spend")
}

func (c *WalletController) Convert(ctx *fiber.Ctx) error {
	request := new(model.ConvertRequest)
	if err := parseBody(ctx, c.Log, "WalletController.Convert", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.ConvertToKRW(ctx.UserContext(), request), "Convert To KRW")
}

func (c *WalletController) QRSend(ctx *fiber.Ctx) error {
	request := new(model.QRSendRequest)
	if err := parseBody(ctx, c.Log, "WalletController.QRSend", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.QRSend(ctx.UserContext(), request), "QR Send")
}

func (c *WalletController) QRReceive(ctx *fiber.Ctx) error {
	request := new(model.QRReceiveRequest)
	if err := parseBody(ctx, c.Log, "WalletController.QRReceive", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.QRReceive(ctx.UserContext(), request), "QR Receive")
}

type RateController struct {
	Log     log.Log
	UseCase *usecase.RateUseCase
}

func NewRateController(useCase *usecase.RateUseCase, logger log.Log) *RateController {
	return &RateController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RateController) GetRate(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Get(ctx.UserContext()), "Exchange Rate")
}

func (c *RateController) SetRate(ctx *fiber.Ctx) error {
	request := new(model.SetRateRequest)
	if err := parseBody(ctx, c.Log, "RateController.SetRate", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.SetRate(ctx.UserContext(), request), "Set Exchange Rate")
}
