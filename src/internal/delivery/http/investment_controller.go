package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type InvestmentController struct {
	Log     log.Log
	UseCase *usecase.InvestmentUseCase
}

func NewInvestmentController(useCase *usecase.InvestmentUseCase, logger log.Log) *InvestmentController {
	return &InvestmentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *InvestmentController) Products(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Products(), "Investment Products")
}

func (c *InvestmentController) List(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.List(ctx.UserContext()), "Holdings")
}

func (c *InvestmentController) Summary(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Summary(ctx.UserContext()), "Portfolio Summary")
}

func (c *InvestmentController) Invest(ctx *fiber.Ctx) error {
	request := new(model.InvestRequest)
	if err := parseBody(ctx, c.Log, "InvestmentController.Invest", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Invest(ctx.UserContext(), request), "Invest")
}

func (c *InvestmentController) Redeem(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Redeem(ctx.UserContext(), idRequest(ctx)), "Redeem")
}

func (c *InvestmentController) Tick(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Tick(ctx.UserContext()), "Accrual Tick")
}
