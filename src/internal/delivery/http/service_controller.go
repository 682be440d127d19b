package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ServiceController struct {
	Log     log.Log
	UseCase *usecase.ServiceUseCase
}

func NewServiceController(useCase *usecase.ServiceUseCase, logger log.Log) *ServiceController {
	return &ServiceController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ServiceController) Get(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Get(ctx.UserContext()), "Service")
}

func (c *ServiceController) SetDischargeDate(ctx *fiber.Ctx) error {
	request := new(model.SetDischargeRequest)
	if err := parseBody(ctx, c.Log, "ServiceController.SetDischargeDate", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.SetDischargeDate(ctx.UserContext(), request), "Set Discharge Date")
}
