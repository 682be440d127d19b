package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type IdentityController struct {
	Log     log.Log
	UseCase *usecase.IdentityUseCase
}

func NewIdentityController(useCase *usecase.IdentityUseCase, logger log.Log) *IdentityController {
	return &IdentityController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *IdentityController) GetIdentity(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Get(ctx.UserContext()), "Identity")
}

func (c *IdentityController) Mint(ctx *fiber.Ctx) error {
	request := new(model.MintIdentityRequest)
	if err := parseBody(ctx, c.Log, "IdentityController.Mint", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Mint(ctx.UserContext(), request), "Mint Identity")
}

func (c *IdentityController) Verify(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Verify(ctx.UserContext()), "Verify Identity")
}

func (c *IdentityController) Revoke(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Revoke(ctx.UserContext()), "Revoke Identity")
}

func (c *IdentityController) Sign(ctx *fiber.Ctx) error {
	request := new(model.SignRequest)
	if err := parseBody(ctx, c.Log, "IdentityController.Sign", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Sign(ctx.UserContext(), request), "Sign Proof")
}

func (c *IdentityController) VerifySignature(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.VerifySignature(ctx.UserContext(), idRequest(ctx)), "Verify Signature")
}

func (c *IdentityController) DeleteSignature(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.DeleteSignature(ctx.UserContext(), idRequest(ctx)), "Delete Signature")
}

type TrainingController struct {
	Log     log.Log
	UseCase *usecase.TrainingUseCase
}

func NewTrainingController(useCase *usecase.TrainingUseCase, logger log.Log) *TrainingController {
	return &TrainingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TrainingController) List(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.List(ctx.UserContext()), "Training Records")
}

func (c *TrainingController) Mint(ctx *fiber.Ctx) error {
	request := new(model.MintTrainingRequest)
	if err := parseBody(ctx, c.Log, "TrainingController.Mint", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Mint(ctx.UserContext(), request), "Mint Training")
}

func (c *TrainingController) Revoke(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Revoke(ctx.UserContext(), idRequest(ctx)), "Revoke Training")
}
