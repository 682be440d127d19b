package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaveController struct {
	Log     log.Log
	UseCase *usecase.LeaveUseCase
}

func NewLeaveController(useCase *usecase.LeaveUseCase, logger log.Log) *LeaveController {
	return &LeaveController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *LeaveController) List(ctx *fiber.Ctx) error {
	request := new(model.LeaveListRequest)
	if err := parseQuery(ctx, c.Log, "LeaveController.List", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.List(ctx.UserContext(), request), "Leaves")
}

func (c *LeaveController) Request(ctx *fiber.Ctx) error {
	request := new(model.RequestLeaveRequest)
	if err := parseBody(ctx, c.Log, "LeaveController.Request", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Request(ctx.UserContext(), request), "Request Leave")
}

func (c *LeaveController) Approve(ctx *fiber.Ctx) error {
	request := new(model.ApproveRequest)
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, c.Log, "LeaveController.Approve", request); err != nil {
			return utils.ResponseError(err, ctx)
		}
	}
	request.ID = ctx.Params("id")
	return respond(ctx, c.UseCase.Approve(ctx.UserContext(), request), "Approve Leave")
}

func (c *LeaveController) Reject(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Reject(ctx.UserContext(), idRequest(ctx)), "Reject Leave")
}

func (c *LeaveController) Cancel(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Cancel(ctx.UserContext(), idRequest(ctx)), "Cancel Leave")
}

func (c *LeaveController) Complete(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Complete(ctx.UserContext(), idRequest(ctx)), "Complete Leave")
}

func (c *LeaveController) AttachTransport(ctx *fiber.Ctx) error {
	request := new(model.AttachTransportRequest)
	if err := parseBody(ctx, c.Log, "LeaveController.AttachTransport", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	request.ID = ctx.Params("id")
	return respond(ctx, c.UseCase.AttachTransport(ctx.UserContext(), request), "Attach Transport")
}

func (c *LeaveController) PrintTransport(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.PrintTransport(ctx.UserContext(), idRequest(ctx)), "Print Transport")
}

type VoucherController struct {
	Log     log.Log
	UseCase *usecase.VoucherUseCase
}

func NewVoucherController(useCase *usecase.VoucherUseCase, logger log.Log) *VoucherController {
	return &VoucherController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *VoucherController) List(ctx *fiber.Ctx) error {
	request := new(model.VoucherListRequest)
	if err := parseQuery(ctx, c.Log, "VoucherController.List", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.List(ctx.UserContext(), request), "Vouchers")
}

func (c *VoucherController) Request(ctx *fiber.Ctx) error {
	request := new(model.RequestVoucherRequest)
	if err := parseBody(ctx, c.Log, "VoucherController.Request", request); err != nil {
		return utils.ResponseError(err, ctx)
	}
	return respond(ctx, c.UseCase.Request(ctx.UserContext(), request), "Request Voucher")
}

func (c *VoucherController) Approve(ctx *fiber.Ctx) error {
	request := new(model.ApproveRequest)
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, c.Log, "VoucherController.Approve", request); err != nil {
			return utils.ResponseError(err, ctx)
		}
	}
	request.ID = ctx.Params("id")
	return respond(ctx, c.UseCase.Approve(ctx.UserContext(), request), "Approve Voucher")
}

func (c *VoucherController) Print(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Print(ctx.UserContext(), idRequest(ctx)), "Print Voucher")
}

func (c *VoucherController) Use(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.MarkUsed(ctx.UserContext(), idRequest(ctx)), "Use Voucher")
}

func (c *VoucherController) Cancel(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Cancel(ctx.UserContext(), idRequest(ctx)), "Cancel Voucher")
}

func (c *VoucherController) Destroy(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.Destroy(ctx.UserContext(), idRequest(ctx)), "Destroy Voucher")
}

func (c *VoucherController) ExpireSweep(ctx *fiber.Ctx) error {
	return respond(ctx, c.UseCase.ExpireSweep(ctx.UserContext()), "Expire Sweep")
}
