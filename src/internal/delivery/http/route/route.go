package route

import (
	"wallet-service/src/internal/delivery/http"
	"wallet-service/src/internal/delivery/http/middleware"
	"wallet-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                  *fiber.App
	Log                  log.Log
	WalletController     *http.WalletController
	RateController       *http.RateController
	IdentityController   *http.IdentityController
	TrainingController   *http.TrainingController
	InvestmentController *http.InvestmentController
	LeaveController      *http.LeaveController
	VoucherController    *http.VoucherController
	ServiceController    *http.ServiceController
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupApiRoute()
}

func (c *RouteConfig) SetupApiRoute() {
	api := c.App.Group("/api/v1")

	api.Get("/wallet", c.WalletController.GetWallet)
	api.Get("/wallet/transactions", c.WalletController.ListTransactions)
	api.Get("/wallet/audit", c.WalletController.Audit)
	api.Post("/wallet/income", c.WalletController.AddIncome)
	api.Post("/wallet/spend", c.WalletController.Spend)
	api.Post("/wallet/convert", c.WalletController.Convert)
	api.Post("/wallet/qr/send", c.WalletController.QRSend)
	api.Post("/wallet/qr/receive", c.WalletController.QRReceive)

	api.Get("/rate", c.RateController.GetRate)
	api.Put("/rate", c.RateController.SetRate)

	api.Get("/identity", c.IdentityController.GetIdentity)
	api.Post("/identity/mint", c.IdentityController.Mint)
	api.Post("/identity/verify", c.IdentityController.Verify)
	api.Post("/identity/revoke", c.IdentityController.Revoke)
	api.Post("/identity/signatures", c.IdentityController.Sign)
	api.Post("/identity/signatures/:id/verify", c.IdentityController.VerifySignature)
	api.Delete("/identity/signatures/:id", c.IdentityController.DeleteSignature)

	api.Get("/trainings", c.TrainingController.List)
	api.Post("/trainings", c.TrainingController.Mint)
	api.Post("/trainings/:id/revoke", c.TrainingController.Revoke)

	api.Get("/investments/products", c.InvestmentController.Products)
	api.Get("/investments/summary", c.InvestmentController.Summary)
	api.Get("/investments", c.InvestmentController.List)
	api.Post("/investments", c.InvestmentController.Invest)
	api.Post("/investments/tick", c.InvestmentController.Tick)
	api.Delete("/investments/:id", c.InvestmentController.Redeem)

	api.Get("/leaves", c.LeaveController.List)
	api.Post("/leaves", c.LeaveController.Request)
	api.Post("/leaves/:id/approve", c.LeaveController.Approve)
	api.Post("/leaves/:id/reject", c.LeaveController.Reject)
	api.Post("/leaves/:id/cancel", c.LeaveController.Cancel)
	api.Post("/leaves/:id/complete", c.LeaveController.Complete)
	api.Post("/leaves/:id/print", c.LeaveController.PrintTransport)
	api.Put("/leaves/:id/transport", c.LeaveController.AttachTransport)

	api.Get("/vouchers", c.VoucherController.List)
	api.Post("/vouchers", c.VoucherController.Request)
	api.Post("/vouchers/expire-sweep", c.VoucherController.ExpireSweep)
	api.Post("/vouchers/:id/approve", c.VoucherController.Approve)
	api.Post("/vouchers/:id/print", c.VoucherController.Print)
	api.Post("/vouchers/:id/use", c.VoucherController.Use)
	api.Post("/vouchers/:id/cancel", c.VoucherController.Cancel)
	api.Post("/vouchers/:id/destroy", c.VoucherController.Destroy)

	api.Get("/service", c.ServiceController.Get)
	api.Put("/service", c.ServiceController.SetDischargeDate)
}
