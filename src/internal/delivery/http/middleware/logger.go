package middleware

import (
	"fmt"
	"time"

	"wallet-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const slowRequest = 500 * time.Millisecond

// NewLogger logs one line per request and flags slow ones.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		meta := fmt.Sprintf("status=%d latency=%s", ctx.Response().StatusCode(), elapsed)
		route := fmt.Sprintf("%s %s", ctx.Method(), ctx.Path())
		if elapsed > slowRequest {
			logger.Slow("http", route, "request", meta)
		} else {
			logger.Info("http", route, "request", meta)
		}
		return err
	}
}
