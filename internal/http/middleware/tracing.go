package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing starts a server span per request using the global tracer provider.
// When tracing is disabled it returns Noop.
func Tracing(enabled bool) fiber.Handler {
	if !enabled {
		return Noop()
	}
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			switch c.Path() {
			case "/metrics", "/healthz":
				return true
			}
			return false
		}),
	)
}
