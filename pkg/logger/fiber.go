package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// FiberMiddleware registra una línea por request: método, ruta, estado, latencia y tenant.
// Debe montarse antes del router para medir la latencia completa.
func FiberMiddleware(l *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		rl := l
		if companyID, ok := c.Locals("company_id").(string); ok && companyID != "" {
			rl = l.ForCompany(companyID)
		}
		ev := rl.Info()
		if status >= fiber.StatusInternalServerError {
			ev = rl.Error().Err(err)
		} else if status >= fiber.StatusBadRequest {
			ev = rl.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}
