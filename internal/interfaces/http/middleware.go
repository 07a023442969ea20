package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/pkg/logger"
	"github.com/jhoicas/Finanzas-api/pkg/metrics"
)

// RequestLogger registra cada petición con método, ruta, status, latencia y organización.
// Debe ir antes del router para ver la organización que deja AuthMiddleware.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		if err, ok := c.Locals(LocalError).(error); ok {
			ev = ev.Err(err)
		} else if chainErr != nil {
			ev = ev.Err(chainErr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("organization_id", GetOrganizationID(c)).
			Msg("http request")
		return chainErr
	}
}

// Metrics cuenta peticiones y mide su duración por ruta registrada.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		metrics.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return chainErr
	}
}
