package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jose-aranguiz/inventario-pyme/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status,
// duración y el request id que el middleware requestid deja en el
// header X-Request-ID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
