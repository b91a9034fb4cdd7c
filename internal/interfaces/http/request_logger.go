package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-api/pkg/logger"
)

const (
	// HeaderRequestID cabecera con el id de la petición (se respeta si viene del cliente).
	HeaderRequestID = "X-Request-ID"

	localsLogger = "req_logger"
)

// RequestLogger registra una línea por petición y deja en Locals un logger con el request_id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	base := log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		reqLog := base.With().Str("request_id", reqID).Logger()
		c.Locals(localsLogger, &reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// Errores no manejados: el ErrorHandler de fiber fija el estado después.
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// requestLogger devuelve el logger de la petición o uno nulo si el middleware no está montado.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localsLogger).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
