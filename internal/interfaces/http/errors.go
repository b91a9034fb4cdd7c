package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
)

// errorCodes código estable por error concreto; el resto cae en su categoría.
var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrStockNotFound, "STOCK_NOT_FOUND"},
	{domain.ErrProductNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrProductAlreadyExists, "PRODUCT_EXISTS"},
	{domain.ErrIncorrectStock, "INCORRECT_STOCK"},
	{domain.ErrProductNotAvailable, "PRODUCT_NOT_AVAILABLE"},
}

// statusFor traduce la categoría del error a un código HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func codeFor(err error, status int) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	switch status {
	case fiber.StatusBadRequest:
		return "VALIDATION"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	}
	return "INTERNAL"
}

// writeError responde con el estado y cuerpo que corresponden a err.
// Los 500 no exponen el detalle interno; se registran en el log de la petición.
func writeError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		requestLogger(c).Error().Err(err).Msg("error interno")
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: codeFor(err, status), Message: msg})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func validationFailed(c *fiber.Ctx, fields []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "payload inválido",
		Fields:  fields,
	})
}
