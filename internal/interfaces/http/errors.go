package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain"
)

// errorJSON mapea un error de dominio a su respuesta HTTP. Todos los
// fallos se detectan antes de cualquier mutación durable y se reportan
// igual: status + {code, message}.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicateSKU):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el SKU ya está registrado en otro producto"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida solicitada"})
	case errors.Is(err, domain.ErrInvalidMovementType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT_TYPE", Message: "el tipo de movimiento debe ser INCOMING u OUTGOING"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parsePage lee la paginación skip/limit de la query string.
func parsePage(c *fiber.Ctx) (limit, skip int) {
	skip = c.QueryInt("skip", 0)
	limit = c.QueryInt("limit", 20)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return limit, skip
}
