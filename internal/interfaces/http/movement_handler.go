package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/inventory"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"
	"github.com/jose-aranguiz/inventario-pyme/pkg/validator"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	recorder *inventory.RegisterMovementUseCase
	ledger   *inventory.LedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recorder *inventory.RegisterMovementUseCase, ledger *inventory.LedgerUseCase) *MovementHandler {
	return &MovementHandler{recorder: recorder, ledger: ledger}
}

// Register POST /movimientos/: valida en el borde y delega en el motor
// transaccional. Devuelve el movimiento creado con su producto.
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// La enumeración es cerrada: cualquier otro valor se rechaza aquí,
	// antes de llegar al motor.
	if in.Kind != "" && !entity.ValidMovementKind(in.Kind) {
		return errorJSON(c, domain.ErrInvalidMovementType)
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo inválido: " + details[0].Field})
	}
	out, err := h.recorder.RegisterMovement(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /movimientos/: más recientes primero, producto unido.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit, skip := parsePage(c)
	out, err := h.ledger.List(limit, skip)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /movimientos/:id.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.ledger.GetByID(int64(id))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// ListByProduct GET /productos/:id/movimientos: ledger de un producto.
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	limit, skip := parsePage(c)
	out, err := h.ledger.ListByProduct(int64(id), limit, skip)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
