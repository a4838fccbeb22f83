package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/movement"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	ledger *movement.Ledger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *movement.Ledger) *MovementHandler {
	return &MovementHandler{ledger: ledger}
}

// Record registra un movimiento de inventario.
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := movement.RecordInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Reason:      in.Reason,
		Responsible: in.Responsible,
	}
	if in.Timestamp != nil {
		input.Timestamp = *in.Timestamp
	}
	mov, err := h.ledger.Record(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(*mov))
}

// Delete elimina un movimiento. Sin efectos en cascada.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.ledger.Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
