package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/reservation"
	"github.com/gestock/sge-core/internal/domain/entity"
)

// ReservationHandler maneja las peticiones HTTP de reservas.
type ReservationHandler struct {
	manager *reservation.Manager
}

// NewReservationHandler construye el handler.
func NewReservationHandler(manager *reservation.Manager) *ReservationHandler {
	return &ReservationHandler{manager: manager}
}

// ListByOrder lista las reservas de un pedido.
func (h *ReservationHandler) ListByOrder(c *fiber.Ctx) error {
	orderID := c.Query("order_id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id es requerido"})
	}
	list, err := h.manager.ListByOrder(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewReservationListResponse(list))
}

// Release libera una reserva individual.
func (h *ReservationHandler) Release(c *fiber.Ctx) error {
	var in dto.ReleaseReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ReleaseType != entity.ReleaseReceived && in.ReleaseType != entity.ReleaseCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "release_type debe ser RECEIVED o CANCELLED"})
	}
	if err := h.manager.Release(c.UserContext(), c.Params("id"), in.ReleaseType); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
