package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/warehouse"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/pkg/logger"
)

// WarehouseHandler maneja las peticiones HTTP de bodegas.
type WarehouseHandler struct {
	uc  *warehouse.UseCase
	log *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *warehouse.UseCase, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, log: log}
}

// Save crea o actualiza una bodega.
func (h *WarehouseHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), entity.Warehouse{
		ID:       in.ID,
		ClientID: in.ClientID,
		Name:     in.Name,
		Address:  in.Address,
		Capacity: in.Capacity,
	})
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.ID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewWarehouseResponse(*out))
}

// Delete elimina una bodega.
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Apply ejecuta una operación administrativa (activate, inactivate)
// sobre la bodega, con registro de inicio y resultado.
func (h *WarehouseHandler) Apply(c *fiber.Ctx) error {
	id := c.Params("id")
	operation := c.Params("operation")
	run := warehouse.WithOperationLogging(h.log, operation, id, func(ctx context.Context) error {
		return h.uc.Apply(ctx, id, operation)
	})
	if err := run(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
