package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/replenishment"
	"github.com/gestock/sge-core/internal/domain/entity"
)

// ReplenishmentHandler maneja las peticiones HTTP del motor de
// reposición: puntos, evaluación y alertas.
type ReplenishmentHandler struct {
	engine *replenishment.Engine
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(engine *replenishment.Engine) *ReplenishmentHandler {
	return &ReplenishmentHandler{engine: engine}
}

// RegisterPoint da de alta un punto de reposición.
func (h *ReplenishmentHandler) RegisterPoint(c *fiber.Ctx) error {
	var in dto.RegisterPointRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.engine.Register(c.UserContext(), entity.ReplenishmentPoint{
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		SafetyStock: in.SafetyStock,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewReplenishmentPointResponse(*out))
}

// UpdateSafetyStock actualiza el stock de seguridad de un punto.
func (h *ReplenishmentHandler) UpdateSafetyStock(c *fiber.Ctx) error {
	var in dto.UpdateSafetyStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.engine.UpdateSafetyStock(c.UserContext(), c.Params("id"), in.SafetyStock); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assess evalúa el punto de reposición de un producto en una bodega.
func (h *ReplenishmentHandler) Assess(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	productID := c.Query("product_id")
	if warehouseID == "" || productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id y product_id son requeridos"})
	}
	out, err := h.engine.Recompute(c.UserContext(), warehouseID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAssessmentResponse(*out))
}

// ListAlerts lista las alertas de una bodega.
func (h *ReplenishmentHandler) ListAlerts(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	list, err := h.engine.AlertsByWarehouse(c.UserContext(), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.NewAlertResponse(a))
	}
	return c.JSON(out)
}
