package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/transfer"
)

// TransferHandler maneja las peticiones HTTP de traslados.
type TransferHandler struct {
	engine *transfer.Engine
}

// NewTransferHandler construye el handler.
func NewTransferHandler(engine *transfer.Engine) *TransferHandler {
	return &TransferHandler{engine: engine}
}

// Register ejecuta un traslado explícito entre bodegas.
func (h *TransferHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.engine.RegisterTransfer(c.UserContext(), transfer.RegisterInput{
		ProductID:         in.ProductID,
		OriginWarehouseID: in.OriginWarehouseID,
		DestWarehouseID:   in.DestWarehouseID,
		Quantity:          in.Quantity,
		Responsible:       in.Responsible,
		Reason:            in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransferResponse(*out))
}

// ListByProduct lista los traslados de un producto.
func (h *TransferHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	list, err := h.engine.ListByProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewTransferListResponse(list))
}
