package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP de pedidos.
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create crea un pedido a proveedor.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]order.CreateItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, order.CreateItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	out, err := h.uc.Create(c.UserContext(), order.CreateInput{
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Items:       items,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewOrderResponse(*out))
}

// GetByID obtiene un pedido por id.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewOrderResponse(*out))
}

// Cancel cancela un pedido.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewOrderResponse(*out))
}

// ConfirmReceipt confirma la recepción de un pedido.
func (h *OrderHandler) ConfirmReceipt(c *fiber.Ctx) error {
	var in dto.ConfirmReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ConfirmReceipt(c.UserContext(), c.Params("id"), in.Responsible)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewOrderResponse(*out))
}

// ChangeStatus aplica una transición explícita de estado.
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewOrderResponse(*out))
}
