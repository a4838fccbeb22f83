package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/quotation"
	"github.com/gestock/sge-core/internal/domain/entity"
)

// QuotationHandler maneja las peticiones HTTP de cotizaciones.
type QuotationHandler struct {
	uc *quotation.UseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *quotation.UseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Register da de alta una cotización.
func (h *QuotationHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.UserContext(), entity.Quotation{
		ProductID:    in.ProductID,
		SupplierID:   in.SupplierID,
		Price:        in.Price,
		LeadTimeDays: in.LeadTimeDays,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuotationResponse(*out))
}

// Approve aprueba una cotización.
func (h *QuotationHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Expire marca una cotización como vencida.
func (h *QuotationHandler) Expire(c *fiber.Ctx) error {
	if err := h.uc.Expire(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByProduct lista las cotizaciones de un producto.
func (h *QuotationHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	list, err := h.uc.ListByProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewQuotationListResponse(list))
}

// Best devuelve la mejor cotización de un producto.
func (h *QuotationHandler) Best(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.BestForProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewQuotationResponse(*out))
}
