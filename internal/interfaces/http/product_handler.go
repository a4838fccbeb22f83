package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/product"
	"github.com/gestock/sge-core/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *product.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *product.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Save crea o actualiza un producto.
func (h *ProductHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), entity.Product{
		ID:         in.ID,
		ClientID:   in.ClientID,
		SKU:        in.SKU,
		Name:       in.Name,
		Perishable: in.Perishable,
	})
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.ID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewProductResponse(*out))
}

// GetByID obtiene un producto por id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewProductResponse(*out))
}

// Apply ejecuta una operación de estado (activate, inactivate) sobre el
// producto.
func (h *ProductHandler) Apply(c *fiber.Ctx) error {
	if err := h.uc.Apply(c.UserContext(), c.Params("id"), c.Params("operation")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
