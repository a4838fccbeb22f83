package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/application/supplier"
	"github.com/gestock/sge-core/internal/domain/entity"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	uc *supplier.UseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *supplier.UseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Save crea o actualiza un proveedor.
func (h *SupplierHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), entity.Supplier{
		ID:           in.ID,
		ClientID:     in.ClientID,
		Name:         in.Name,
		TaxID:        in.TaxID,
		LeadTimeDays: in.LeadTimeDays,
	})
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.ID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewSupplierResponse(*out))
}

// GetByID obtiene un proveedor por id.
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSupplierResponse(*out))
}

// Activate marca el proveedor como activo.
func (h *SupplierHandler) Activate(c *fiber.Ctx) error {
	if err := h.uc.Activate(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Inactivate marca el proveedor como inactivo.
func (h *SupplierHandler) Inactivate(c *fiber.Ctx) error {
	if err := h.uc.Inactivate(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
