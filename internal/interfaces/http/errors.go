package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/dto"
	"github.com/gestock/sge-core/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var rv *domain.RuleViolationError
	if errors.As(err, &rv) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    rv.Rule,
			Message: rv.Message,
		})
	}
	if domain.IsStateError(err) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INVALID_STATE",
			Message: err.Error(),
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyReleased):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInactiveSupplier),
		errors.Is(err, domain.ErrInactiveWarehouse),
		errors.Is(err, domain.ErrInactiveProduct):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
