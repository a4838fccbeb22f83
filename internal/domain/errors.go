package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrAlreadyReleased   = errors.New("la reserva ya fue liberada")
	ErrInactiveSupplier  = errors.New("el proveedor debe estar activo")
	ErrInactiveWarehouse = errors.New("la bodega debe estar activa")
	ErrInactiveProduct   = errors.New("el producto debe estar activo")
)

// RuleViolationError es una regla de negocio nombrada que fue violada.
// Rule identifica la regla (ej. "R2H22") y Message describe la violación.
type RuleViolationError struct {
	Rule    string
	Message string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

// NewRuleViolation construye una violación de regla con mensaje formateado.
func NewRuleViolation(rule, format string, args ...any) *RuleViolationError {
	return &RuleViolationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// IsRuleViolation indica si err es (o envuelve) una violación de regla.
func IsRuleViolation(err error) bool {
	var rv *RuleViolationError
	return errors.As(err, &rv)
}

// StateError es una transición de ciclo de vida inválida sobre un agregado.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// NewStateError construye un error de estado con mensaje formateado.
func NewStateError(format string, args ...any) *StateError {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// IsStateError indica si err es (o envuelve) una transición inválida.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
