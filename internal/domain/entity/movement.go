package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementEntry = "ENTRY" // entrada
	MovementExit  = "EXIT"  // salida
)

// Movement representa un movimiento de inventario (entrada o salida).
// Inmutable una vez registrado: solo se crea, nunca se modifica.
type Movement struct {
	ID          string
	Timestamp   time.Time
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal // siempre positiva; el signo lo da el tipo
	Type        string          // ENTRY, EXIT
	Reason      string
	Responsible string
}

// SignedQuantity devuelve la cantidad con signo: positiva para ENTRY,
// negativa para EXIT.
func (m Movement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementExit {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// IsEntry indica si el movimiento es una entrada.
func (m Movement) IsEntry() bool { return m.Type == MovementEntry }

// IsExit indica si el movimiento es una salida.
func (m Movement) IsExit() bool { return m.Type == MovementExit }
