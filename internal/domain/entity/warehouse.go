package entity

import "github.com/shopspring/decimal"

// Warehouse representa una bodega con capacidad máxima en unidades.
type Warehouse struct {
	ID       string
	ClientID string
	Name     string
	Address  string
	Capacity decimal.Decimal // unidades totales que puede albergar
	Status   string          // ACTIVE, INACTIVE
}

// IsActive indica si la bodega está activa.
func (w Warehouse) IsActive() bool { return w.Status == StatusActive }

// FreeCapacity devuelve la capacidad restante dada la ocupación actual.
func (w Warehouse) FreeCapacity(occupation decimal.Decimal) decimal.Decimal {
	return w.Capacity.Sub(occupation)
}
