package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer representa un traslado de producto entre dos bodegas,
// materializado a partir de un par de movimientos EXIT/ENTRY.
// Solo lo crea el motor de inferencia o la operación explícita de
// traslado; nunca se modifica.
type Transfer struct {
	ID                string
	ProductID         string
	Quantity          decimal.Decimal
	OriginWarehouseID string
	DestWarehouseID   string // siempre distinto del origen
	Timestamp         time.Time
	Responsible       string
	Reason            string
	SourceMovementID  string // movimiento EXIT en origen
	DestMovementID    string // movimiento ENTRY en destino
}
