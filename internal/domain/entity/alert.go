package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de alerta de stock bajo.
const (
	AlertNone     = "NONE" // no se genera alerta
	AlertMedium   = "MEDIUM"
	AlertHigh     = "HIGH"
	AlertCritical = "CRITICAL"
)

// Alert es una alerta de stock por debajo del punto de reorden.
type Alert struct {
	ID              string
	Level           string
	ProductID       string
	WarehouseID     string
	CurrentQuantity decimal.Decimal
	ROP             int64
	PercentBelowROP decimal.Decimal // siempre ≤ 0
	RaisedAt        time.Time
}
