package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// RecordMovementRequest entrada para registrar un movimiento.
type RecordMovementRequest struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Type        string          `json:"type"` // ENTRY, EXIT
	Reason      string          `json:"reason"`
	Responsible string          `json:"responsible"`
	Timestamp   *time.Time      `json:"timestamp,omitempty"` // opcional, por defecto ahora
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Type        string          `json:"type"`
	Reason      string          `json:"reason"`
	Responsible string          `json:"responsible"`
}

// NewMovementResponse mapea la entidad a su respuesta.
func NewMovementResponse(m entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		Timestamp:   m.Timestamp,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Quantity:    m.Quantity,
		Type:        m.Type,
		Reason:      m.Reason,
		Responsible: m.Responsible,
	}
}
