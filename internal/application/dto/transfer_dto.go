package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// RegisterTransferRequest entrada del traslado explícito entre bodegas.
type RegisterTransferRequest struct {
	ProductID         string          `json:"product_id"`
	OriginWarehouseID string          `json:"origin_warehouse_id"`
	DestWarehouseID   string          `json:"dest_warehouse_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Responsible       string          `json:"responsible"`
	Reason            string          `json:"reason"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	OriginWarehouseID string          `json:"origin_warehouse_id"`
	DestWarehouseID   string          `json:"dest_warehouse_id"`
	Timestamp         time.Time       `json:"timestamp"`
	Responsible       string          `json:"responsible"`
	Reason            string          `json:"reason"`
	SourceMovementID  string          `json:"source_movement_id"`
	DestMovementID    string          `json:"dest_movement_id"`
}

// NewTransferResponse mapea la entidad a su respuesta.
func NewTransferResponse(t entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:                t.ID,
		ProductID:         t.ProductID,
		Quantity:          t.Quantity,
		OriginWarehouseID: t.OriginWarehouseID,
		DestWarehouseID:   t.DestWarehouseID,
		Timestamp:         t.Timestamp,
		Responsible:       t.Responsible,
		Reason:            t.Reason,
		SourceMovementID:  t.SourceMovementID,
		DestMovementID:    t.DestMovementID,
	}
}

// NewTransferListResponse mapea una lista de traslados.
func NewTransferListResponse(list []entity.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTransferResponse(t))
	}
	return out
}
