package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// ReleaseReservationRequest entrada para liberar una reserva individual.
type ReleaseReservationRequest struct {
	ReleaseType string `json:"release_type"` // RECEIVED, CANCELLED
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	ReservedAt  time.Time       `json:"reserved_at"`
	Status      string          `json:"status"`
	ReleaseType string          `json:"release_type,omitempty"`
	ReleasedAt  *time.Time      `json:"released_at,omitempty"`
}

// NewReservationResponse mapea la entidad a su respuesta.
func NewReservationResponse(r entity.Reservation) ReservationResponse {
	out := ReservationResponse{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
		ReservedAt: r.ReservedAt,
		Status:     r.Status,
	}
	if r.Status == entity.ReservationReleased {
		out.ReleaseType = r.ReleaseType
		released := r.ReleasedAt
		out.ReleasedAt = &released
	}
	return out
}

// NewReservationListResponse mapea una lista de reservas.
func NewReservationListResponse(list []entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, NewReservationResponse(r))
	}
	return out
}
