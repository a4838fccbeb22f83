package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain"
)

// Estados de una reserva.
const (
	ReservationActive   = "ACTIVE"
	ReservationReleased = "RELEASED"
)

// Tipos de liberación de una reserva.
const (
	ReleaseReceived  = "RECEIVED"
	ReleaseCancelled = "CANCELLED"
)

// Reservation es el bloqueo de inventario para una línea de pedido.
// Transiciona ACTIVE → RELEASED exactamente una vez.
type Reservation struct {
	ID          string
	OrderID     string
	ProductID   string
	Quantity    decimal.Decimal
	ReservedAt  time.Time
	Status      string
	ReleaseType string    // RECEIVED o CANCELLED; solo al liberar
	ReleasedAt  time.Time // solo al liberar
}

// IsActive indica si la reserva sigue vigente.
func (r Reservation) IsActive() bool { return r.Status == ReservationActive }

// Release devuelve una copia liberada de la reserva. Liberar una reserva
// ya liberada falla con ErrAlreadyReleased.
func (r Reservation) Release(releaseType string, at time.Time) (Reservation, error) {
	if r.Status == ReservationReleased {
		return r, domain.ErrAlreadyReleased
	}
	released := r
	released.Status = ReservationReleased
	released.ReleaseType = releaseType
	released.ReleasedAt = at
	return released, nil
}
