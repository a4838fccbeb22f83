package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// ReservationRepository persiste y consulta reservas de inventario.
type ReservationRepository interface {
	Save(ctx context.Context, r *entity.Reservation) error
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)
	ListByOrder(ctx context.Context, orderID string) ([]entity.Reservation, error)
}
