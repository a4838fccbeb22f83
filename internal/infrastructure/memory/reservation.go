package memory

import (
	"context"
	"sort"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo vista de reservas sobre el store.
type ReservationRepo struct {
	s *Store
}

func (r *ReservationRepo) Save(ctx context.Context, res *entity.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reservations[res.ID] = *res
	return nil
}

func (r *ReservationRepo) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if res, ok := r.s.reservations[id]; ok {
		return &res, nil
	}
	return nil, nil
}

func (r *ReservationRepo) ListByOrder(ctx context.Context, orderID string) ([]entity.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Reservation
	for _, res := range r.s.reservations {
		if res.OrderID == orderID {
			list = append(list, res)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ReservedAt.Equal(list[j].ReservedAt) {
			return list[i].ReservedAt.Before(list[j].ReservedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}
