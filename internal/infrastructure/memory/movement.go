package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo vista de movimientos sobre el store.
type MovementRepo struct {
	s *Store
}

func (r *MovementRepo) Save(ctx context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements[m.ID] = *m
	return nil
}

func (r *MovementRepo) FindByID(ctx context.Context, id string) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if m, ok := r.s.movements[id]; ok {
		return &m, nil
	}
	return nil, nil
}

// FindByDateRange devuelve los movimientos en [from, to] ordenados por
// timestamp e id ascendentes, igual que el adaptador de PostgreSQL.
func (r *MovementRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Movement
	for _, m := range r.s.movements {
		if m.Timestamp.Before(from) || m.Timestamp.After(to) {
			continue
		}
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.Before(list[j].Timestamp)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.movements, id)
	return nil
}
