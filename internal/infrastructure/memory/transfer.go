package memory

import (
	"context"
	"sort"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo vista de traslados sobre el store.
type TransferRepo struct {
	s *Store
}

func (r *TransferRepo) Save(ctx context.Context, t *entity.Transfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transfers[t.ID] = *t
	return nil
}

func (r *TransferRepo) FindByID(ctx context.Context, id string) (*entity.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t, ok := r.s.transfers[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *TransferRepo) FindByDestMovement(ctx context.Context, movementID string) (*entity.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.transfers {
		if t.DestMovementID == movementID {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

func (r *TransferRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Transfer
	for _, t := range r.s.transfers {
		if t.ProductID == productID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}
