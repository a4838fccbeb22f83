package memory

import (
	"context"
	"sort"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.ReplenishmentPointRepository = (*ReplenishmentPointRepo)(nil)

// ReplenishmentPointRepo vista de puntos de reposición sobre el store.
type ReplenishmentPointRepo struct {
	s *Store
}

func (r *ReplenishmentPointRepo) Save(ctx context.Context, p *entity.ReplenishmentPoint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.points[p.ID] = *p
	return nil
}

func (r *ReplenishmentPointRepo) FindByID(ctx context.Context, id string) (*entity.ReplenishmentPoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.points[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ReplenishmentPointRepo) FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID string) (*entity.ReplenishmentPoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.points {
		if p.WarehouseID == warehouseID && p.ProductID == productID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

// ListBySupplier devuelve los puntos de los productos que el proveedor
// cotiza, igual que el join del adaptador de PostgreSQL.
func (r *ReplenishmentPointRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.ReplenishmentPoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	supplied := make(map[string]bool)
	for _, q := range r.s.quotations {
		if q.SupplierID == supplierID {
			supplied[q.ProductID] = true
		}
	}
	var list []entity.ReplenishmentPoint
	for _, p := range r.s.points {
		if supplied[p.ProductID] {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *ReplenishmentPointRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.points, id)
	return nil
}

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo vista de alertas sobre el store.
type AlertRepo struct {
	s *Store
}

func (r *AlertRepo) Save(ctx context.Context, a *entity.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.alerts[a.ID] = *a
	return nil
}

func (r *AlertRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.Alert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Alert
	for _, a := range r.s.alerts {
		if a.WarehouseID == warehouseID {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RaisedAt.After(list[j].RaisedAt) })
	return list, nil
}
