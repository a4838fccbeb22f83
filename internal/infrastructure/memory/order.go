package memory

import (
	"context"

	"github.com/gestock/sge-core/internal/application/order"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo vista de pedidos sobre el store.
type OrderRepo struct {
	s *Store
}

func (r *OrderRepo) Save(ctx context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *o
	stored.Items = append([]entity.OrderItem(nil), o.Items...)
	r.s.orders[o.ID] = stored
	return nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if o, ok := r.s.orders[id]; ok {
		out := o
		out.Items = append([]entity.OrderItem(nil), o.Items...)
		return &out, nil
	}
	return nil, nil
}

func (r *OrderRepo) HasPendingBySupplier(ctx context.Context, supplierID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.orders {
		if o.SupplierID == supplierID && !isTerminal(o.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (r *OrderRepo) HasOpenByWarehouse(ctx context.Context, warehouseID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.orders {
		if o.WarehouseID == warehouseID && !isTerminal(o.Status) {
			return true, nil
		}
	}
	return false, nil
}

func isTerminal(status string) bool {
	return status == entity.OrderCancelled || status == entity.OrderCompleted
}

var _ order.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el callback directamente sobre el store; en memoria
// no hay transacción que coordinar.
type TxRunner struct {
	s *Store
}

func (t *TxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(t.s.Orders())
}
