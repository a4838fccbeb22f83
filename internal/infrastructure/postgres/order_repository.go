package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable
// con pool o tx). Las líneas viven en order_items y se reescriben
// completas en cada Save.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Save inserta o actualiza un pedido con sus líneas.
func (r *OrderRepo) Save(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, supplier_id, warehouse_id, status, order_date, expected_date, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET status = EXCLUDED.status,
			expected_date = EXCLUDED.expected_date,
			total = EXCLUDED.total`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.SupplierID, o.WarehouseID, o.Status, o.OrderDate, o.ExpectedDate, o.Total,
	)
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	for i, item := range o.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (order_id, position, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, i, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// FindByID obtiene un pedido con sus líneas, o nil si no existe.
func (r *OrderRepo) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, supplier_id, warehouse_id, status, order_date, expected_date, total
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SupplierID, &o.WarehouseID, &o.Status, &o.OrderDate, &o.ExpectedDate, &o.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY position ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// HasPendingBySupplier indica si el proveedor tiene pedidos en estados
// no terminales.
func (r *OrderRepo) HasPendingBySupplier(ctx context.Context, supplierID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE supplier_id = $1 AND status NOT IN ($2, $3)
		)`
	var pending bool
	err := r.q.QueryRow(ctx, query, supplierID, entity.OrderCancelled, entity.OrderCompleted).Scan(&pending)
	if err != nil {
		return false, fmt.Errorf("check pending orders: %w", err)
	}
	return pending, nil
}

// HasOpenByWarehouse indica si la bodega tiene pedidos en curso.
func (r *OrderRepo) HasOpenByWarehouse(ctx context.Context, warehouseID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE warehouse_id = $1 AND status NOT IN ($2, $3)
		)`
	var open bool
	err := r.q.QueryRow(ctx, query, warehouseID, entity.OrderCancelled, entity.OrderCompleted).Scan(&open)
	if err != nil {
		return false, fmt.Errorf("check open orders: %w", err)
	}
	return open, nil
}
