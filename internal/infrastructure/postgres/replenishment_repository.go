package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.ReplenishmentPointRepository = (*ReplenishmentPointRepo)(nil)

// ReplenishmentPointRepo implementación de ReplenishmentPointRepository
// sobre PostgreSQL (usable con pool o tx).
type ReplenishmentPointRepo struct {
	q Querier
}

// NewReplenishmentPointRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReplenishmentPointRepository(q Querier) *ReplenishmentPointRepo {
	return &ReplenishmentPointRepo{q: q}
}

// Save inserta o actualiza un punto de reposición.
func (r *ReplenishmentPointRepo) Save(ctx context.Context, p *entity.ReplenishmentPoint) error {
	query := `
		INSERT INTO replenishment_points (id, warehouse_id, product_id, safety_stock)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET safety_stock = EXCLUDED.safety_stock`
	_, err := r.q.Exec(ctx, query, p.ID, p.WarehouseID, p.ProductID, p.SafetyStock)
	if err != nil {
		return fmt.Errorf("save replenishment point: %w", err)
	}
	return nil
}

// FindByID obtiene un punto de reposición por id, o nil si no existe.
func (r *ReplenishmentPointRepo) FindByID(ctx context.Context, id string) (*entity.ReplenishmentPoint, error) {
	query := `
		SELECT id, warehouse_id, product_id, safety_stock
		FROM replenishment_points WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// FindByWarehouseAndProduct obtiene el punto de una bodega y producto,
// o nil si no existe.
func (r *ReplenishmentPointRepo) FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID string) (*entity.ReplenishmentPoint, error) {
	query := `
		SELECT id, warehouse_id, product_id, safety_stock
		FROM replenishment_points WHERE warehouse_id = $1 AND product_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, warehouseID, productID))
}

func (r *ReplenishmentPointRepo) scanOne(row pgx.Row) (*entity.ReplenishmentPoint, error) {
	var p entity.ReplenishmentPoint
	err := row.Scan(&p.ID, &p.WarehouseID, &p.ProductID, &p.SafetyStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get replenishment point: %w", err)
	}
	return &p, nil
}

// ListBySupplier devuelve los puntos de reposición de los productos que
// el proveedor cotiza.
func (r *ReplenishmentPointRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.ReplenishmentPoint, error) {
	query := `
		SELECT DISTINCT p.id, p.warehouse_id, p.product_id, p.safety_stock
		FROM replenishment_points p
		JOIN quotations q ON q.product_id = p.product_id
		WHERE q.supplier_id = $1
		ORDER BY p.id ASC`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list points by supplier: %w", err)
	}
	defer rows.Close()

	var list []entity.ReplenishmentPoint
	for rows.Next() {
		var p entity.ReplenishmentPoint
		if err := rows.Scan(&p.ID, &p.WarehouseID, &p.ProductID, &p.SafetyStock); err != nil {
			return nil, fmt.Errorf("scan replenishment point: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un punto de reposición por id.
func (r *ReplenishmentPointRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM replenishment_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete replenishment point: %w", err)
	}
	return nil
}

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Save persiste una alerta.
func (r *AlertRepo) Save(ctx context.Context, a *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, level, product_id, warehouse_id, current_quantity, rop, percent_below_rop, raised_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Level, a.ProductID, a.WarehouseID,
		a.CurrentQuantity, a.ROP, a.PercentBelowROP, a.RaisedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListByWarehouse lista las alertas de una bodega, más recientes primero.
func (r *AlertRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.Alert, error) {
	query := `
		SELECT id, level, product_id, warehouse_id, current_quantity, rop, percent_below_rop, raised_at
		FROM alerts WHERE warehouse_id = $1 ORDER BY raised_at DESC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list alerts by warehouse: %w", err)
	}
	defer rows.Close()

	var list []entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Level, &a.ProductID, &a.WarehouseID,
			&a.CurrentQuantity, &a.ROP, &a.PercentBelowROP, &a.RaisedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
