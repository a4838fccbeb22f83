package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL
// (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Save inserta o actualiza una bodega.
func (r *WarehouseRepo) Save(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, client_id, name, address, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name,
			address = EXCLUDED.address,
			capacity = EXCLUDED.capacity,
			status = EXCLUDED.status`
	_, err := r.q.Exec(ctx, query, w.ID, w.ClientID, w.Name, w.Address, w.Capacity, w.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bodega %s", domain.ErrDuplicate, w.Name)
		}
		return fmt.Errorf("save warehouse: %w", err)
	}
	return nil
}

// FindByID obtiene una bodega por id, o nil si no existe.
func (r *WarehouseRepo) FindByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, client_id, name, address, capacity, status
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.ClientID, &w.Name, &w.Address, &w.Capacity, &w.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ExistsByName indica si otra bodega del cliente ya usa el nombre.
func (r *WarehouseRepo) ExistsByName(ctx context.Context, clientID, name, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM warehouses
			WHERE client_id = $1 AND lower(name) = lower($2) AND id <> $3
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, clientID, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check warehouse name: %w", err)
	}
	return exists, nil
}

// ExistsByAddress indica si otra bodega del cliente ya usa la dirección.
func (r *WarehouseRepo) ExistsByAddress(ctx context.Context, clientID, address, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM warehouses
			WHERE client_id = $1 AND lower(address) = lower($2) AND id <> $3
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, clientID, address, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check warehouse address: %w", err)
	}
	return exists, nil
}

// Delete elimina una bodega por id.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
