package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Save persiste un movimiento. Los movimientos son inmutables: un id
// existente es un error de programación y la inserción falla.
func (r *MovementRepo) Save(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, ts, product_id, warehouse_id, quantity, type, reason, responsible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Timestamp, m.ProductID, m.WarehouseID,
		m.Quantity, m.Type, m.Reason, m.Responsible,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// FindByID obtiene un movimiento por id, o nil si no existe.
func (r *MovementRepo) FindByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `
		SELECT id, ts, product_id, warehouse_id, quantity, type, reason, responsible
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Timestamp, &m.ProductID, &m.WarehouseID,
		&m.Quantity, &m.Type, &m.Reason, &m.Responsible,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// FindByDateRange devuelve los movimientos en [from, to] ordenados por
// timestamp e id ascendentes.
func (r *MovementRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]entity.Movement, error) {
	query := `
		SELECT id, ts, product_id, warehouse_id, quantity, type, reason, responsible
		FROM movements
		WHERE ts >= $1 AND ts <= $2
		ORDER BY ts ASC, id ASC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements by range: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Timestamp, &m.ProductID, &m.WarehouseID,
			&m.Quantity, &m.Type, &m.Reason, &m.Responsible); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete elimina un movimiento por id.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}
