package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, product_id, quantity, origin_warehouse_id, dest_warehouse_id,
		ts, responsible, reason, source_movement_id, dest_movement_id`

// Save persiste un traslado.
func (r *TransferRepo) Save(ctx context.Context, t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProductID, t.Quantity, t.OriginWarehouseID, t.DestWarehouseID,
		t.Timestamp, t.Responsible, t.Reason, t.SourceMovementID, t.DestMovementID,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) scanOne(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	err := row.Scan(
		&t.ID, &t.ProductID, &t.Quantity, &t.OriginWarehouseID, &t.DestWarehouseID,
		&t.Timestamp, &t.Responsible, &t.Reason, &t.SourceMovementID, &t.DestMovementID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// FindByID obtiene un traslado por id, o nil si no existe.
func (r *TransferRepo) FindByID(ctx context.Context, id string) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// FindByDestMovement obtiene el traslado cuyo movimiento de destino es
// el dado, o nil si no existe.
func (r *TransferRepo) FindByDestMovement(ctx context.Context, movementID string) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE dest_movement_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, movementID))
}

// ListByProduct lista los traslados de un producto, más recientes primero.
func (r *TransferRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers
		WHERE product_id = $1 ORDER BY ts DESC, id DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by product: %w", err)
	}
	defer rows.Close()

	var list []entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Quantity, &t.OriginWarehouseID,
			&t.DestWarehouseID, &t.Timestamp, &t.Responsible, &t.Reason,
			&t.SourceMovementID, &t.DestMovementID); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
