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

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación de ReservationRepository sobre
// PostgreSQL (usable con pool o tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Save inserta o actualiza una reserva. ReleaseType y ReleasedAt se
// guardan como NULL mientras la reserva sigue activa.
func (r *ReservationRepo) Save(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, order_id, product_id, quantity, reserved_at, status, release_type, released_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET status = EXCLUDED.status,
			release_type = EXCLUDED.release_type,
			released_at = EXCLUDED.released_at`
	var releaseType *string
	var releasedAt *time.Time
	if res.Status == entity.ReservationReleased {
		releaseType = &res.ReleaseType
		releasedAt = &res.ReleasedAt
	}
	_, err := r.q.Exec(ctx, query,
		res.ID, res.OrderID, res.ProductID, res.Quantity,
		res.ReservedAt, res.Status, releaseType, releasedAt,
	)
	if err != nil {
		return fmt.Errorf("save reservation: %w", err)
	}
	return nil
}

// FindByID obtiene una reserva por id, o nil si no existe.
func (r *ReservationRepo) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	query := `
		SELECT id, order_id, product_id, quantity, reserved_at, status, release_type, released_at
		FROM reservations WHERE id = $1`
	res, err := scanReservation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// ListByOrder lista las reservas de un pedido.
func (r *ReservationRepo) ListByOrder(ctx context.Context, orderID string) ([]entity.Reservation, error) {
	query := `
		SELECT id, order_id, product_id, quantity, reserved_at, status, release_type, released_at
		FROM reservations WHERE order_id = $1 ORDER BY reserved_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by order: %w", err)
	}
	defer rows.Close()

	var list []entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, *res)
	}
	return list, rows.Err()
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	var releaseType *string
	var releasedAt *time.Time
	err := row.Scan(&res.ID, &res.OrderID, &res.ProductID, &res.Quantity,
		&res.ReservedAt, &res.Status, &releaseType, &releasedAt)
	if err != nil {
		return nil, err
	}
	if releaseType != nil {
		res.ReleaseType = *releaseType
	}
	if releasedAt != nil {
		res.ReleasedAt = *releasedAt
	}
	return &res, nil
}
