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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL
// (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Save inserta o actualiza un proveedor. La identificación fiscal es
// única por cliente.
func (r *SupplierRepo) Save(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, client_id, name, tax_id, lead_time_days, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name,
			tax_id = EXCLUDED.tax_id,
			lead_time_days = EXCLUDED.lead_time_days,
			status = EXCLUDED.status`
	_, err := r.q.Exec(ctx, query, s.ID, s.ClientID, s.Name, s.TaxID, s.LeadTimeDays, s.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: identificación fiscal %s", domain.ErrDuplicate, s.TaxID)
		}
		return fmt.Errorf("save supplier: %w", err)
	}
	return nil
}

// FindByID obtiene un proveedor por id, o nil si no existe.
func (r *SupplierRepo) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `
		SELECT id, client_id, name, tax_id, lead_time_days, status
		FROM suppliers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// FindByTaxID obtiene el proveedor de un cliente por identificación
// fiscal, o nil si no existe.
func (r *SupplierRepo) FindByTaxID(ctx context.Context, clientID, taxID string) (*entity.Supplier, error) {
	query := `
		SELECT id, client_id, name, tax_id, lead_time_days, status
		FROM suppliers WHERE client_id = $1 AND tax_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, clientID, taxID))
}

func (r *SupplierRepo) scanOne(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.ClientID, &s.Name, &s.TaxID, &s.LeadTimeDays, &s.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}
