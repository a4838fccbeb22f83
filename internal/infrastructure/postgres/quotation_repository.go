package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository sobre PostgreSQL
// (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Save inserta o actualiza una cotización.
func (r *QuotationRepo) Save(ctx context.Context, quo *entity.Quotation) error {
	query := `
		INSERT INTO quotations (id, product_id, supplier_id, price, lead_time_days, validity, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET price = EXCLUDED.price,
			lead_time_days = EXCLUDED.lead_time_days,
			validity = EXCLUDED.validity,
			approval_status = EXCLUDED.approval_status`
	_, err := r.q.Exec(ctx, query,
		quo.ID, quo.ProductID, quo.SupplierID, quo.Price,
		quo.LeadTimeDays, quo.Validity, quo.ApprovalStatus,
	)
	if err != nil {
		return fmt.Errorf("save quotation: %w", err)
	}
	return nil
}

// FindByID obtiene una cotización por id, o nil si no existe.
func (r *QuotationRepo) FindByID(ctx context.Context, id string) (*entity.Quotation, error) {
	query := `
		SELECT id, product_id, supplier_id, price, lead_time_days, validity, approval_status
		FROM quotations WHERE id = $1`
	var quo entity.Quotation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&quo.ID, &quo.ProductID, &quo.SupplierID, &quo.Price,
		&quo.LeadTimeDays, &quo.Validity, &quo.ApprovalStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &quo, nil
}

// ListByProduct lista las cotizaciones de un producto.
func (r *QuotationRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Quotation, error) {
	query := `
		SELECT id, product_id, supplier_id, price, lead_time_days, validity, approval_status
		FROM quotations WHERE product_id = $1 ORDER BY id ASC`
	return r.list(ctx, query, productID)
}

// ListBySupplier lista las cotizaciones de un proveedor.
func (r *QuotationRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.Quotation, error) {
	query := `
		SELECT id, product_id, supplier_id, price, lead_time_days, validity, approval_status
		FROM quotations WHERE supplier_id = $1 ORDER BY id ASC`
	return r.list(ctx, query, supplierID)
}

func (r *QuotationRepo) list(ctx context.Context, query string, arg any) ([]entity.Quotation, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var list []entity.Quotation
	for rows.Next() {
		var quo entity.Quotation
		if err := rows.Scan(&quo.ID, &quo.ProductID, &quo.SupplierID, &quo.Price,
			&quo.LeadTimeDays, &quo.Validity, &quo.ApprovalStatus); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, quo)
	}
	return list, rows.Err()
}
