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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Save inserta o actualiza un producto. El SKU es único por cliente.
func (r *ProductRepo) Save(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, client_id, sku, name, status, perishable)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET sku = EXCLUDED.sku,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			perishable = EXCLUDED.perishable`
	_, err := r.q.Exec(ctx, query, p.ID, p.ClientID, p.SKU, p.Name, p.Status, p.Perishable)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: SKU %s", domain.ErrDuplicate, p.SKU)
		}
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// FindByID obtiene un producto por id, o nil si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, client_id, sku, name, status, perishable
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ClientID, &p.SKU, &p.Name, &p.Status, &p.Perishable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// HasActiveBatches indica si el producto tiene saldo positivo en alguna
// bodega (lotes vigentes).
func (r *ProductRepo) HasActiveBatches(ctx context.Context, productID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM movements
			WHERE product_id = $1
			GROUP BY warehouse_id
			HAVING COALESCE(SUM(CASE WHEN type = 'ENTRY' THEN quantity ELSE -quantity END), 0) > 0
		)`
	var active bool
	if err := r.q.QueryRow(ctx, query, productID).Scan(&active); err != nil {
		return false, fmt.Errorf("check active batches: %w", err)
	}
	return active, nil
}
