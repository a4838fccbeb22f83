package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// QuotationRepository persiste y consulta cotizaciones de proveedores.
type QuotationRepository interface {
	Save(ctx context.Context, q *entity.Quotation) error
	FindByID(ctx context.Context, id string) (*entity.Quotation, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Quotation, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]entity.Quotation, error)
}
