package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// SupplierRepository persiste y consulta proveedores.
type SupplierRepository interface {
	Save(ctx context.Context, s *entity.Supplier) error
	FindByID(ctx context.Context, id string) (*entity.Supplier, error)
	FindByTaxID(ctx context.Context, clientID, taxID string) (*entity.Supplier, error)
}
