package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// ProductRepository persiste y consulta productos.
type ProductRepository interface {
	Save(ctx context.Context, p *entity.Product) error
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// HasActiveBatches indica si el producto tiene lotes vigentes en
	// alguna bodega (bloquea la inactivación de perecederos).
	HasActiveBatches(ctx context.Context, productID string) (bool, error)
}
