package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// OrderRepository persiste y consulta pedidos.
type OrderRepository interface {
	Save(ctx context.Context, o *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	// HasPendingBySupplier indica si el proveedor tiene pedidos en
	// estados no terminales.
	HasPendingBySupplier(ctx context.Context, supplierID string) (bool, error)
	// HasOpenByWarehouse indica si la bodega tiene pedidos en curso.
	HasOpenByWarehouse(ctx context.Context, warehouseID string) (bool, error)
}
