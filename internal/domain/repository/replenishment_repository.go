package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// ReplenishmentPointRepository persiste y consulta puntos de reposición.
type ReplenishmentPointRepository interface {
	Save(ctx context.Context, p *entity.ReplenishmentPoint) error
	FindByID(ctx context.Context, id string) (*entity.ReplenishmentPoint, error)
	FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID string) (*entity.ReplenishmentPoint, error)
	// ListBySupplier devuelve los puntos de reposición de todos los
	// productos abastecidos por el proveedor (vía sus cotizaciones).
	ListBySupplier(ctx context.Context, supplierID string) ([]entity.ReplenishmentPoint, error)
	Delete(ctx context.Context, id string) error
}

// AlertRepository persiste alertas de stock bajo.
type AlertRepository interface {
	Save(ctx context.Context, a *entity.Alert) error
	ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.Alert, error)
}
