package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// WarehouseRepository persiste y consulta bodegas.
type WarehouseRepository interface {
	Save(ctx context.Context, w *entity.Warehouse) error
	FindByID(ctx context.Context, id string) (*entity.Warehouse, error)
	ExistsByName(ctx context.Context, clientID, name, excludeID string) (bool, error)
	ExistsByAddress(ctx context.Context, clientID, address, excludeID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// StockReader consulta saldos derivados de los movimientos. Es el
// colaborador que responde por disponibilidad y ocupación; el ledger de
// movimientos no valida disponibilidad por sí mismo.
type StockReader interface {
	// Balance devuelve el saldo actual (suma de cantidades con signo)
	// de un producto en una bodega.
	Balance(ctx context.Context, warehouseID, productID string) (decimal.Decimal, error)
	// Occupation devuelve las unidades totales ocupadas en la bodega.
	Occupation(ctx context.Context, warehouseID string) (decimal.Decimal, error)
	// AverageDailyConsumption devuelve el consumo medio diario del
	// producto en la bodega sobre la ventana de días indicada.
	AverageDailyConsumption(ctx context.Context, warehouseID, productID string, windowDays int) (decimal.Decimal, error)
}
