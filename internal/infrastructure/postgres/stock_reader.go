package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.StockReader = (*StockReader)(nil)

// StockReader deriva saldos y consumos directamente del ledger de
// movimientos; no mantiene una tabla de stock materializada.
type StockReader struct {
	q Querier
}

// NewStockReader construye el lector de saldos. Pasar pool o tx (Querier).
func NewStockReader(q Querier) *StockReader {
	return &StockReader{q: q}
}

// Balance devuelve el saldo actual de un producto en una bodega: suma
// de entradas menos salidas.
func (r *StockReader) Balance(ctx context.Context, warehouseID, productID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'ENTRY' THEN quantity ELSE -quantity END), 0)
		FROM movements
		WHERE warehouse_id = $1 AND product_id = $2`
	var balance decimal.Decimal
	if err := r.q.QueryRow(ctx, query, warehouseID, productID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("balance: %w", err)
	}
	return balance, nil
}

// Occupation devuelve las unidades totales ocupadas en la bodega, sobre
// todos los productos. Los saldos negativos por producto no descuentan.
func (r *StockReader) Occupation(ctx context.Context, warehouseID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(GREATEST(balance, 0)), 0) FROM (
			SELECT SUM(CASE WHEN type = 'ENTRY' THEN quantity ELSE -quantity END) AS balance
			FROM movements
			WHERE warehouse_id = $1
			GROUP BY product_id
		) balances`
	var occupation decimal.Decimal
	if err := r.q.QueryRow(ctx, query, warehouseID).Scan(&occupation); err != nil {
		return decimal.Zero, fmt.Errorf("occupation: %w", err)
	}
	return occupation, nil
}

// AverageDailyConsumption devuelve el consumo medio diario (salidas /
// días de la ventana) de un producto en una bodega.
func (r *StockReader) AverageDailyConsumption(ctx context.Context, warehouseID, productID string, windowDays int) (decimal.Decimal, error) {
	if windowDays <= 0 {
		return decimal.Zero, fmt.Errorf("ventana de consumo inválida: %d días", windowDays)
	}
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM movements
		WHERE warehouse_id = $1 AND product_id = $2 AND type = 'EXIT'
			AND ts >= now() - make_interval(days => $3)`
	var exits decimal.Decimal
	if err := r.q.QueryRow(ctx, query, warehouseID, productID, windowDays).Scan(&exits); err != nil {
		return decimal.Zero, fmt.Errorf("average daily consumption: %w", err)
	}
	return exits.Div(decimal.NewFromInt(int64(windowDays))), nil
}
