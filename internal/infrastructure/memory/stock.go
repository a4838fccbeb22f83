package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.StockReader = (*StockReader)(nil)

// StockReader deriva saldos y consumos de los movimientos del store.
type StockReader struct {
	s *Store
}

func (r *StockReader) Balance(ctx context.Context, warehouseID, productID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	balance := decimal.Zero
	for _, m := range r.s.movements {
		if m.WarehouseID == warehouseID && m.ProductID == productID {
			balance = balance.Add(m.SignedQuantity())
		}
	}
	return balance, nil
}

func (r *StockReader) Occupation(ctx context.Context, warehouseID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	balances := make(map[string]decimal.Decimal)
	for _, m := range r.s.movements {
		if m.WarehouseID == warehouseID {
			balances[m.ProductID] = balances[m.ProductID].Add(m.SignedQuantity())
		}
	}
	total := decimal.Zero
	for _, b := range balances {
		if b.GreaterThan(decimal.Zero) {
			total = total.Add(b)
		}
	}
	return total, nil
}

func (r *StockReader) AverageDailyConsumption(ctx context.Context, warehouseID, productID string, windowDays int) (decimal.Decimal, error) {
	if windowDays <= 0 {
		return decimal.Zero, fmt.Errorf("ventana de consumo inválida: %d días", windowDays)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cutoff := r.s.Now().AddDate(0, 0, -windowDays)
	exits := decimal.Zero
	for _, m := range r.s.movements {
		if m.WarehouseID == warehouseID && m.ProductID == productID &&
			m.Type == entity.MovementExit && !m.Timestamp.Before(cutoff) {
			exits = exits.Add(m.Quantity)
		}
	}
	return exits.Div(decimal.NewFromInt(int64(windowDays))), nil
}
