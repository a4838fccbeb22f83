package replenishment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/replenishment"
)

func TestComputeROP(t *testing.T) {
	tests := []struct {
		name        string
		avgDaily    decimal.Decimal
		leadTime    int
		safetyStock int64
		want        int64
	}{
		{"caso base", decimal.NewFromFloat(5.0), 7, 10, 45},
		{"redondeo hacia arriba", decimal.NewFromFloat(1.5), 3, 0, 5}, // 4.5 → 5 (redondeo half-up)
		{"redondeo hacia abajo", decimal.NewFromFloat(1.4), 3, 0, 4},  // 4.2 → 4
		{"sin consumo", decimal.Zero, 7, 10, 10},
		{"todo en cero", decimal.Zero, 0, 0, 0},
		{"solo stock de seguridad", decimal.Zero, 30, 25, 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := replenishment.ComputeROP(tc.avgDaily, tc.leadTime, tc.safetyStock)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetermineStatus(t *testing.T) {
	assert.Equal(t, entity.ReplenishmentAdequate,
		replenishment.DetermineStatus(decimal.NewFromInt(50), 45),
		"saldo por encima del ROP es adecuado")
	assert.Equal(t, entity.ReplenishmentAdequate,
		replenishment.DetermineStatus(decimal.NewFromInt(45), 45),
		"saldo igual al ROP es adecuado")
	assert.Equal(t, entity.ReplenishmentInadequate,
		replenishment.DetermineStatus(decimal.NewFromInt(44), 45),
		"saldo por debajo del ROP es inadecuado")
}

func TestPercentBelowROP(t *testing.T) {
	// (20 − 50) / 50 × 100 = −60
	pct := replenishment.PercentBelowROP(decimal.NewFromInt(20), 50)
	assert.True(t, pct.Equal(decimal.NewFromInt(-60)), "pct = %s", pct)

	// Saldo por encima del ROP no produce porcentaje positivo.
	pct = replenishment.PercentBelowROP(decimal.NewFromInt(80), 50)
	assert.True(t, pct.IsZero(), "pct = %s", pct)

	// ROP cero no divide: devuelve cero.
	pct = replenishment.PercentBelowROP(decimal.NewFromInt(10), 0)
	assert.True(t, pct.IsZero(), "pct = %s", pct)
}

func TestDetermineAlertLevel(t *testing.T) {
	tests := []struct {
		pct  int64
		want string
	}{
		{0, entity.AlertNone},
		{-10, entity.AlertNone},
		{-19, entity.AlertNone},
		{-20, entity.AlertMedium}, // el umbral −20 es inclusivo del lado de la alerta
		{-21, entity.AlertMedium},
		{-25, entity.AlertMedium},
		{-40, entity.AlertHigh}, // el umbral −40 es inclusivo
		{-45, entity.AlertHigh},
		{-60, entity.AlertCritical}, // el umbral −60 es inclusivo
		{-65, entity.AlertCritical},
		{-100, entity.AlertCritical},
	}
	for _, tc := range tests {
		got := replenishment.DetermineAlertLevel(decimal.NewFromInt(tc.pct))
		assert.Equal(t, tc.want, got, "pct=%d", tc.pct)
	}
}
