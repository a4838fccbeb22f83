package replenishment

import (
	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// ComputeROP calcula el punto de reorden:
// round(consumo medio diario × lead time en días) + stock de seguridad,
// con piso en 0 (nunca negativo).
func ComputeROP(avgDailyConsumption decimal.Decimal, leadTimeDays int, safetyStock int64) int64 {
	demand := avgDailyConsumption.
		Mul(decimal.NewFromInt(int64(leadTimeDays))).
		Round(0).
		IntPart()
	rop := demand + safetyStock
	if rop < 0 {
		return 0
	}
	return rop
}

// DetermineStatus compara el saldo actual contra el ROP:
// ADEQUATE si saldo ≥ ROP, INADEQUATE en caso contrario.
func DetermineStatus(currentBalance decimal.Decimal, rop int64) string {
	if currentBalance.GreaterThanOrEqual(decimal.NewFromInt(rop)) {
		return entity.ReplenishmentAdequate
	}
	return entity.ReplenishmentInadequate
}

// PercentBelowROP devuelve el porcentaje (≤ 0) en que el saldo está por
// debajo del ROP: (saldo − rop) / rop × 100. Con ROP cero devuelve cero.
func PercentBelowROP(currentBalance decimal.Decimal, rop int64) decimal.Decimal {
	if rop <= 0 {
		return decimal.Zero
	}
	ropDec := decimal.NewFromInt(rop)
	pct := currentBalance.Sub(ropDec).Div(ropDec).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return pct
}

// DetermineAlertLevel determina el nivel de alerta según el porcentaje
// por debajo del ROP (valor ≤ 0). Los límites son inclusivos del lado
// más negativo:
//
//	> −20          → NONE (sin alerta)
//	≤ −60          → CRITICAL
//	≤ −40          → HIGH
//	(−40, −20]     → MEDIUM
func DetermineAlertLevel(percentBelowROP decimal.Decimal) string {
	switch {
	case percentBelowROP.GreaterThan(decimal.NewFromInt(-20)):
		return entity.AlertNone
	case percentBelowROP.LessThanOrEqual(decimal.NewFromInt(-60)):
		return entity.AlertCritical
	case percentBelowROP.LessThanOrEqual(decimal.NewFromInt(-40)):
		return entity.AlertHigh
	default:
		return entity.AlertMedium
	}
}
