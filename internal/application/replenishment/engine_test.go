package replenishment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/application/replenishment"
	"github.com/gestock/sge-core/internal/application/supplier"
	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/quotation"
	"github.com/gestock/sge-core/internal/infrastructure/memory"
	"github.com/gestock/sge-core/pkg/logger"
)

// observerSpy acumula las alertas notificadas.
type observerSpy struct {
	alerts []entity.Alert
	err    error
}

func (o *observerSpy) AlertRaised(ctx context.Context, a entity.Alert) error {
	o.alerts = append(o.alerts, a)
	return o.err
}

type engineFixture struct {
	engine *replenishment.Engine
	store  *memory.Store
	bus    *event.Bus
	now    time.Time
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := memory.NewStore()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Now = func() time.Time { return now }

	bus := event.NewBus(logger.Nop())
	engine := replenishment.NewEngine(
		store.Points(), store.Alerts(), store.Quotations(), store.Suppliers(),
		store.Products(), store.Warehouses(), store.Stock(), quotation.Full{},
		bus, logger.Nop(),
	)

	ctx := context.Background()
	require.NoError(t, store.Products().Save(ctx, &entity.Product{
		ID: "prod-1", SKU: "SKU-001", Name: "Tornillo", Status: entity.StatusActive,
	}))
	require.NoError(t, store.Warehouses().Save(ctx, &entity.Warehouse{
		ID: "bod-1", Name: "Central", Address: "Calle 1",
		Capacity: decimal.NewFromInt(10000), Status: entity.StatusActive,
	}))
	return &engineFixture{engine: engine, store: store, bus: bus, now: now}
}

// seedMovement inserta un movimiento directamente en el repositorio, sin
// pasar por el ledger, para controlar el timestamp con precisión.
func (f *engineFixture) seedMovement(t *testing.T, id, movType string, qty int64, daysAgo int) {
	t.Helper()
	require.NoError(t, f.store.Movements().Save(context.Background(), &entity.Movement{
		ID:          id,
		Timestamp:   f.now.AddDate(0, 0, -daysAgo),
		ProductID:   "prod-1",
		WarehouseID: "bod-1",
		Quantity:    decimal.NewFromInt(qty),
		Type:        movType,
		Reason:      "seed",
		Responsible: "ana",
	}))
}

func (f *engineFixture) registerPoint(t *testing.T, safetyStock int64) *entity.ReplenishmentPoint {
	t.Helper()
	point, err := f.engine.Register(context.Background(), entity.ReplenishmentPoint{
		WarehouseID: "bod-1", ProductID: "prod-1", SafetyStock: safetyStock,
	})
	require.NoError(t, err)
	return point
}

func TestEngine_RegisterValidaYRechazaDuplicados(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	point := f.registerPoint(t, 5)
	assert.NotEmpty(t, point.ID)

	_, err := f.engine.Register(ctx, entity.ReplenishmentPoint{
		WarehouseID: "bod-1", ProductID: "prod-1", SafetyStock: 0,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.engine.Register(ctx, entity.ReplenishmentPoint{
		WarehouseID: "bod-1", ProductID: "prod-1", SafetyStock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.engine.Register(ctx, entity.ReplenishmentPoint{
		WarehouseID: "bod-1", ProductID: "no-existe", SafetyStock: 0,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_RecomputeConCotizacion(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Consumo: 90 unidades EXIT dentro de la ventana de 90 días → 1/día.
	f.seedMovement(t, "m-in", entity.MovementEntry, 100, 10)
	f.seedMovement(t, "m-out", entity.MovementExit, 90, 5)

	// Lead time de la mejor cotización: 10 días.
	require.NoError(t, f.store.Quotations().Save(ctx, &entity.Quotation{
		ID: "cot-1", ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(4), LeadTimeDays: 10, Validity: entity.QuotationActive,
	}))

	f.registerPoint(t, 5)

	a, err := f.engine.Recompute(ctx, "bod-1", "prod-1")
	require.NoError(t, err)

	// ROP = round(1 × 10) + 5 = 15; saldo = 100 − 90 = 10.
	assert.Equal(t, int64(15), a.ROP)
	assert.True(t, a.CurrentBalance.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, entity.ReplenishmentInadequate, a.Status)
	// (10 − 15) / 15 × 100 = −33.33… → alerta MEDIUM.
	require.NotNil(t, a.Alert)
	assert.Equal(t, entity.AlertMedium, a.Alert.Level)

	alertas, err := f.engine.AlertsByWarehouse(ctx, "bod-1")
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Equal(t, a.Alert.ID, alertas[0].ID)
}

func TestEngine_RecomputeSinCotizacionUsaLeadTimePorDefecto(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.seedMovement(t, "m-in", entity.MovementEntry, 100, 10)
	f.seedMovement(t, "m-out", entity.MovementExit, 90, 5)
	f.registerPoint(t, 5)

	a, err := f.engine.Recompute(ctx, "bod-1", "prod-1")
	require.NoError(t, err)

	// ROP = round(1 × 7) + 5 = 12; saldo 10 → −16.67%, sin alerta.
	assert.Equal(t, int64(12), a.ROP)
	assert.Equal(t, entity.ReplenishmentInadequate, a.Status)
	assert.Nil(t, a.Alert)

	alertas, err := f.engine.AlertsByWarehouse(ctx, "bod-1")
	require.NoError(t, err)
	assert.Empty(t, alertas)
}

func TestEngine_RecomputeIgnoraConsumoFueraDeLaVentana(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.seedMovement(t, "m-in", entity.MovementEntry, 500, 200)
	f.seedMovement(t, "m-out-vieja", entity.MovementExit, 450, 120) // fuera de la ventana
	f.registerPoint(t, 0)

	a, err := f.engine.Recompute(ctx, "bod-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.ROP, "sin consumo reciente ni stock de seguridad el ROP es cero")
	assert.Equal(t, entity.ReplenishmentAdequate, a.Status)
}

func TestEngine_RecomputeSinPuntoFalla(t *testing.T) {
	f := newEngineFixture(t)
	_, err := f.engine.Recompute(context.Background(), "bod-1", "prod-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_AlertaCriticaNotificaObservadores(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	spy := &observerSpy{}
	fallido := &observerSpy{err: errors.New("canal caído")}
	f.engine.AddObserver(fallido)
	f.engine.AddObserver(spy)

	// Saldo 5 contra ROP 95: −94.7% → CRITICAL.
	f.seedMovement(t, "m-in", entity.MovementEntry, 95, 10)
	f.seedMovement(t, "m-out", entity.MovementExit, 90, 5)
	require.NoError(t, f.store.Quotations().Save(ctx, &entity.Quotation{
		ID: "cot-1", ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(4), LeadTimeDays: 90, Validity: entity.QuotationActive,
	}))
	f.registerPoint(t, 5)

	a, err := f.engine.Recompute(ctx, "bod-1", "prod-1")
	require.NoError(t, err, "el fallo de un observador no interrumpe la evaluación")
	require.NotNil(t, a.Alert)
	assert.Equal(t, entity.AlertCritical, a.Alert.Level)

	require.Len(t, spy.alerts, 1, "el observador posterior al fallido fue notificado")
	assert.Equal(t, a.Alert.ID, spy.alerts[0].ID)
}

func TestEngine_CambioDeLeadTimeRecalculaLosPuntosDelProveedor(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.seedMovement(t, "m-in", entity.MovementEntry, 100, 10)
	f.seedMovement(t, "m-out", entity.MovementExit, 90, 5)
	// La cotización liga el producto al proveedor; el lead time vigente
	// es el del proveedor, no el capturado en la cotización.
	require.NoError(t, f.store.Suppliers().Save(ctx, &entity.Supplier{
		ID: "prov-1", ClientID: "cli-1", Name: "Aceros SA", TaxID: "76.111.222-3",
		LeadTimeDays: 5, Status: entity.StatusActive,
	}))
	require.NoError(t, f.store.Quotations().Save(ctx, &entity.Quotation{
		ID: "cot-1", ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(4), LeadTimeDays: 10, Validity: entity.QuotationActive,
	}))
	f.registerPoint(t, 5)

	a, err := f.engine.Recompute(ctx, "bod-1", "prod-1")
	require.NoError(t, err)
	// ROP = round(1 × 5) + 5 = 10; saldo 10 → sin alerta.
	assert.Equal(t, int64(10), a.ROP)
	assert.Nil(t, a.Alert)

	// Actualizar el proveedor publica LeadTimeChanged en el mismo bus y
	// el motor recalcula los puntos de sus productos.
	proveedores := supplier.NewUseCase(f.store.Suppliers(), f.store.Orders(), f.bus, logger.Nop())
	_, err = proveedores.Save(ctx, entity.Supplier{
		ID: "prov-1", ClientID: "cli-1", Name: "Aceros SA", TaxID: "76.111.222-3",
		LeadTimeDays: 60, Status: entity.StatusActive,
	})
	require.NoError(t, err)

	// ROP = round(1 × 60) + 5 = 65; saldo 10 → −84.6% → CRITICAL.
	alertas, err := f.engine.AlertsByWarehouse(ctx, "bod-1")
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Equal(t, entity.AlertCritical, alertas[0].Level)
	assert.Equal(t, int64(65), alertas[0].ROP)
}

func TestEngine_UpdateSafetyStock(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	point := f.registerPoint(t, 5)

	require.NoError(t, f.engine.UpdateSafetyStock(ctx, point.ID, 20))

	a, err := f.engine.Recompute(ctx, "bod-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), a.ROP, "sin consumo, el ROP es el stock de seguridad")

	err = f.engine.UpdateSafetyStock(ctx, point.ID, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	err = f.engine.UpdateSafetyStock(ctx, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
