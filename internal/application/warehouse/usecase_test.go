package warehouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/application/warehouse"
	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/infrastructure/memory"
	"github.com/gestock/sge-core/pkg/logger"
)

func newUseCase(t *testing.T) (*warehouse.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := warehouse.NewUseCase(store.Warehouses(), store.Orders(), store.Stock(), logger.Nop())
	return uc, store
}

func save(t *testing.T, uc *warehouse.UseCase, name, address string, capacity int64) *entity.Warehouse {
	t.Helper()
	w, err := uc.Save(context.Background(), entity.Warehouse{
		Name: name, Address: address, Capacity: decimal.NewFromInt(capacity),
	})
	require.NoError(t, err)
	return w
}

func seedStock(t *testing.T, store *memory.Store, warehouseID string, qty int64) {
	t.Helper()
	require.NoError(t, store.Movements().Save(context.Background(), &entity.Movement{
		ID: "mov-" + warehouseID, Timestamp: time.Now(), ProductID: "prod-1",
		WarehouseID: warehouseID, Quantity: decimal.NewFromInt(qty),
		Type: entity.MovementEntry, Reason: "seed", Responsible: "ana",
	}))
}

func TestUseCase_SaveCreaConEstadoActivo(t *testing.T) {
	uc, _ := newUseCase(t)

	w := save(t, uc, "Central", "Calle 1", 500)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, entity.StatusActive, w.Status)
}

func TestUseCase_SaveValidaEntrada(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, entity.Warehouse{Address: "Calle 1", Capacity: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")

	_, err = uc.Save(ctx, entity.Warehouse{Name: "Central", Capacity: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dirección obligatoria")

	_, err = uc.Save(ctx, entity.Warehouse{Name: "Central", Address: "Calle 1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "capacidad positiva")
}

func TestUseCase_SaveUnicidadDeNombreYDireccion(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	save(t, uc, "Central", "Calle 1", 500)

	_, err := uc.Save(ctx, entity.Warehouse{
		Name: "central", Address: "Calle 2", Capacity: decimal.NewFromInt(100),
	})
	var rv *domain.RuleViolationError
	require.ErrorAs(t, err, &rv, "el nombre se compara sin distinguir mayúsculas")
	assert.Equal(t, "R3H1", rv.Rule)

	_, err = uc.Save(ctx, entity.Warehouse{
		Name: "Norte", Address: "Calle 1", Capacity: decimal.NewFromInt(100),
	})
	require.ErrorAs(t, err, &rv)
	assert.Equal(t, "R2H1", rv.Rule)
}

func TestUseCase_SaveNoReduceCapacidadBajoLaOcupacion(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	w := save(t, uc, "Central", "Calle 1", 500)
	seedStock(t, store, w.ID, 200)

	actualizada := *w
	actualizada.Capacity = decimal.NewFromInt(150)
	_, err := uc.Save(ctx, actualizada)
	var rv *domain.RuleViolationError
	require.ErrorAs(t, err, &rv)
	assert.Equal(t, "R1H3", rv.Rule)

	// Reducir hasta la ocupación exacta sí se permite.
	actualizada.Capacity = decimal.NewFromInt(200)
	_, err = uc.Save(ctx, actualizada)
	assert.NoError(t, err)
}

func TestUseCase_RemoveConStockRemanente(t *testing.T) {
	uc, store := newUseCase(t)
	w := save(t, uc, "Central", "Calle 1", 500)
	seedStock(t, store, w.ID, 10)

	err := uc.Remove(context.Background(), w.ID)
	var rv *domain.RuleViolationError
	require.ErrorAs(t, err, &rv)
	assert.Equal(t, "R1H2", rv.Rule)
}

func TestUseCase_RemoveConPedidosEnCurso(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	w := save(t, uc, "Central", "Calle 1", 500)

	require.NoError(t, store.Orders().Save(ctx, &entity.Order{
		ID: "ped-1", SupplierID: "prov-1", WarehouseID: w.ID,
		Status: entity.OrderSent,
		Items: []entity.OrderItem{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		},
	}))

	err := uc.Remove(ctx, w.ID)
	var rv *domain.RuleViolationError
	require.ErrorAs(t, err, &rv)
	assert.Equal(t, "R2H2", rv.Rule)
}

func TestUseCase_RemoveBodegaVacia(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	w := save(t, uc, "Central", "Calle 1", 500)

	require.NoError(t, uc.Remove(ctx, w.ID))
	found, err := store.Warehouses().FindByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUseCase_ApplyActivateInactivate(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	w := save(t, uc, "Central", "Calle 1", 500)

	require.NoError(t, uc.Apply(ctx, w.ID, "inactivate"))
	inactiva, err := store.Warehouses().FindByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, inactiva.Status)

	require.NoError(t, uc.Apply(ctx, w.ID, "activate"))
	activa, err := store.Warehouses().FindByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, activa.Status)

	assert.ErrorIs(t, uc.Apply(ctx, w.ID, "demolish"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Apply(ctx, "no-existe", "activate"), domain.ErrNotFound)
}

func TestUseCase_InactivateConPedidosEnCurso(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	w := save(t, uc, "Central", "Calle 1", 500)

	require.NoError(t, store.Orders().Save(ctx, &entity.Order{
		ID: "ped-1", SupplierID: "prov-1", WarehouseID: w.ID,
		Status: entity.OrderInTransit,
		Items: []entity.OrderItem{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		},
	}))

	err := uc.Apply(ctx, w.ID, "inactivate")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWithOperationLogging_PropagaElResultado(t *testing.T) {
	ctx := context.Background()

	ok := warehouse.WithOperationLogging(logger.Nop(), "activate", "bod-1",
		func(ctx context.Context) error { return nil })
	assert.NoError(t, ok(ctx))

	fail := warehouse.WithOperationLogging(logger.Nop(), "inactivate", "bod-1",
		func(ctx context.Context) error { return domain.ErrConflict })
	assert.ErrorIs(t, fail(ctx), domain.ErrConflict)
}
