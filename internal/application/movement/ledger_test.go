package movement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/application/movement"
	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/infrastructure/memory"
	"github.com/gestock/sge-core/pkg/logger"
)

func newLedger(t *testing.T) (*movement.Ledger, *memory.Store, *event.Bus) {
	t.Helper()
	store := memory.NewStore()
	bus := event.NewBus(logger.Nop())
	ledger := movement.NewLedger(store.Movements(), store.Products(), store.Warehouses(), bus)

	ctx := context.Background()
	require.NoError(t, store.Products().Save(ctx, &entity.Product{
		ID: "prod-1", SKU: "SKU-001", Name: "Tornillo", Status: entity.StatusActive,
	}))
	require.NoError(t, store.Warehouses().Save(ctx, &entity.Warehouse{
		ID: "bod-1", Name: "Central", Address: "Calle 1", Capacity: decimal.NewFromInt(1000), Status: entity.StatusActive,
	}))
	return ledger, store, bus
}

func TestLedger_RecordRegistraYPublica(t *testing.T) {
	ledger, store, bus := newLedger(t)
	ctx := context.Background()

	var published []entity.Movement
	bus.Register(event.MovementRecordedName, func(ctx context.Context, e event.Event) error {
		published = append(published, e.(event.MovementRecorded).Movement)
		return nil
	})

	ts := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	mov, err := ledger.Record(ctx, movement.RecordInput{
		ProductID:   "prod-1",
		WarehouseID: "bod-1",
		Quantity:    decimal.NewFromInt(25),
		Type:        entity.MovementEntry,
		Reason:      "compra inicial",
		Responsible: "ana",
		Timestamp:   ts,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, ts, mov.Timestamp)

	saved, err := store.Movements().FindByID(ctx, mov.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.Quantity.Equal(decimal.NewFromInt(25)))

	require.Len(t, published, 1)
	assert.Equal(t, mov.ID, published[0].ID)
}

func TestLedger_RecordSinTimestampUsaAhora(t *testing.T) {
	ledger, _, _ := newLedger(t)

	before := time.Now()
	mov, err := ledger.Record(context.Background(), movement.RecordInput{
		ProductID:   "prod-1",
		WarehouseID: "bod-1",
		Quantity:    decimal.NewFromInt(1),
		Type:        entity.MovementExit,
		Reason:      "venta",
		Responsible: "ana",
	})
	require.NoError(t, err)
	assert.False(t, mov.Timestamp.Before(before))
}

func TestLedger_RecordValidaEntrada(t *testing.T) {
	ledger, _, _ := newLedger(t)
	ctx := context.Background()

	base := movement.RecordInput{
		ProductID:   "prod-1",
		WarehouseID: "bod-1",
		Quantity:    decimal.NewFromInt(5),
		Type:        entity.MovementEntry,
		Reason:      "ajuste",
		Responsible: "ana",
	}

	t.Run("tipo desconocido", func(t *testing.T) {
		in := base
		in.Type = "TRANSFER"
		_, err := ledger.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("cantidad no positiva", func(t *testing.T) {
		in := base
		in.Quantity = decimal.Zero
		_, err := ledger.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("motivo vacío", func(t *testing.T) {
		in := base
		in.Reason = "   "
		_, err := ledger.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("responsable vacío", func(t *testing.T) {
		in := base
		in.Responsible = ""
		_, err := ledger.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("producto inexistente", func(t *testing.T) {
		in := base
		in.ProductID = "no-existe"
		_, err := ledger.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("bodega inexistente", func(t *testing.T) {
		in := base
		in.WarehouseID = "no-existe"
		_, err := ledger.Record(ctx, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLedger_ErrorDeHandlerSePropaga(t *testing.T) {
	ledger, _, bus := newLedger(t)

	errHandler := errors.New("reacción fallida")
	bus.Register(event.MovementRecordedName, func(ctx context.Context, e event.Event) error {
		return errHandler
	})

	_, err := ledger.Record(context.Background(), movement.RecordInput{
		ProductID:   "prod-1",
		WarehouseID: "bod-1",
		Quantity:    decimal.NewFromInt(5),
		Type:        entity.MovementEntry,
		Reason:      "ajuste",
		Responsible: "ana",
	})
	assert.ErrorIs(t, err, errHandler)
}

func TestLedger_Remove(t *testing.T) {
	ledger, store, _ := newLedger(t)
	ctx := context.Background()

	mov, err := ledger.Record(ctx, movement.RecordInput{
		ProductID:   "prod-1",
		WarehouseID: "bod-1",
		Quantity:    decimal.NewFromInt(5),
		Type:        entity.MovementEntry,
		Reason:      "ajuste",
		Responsible: "ana",
	})
	require.NoError(t, err)

	require.NoError(t, ledger.Remove(ctx, mov.ID))
	deleted, err := store.Movements().FindByID(ctx, mov.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	err = ledger.Remove(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
