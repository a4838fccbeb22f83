package product_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/application/product"
	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/infrastructure/memory"
	"github.com/gestock/sge-core/pkg/logger"
)

func newUseCase(t *testing.T) (*product.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return product.NewUseCase(store.Products(), logger.Nop()), store
}

func TestUseCase_SaveCreaConEstadoActivo(t *testing.T) {
	uc, _ := newUseCase(t)

	p, err := uc.Save(context.Background(), entity.Product{SKU: "SKU-001", Name: "Tornillo"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, entity.StatusActive, p.Status)
}

func TestUseCase_SaveValidaEntrada(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, entity.Product{Name: "Tornillo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SKU obligatorio")

	_, err = uc.Save(ctx, entity.Product{SKU: "SKU-001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")

	_, err = uc.Save(ctx, entity.Product{ID: "no-existe", SKU: "SKU-001", Name: "Tornillo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_SaveActualizacionConservaElEstado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	p, err := uc.Save(ctx, entity.Product{SKU: "SKU-001", Name: "Tornillo"})
	require.NoError(t, err)
	require.NoError(t, uc.Apply(ctx, p.ID, "inactivate"))

	updated, err := uc.Save(ctx, entity.Product{ID: p.ID, SKU: "SKU-001", Name: "Tornillo galvanizado"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, updated.Status)
	assert.Equal(t, "Tornillo galvanizado", updated.Name)
}

func TestUseCase_ApplyInactivatePerecederoConLotesVigentes(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	p, err := uc.Save(ctx, entity.Product{SKU: "SKU-001", Name: "Leche", Perishable: true})
	require.NoError(t, err)

	// Saldo positivo en una bodega: hay lotes vigentes.
	require.NoError(t, store.Movements().Save(ctx, &entity.Movement{
		ID: "mov-1", Timestamp: time.Now(), ProductID: p.ID, WarehouseID: "bod-1",
		Quantity: decimal.NewFromInt(10), Type: entity.MovementEntry,
		Reason: "seed", Responsible: "ana",
	}))

	err = uc.Apply(ctx, p.ID, "inactivate")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Consumido el saldo, la inactivación procede.
	require.NoError(t, store.Movements().Save(ctx, &entity.Movement{
		ID: "mov-2", Timestamp: time.Now(), ProductID: p.ID, WarehouseID: "bod-1",
		Quantity: decimal.NewFromInt(10), Type: entity.MovementExit,
		Reason: "seed", Responsible: "ana",
	}))
	require.NoError(t, uc.Apply(ctx, p.ID, "inactivate"))

	inactivo, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, inactivo.Status)
}

func TestUseCase_ApplyNoPerecederoSeInactivaConStock(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	p, err := uc.Save(ctx, entity.Product{SKU: "SKU-001", Name: "Tornillo"})
	require.NoError(t, err)
	require.NoError(t, store.Movements().Save(ctx, &entity.Movement{
		ID: "mov-1", Timestamp: time.Now(), ProductID: p.ID, WarehouseID: "bod-1",
		Quantity: decimal.NewFromInt(10), Type: entity.MovementEntry,
		Reason: "seed", Responsible: "ana",
	}))

	assert.NoError(t, uc.Apply(ctx, p.ID, "inactivate"),
		"la restricción de lotes aplica solo a perecederos")
}

func TestUseCase_ApplyOperacionDesconocida(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	p, err := uc.Save(ctx, entity.Product{SKU: "SKU-001", Name: "Tornillo"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Apply(ctx, p.ID, "destroy"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Apply(ctx, "no-existe", "activate"), domain.ErrNotFound)
}
