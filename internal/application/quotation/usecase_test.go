package quotation_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/application/quotation"
	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	domquo "github.com/gestock/sge-core/internal/domain/quotation"
	"github.com/gestock/sge-core/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*quotation.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := quotation.NewUseCase(store.Quotations(), store.Suppliers(), store.Products(), domquo.Full{})

	ctx := context.Background()
	require.NoError(t, store.Suppliers().Save(ctx, &entity.Supplier{
		ID: "prov-1", Name: "Aceros SA", TaxID: "900111222",
		LeadTimeDays: 5, Status: entity.StatusActive,
	}))
	require.NoError(t, store.Products().Save(ctx, &entity.Product{
		ID: "prod-1", SKU: "SKU-001", Name: "Tornillo", Status: entity.StatusActive,
	}))
	return uc, store
}

func TestUseCase_RegisterConDefaults(t *testing.T) {
	uc, _ := newUseCase(t)

	q, err := uc.Register(context.Background(), entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(10), LeadTimeDays: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, entity.QuotationActive, q.Validity)
	assert.Equal(t, entity.QuotationPending, q.ApprovalStatus)
}

func TestUseCase_RegisterValidaEntrada(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.Zero, LeadTimeDays: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio positivo")

	_, err = uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(10), LeadTimeDays: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lead time mínimo")

	_, err = uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "no-existe",
		Price: decimal.NewFromInt(10), LeadTimeDays: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Register(ctx, entity.Quotation{
		ProductID: "no-existe", SupplierID: "prov-1",
		Price: decimal.NewFromInt(10), LeadTimeDays: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Suppliers().Save(ctx, &entity.Supplier{
		ID: "prov-inactivo", Name: "Cerrado SA", TaxID: "900333444",
		LeadTimeDays: 5, Status: entity.StatusInactive,
	}))
	_, err = uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-inactivo",
		Price: decimal.NewFromInt(10), LeadTimeDays: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInactiveSupplier)
}

func TestUseCase_ApproveYExpire(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	q, err := uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(10), LeadTimeDays: 5,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Approve(ctx, q.ID))
	require.NoError(t, uc.Expire(ctx, q.ID))

	quotes, err := uc.ListByProduct(ctx, "prod-1")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, entity.QuotationApproved, quotes[0].ApprovalStatus)
	assert.Equal(t, entity.QuotationExpired, quotes[0].Validity)

	assert.ErrorIs(t, uc.Approve(ctx, "no-existe"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Expire(ctx, "no-existe"), domain.ErrNotFound)
}

func TestUseCase_BestForProduct(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.BestForProduct(ctx, "prod-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin cotizaciones no hay mejor")

	_, err = uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(12), LeadTimeDays: 2,
	})
	require.NoError(t, err)
	barata, err := uc.Register(ctx, entity.Quotation{
		ProductID: "prod-1", SupplierID: "prov-1",
		Price: decimal.NewFromInt(9), LeadTimeDays: 10,
	})
	require.NoError(t, err)

	best, err := uc.BestForProduct(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, barata.ID, best.ID, "el precio domina al lead time")
}
