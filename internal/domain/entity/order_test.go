package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
)

func TestOrder_TransicionesValidas(t *testing.T) {
	valid := []struct{ from, to string }{
		{entity.OrderCreated, entity.OrderSent},
		{entity.OrderCreated, entity.OrderCancelled},
		{entity.OrderSent, entity.OrderInTransit},
		{entity.OrderSent, entity.OrderCancelled},
		{entity.OrderInTransit, entity.OrderReceived},
		{entity.OrderReceived, entity.OrderCompleted},
	}
	for _, tc := range valid {
		o := entity.Order{Status: tc.from}
		assert.True(t, o.CanTransitionTo(tc.to), "%s → %s debe ser válida", tc.from, tc.to)
	}

	invalid := []struct{ from, to string }{
		{entity.OrderCreated, entity.OrderReceived},
		{entity.OrderCreated, entity.OrderCompleted},
		{entity.OrderInTransit, entity.OrderCancelled},
		{entity.OrderCancelled, entity.OrderSent},
		{entity.OrderCompleted, entity.OrderCreated},
		{entity.OrderReceived, entity.OrderCancelled},
	}
	for _, tc := range invalid {
		o := entity.Order{Status: tc.from}
		assert.False(t, o.CanTransitionTo(tc.to), "%s → %s debe ser inválida", tc.from, tc.to)
	}
}

func TestOrder_WithStatusDevuelveCopia(t *testing.T) {
	original := entity.Order{ID: "ped-1", Status: entity.OrderCreated}

	sent, err := original.WithStatus(entity.OrderSent)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderSent, sent.Status)
	assert.Equal(t, entity.OrderCreated, original.Status, "el valor original no se modifica")
}

func TestOrder_WithStatusTransicionInvalida(t *testing.T) {
	o := entity.Order{ID: "ped-1", Status: entity.OrderCancelled}

	_, err := o.WithStatus(entity.OrderSent)
	require.Error(t, err)
	assert.True(t, domain.IsStateError(err), "la transición inválida es un error de estado")
}

func TestOrder_Totales(t *testing.T) {
	o := entity.Order{
		Items: []entity.OrderItem{
			{ProductID: "p1", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(10.50)},
			{ProductID: "p2", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(4.25)},
		},
	}
	assert.True(t, o.TotalQuantity().Equal(decimal.NewFromInt(5)))
	// 3 × 10.50 + 2 × 4.25 = 31.50 + 8.50 = 40.00
	assert.True(t, o.ComputeTotal().Equal(decimal.NewFromInt(40)), "total = %s", o.ComputeTotal())
}
