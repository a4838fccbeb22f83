package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
)

func TestReservation_Release(t *testing.T) {
	r := entity.Reservation{
		ID:        "res-1",
		OrderID:   "ped-1",
		ProductID: "prod-1",
		Quantity:  decimal.NewFromInt(5),
		Status:    entity.ReservationActive,
	}
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	released, err := r.Release(entity.ReleaseReceived, at)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationReleased, released.Status)
	assert.Equal(t, entity.ReleaseReceived, released.ReleaseType)
	assert.Equal(t, at, released.ReleasedAt)
	assert.True(t, r.IsActive(), "el valor original sigue activo")
}

func TestReservation_ReleaseDobleFalla(t *testing.T) {
	r := entity.Reservation{ID: "res-1", Status: entity.ReservationActive}

	released, err := r.Release(entity.ReleaseCancelled, time.Now())
	require.NoError(t, err)

	_, err = released.Release(entity.ReleaseReceived, time.Now())
	assert.ErrorIs(t, err, domain.ErrAlreadyReleased)
}
