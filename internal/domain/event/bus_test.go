package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/pkg/logger"
)

type testEvent struct{ name string }

func (e testEvent) EventName() string { return e.name }

func TestBus_InvocaHandlersEnOrdenDeRegistro(t *testing.T) {
	bus := event.NewBus(logger.Nop())

	var calls []string
	bus.Register("test.event", func(ctx context.Context, e event.Event) error {
		calls = append(calls, "primero")
		return nil
	})
	bus.Register("test.event", func(ctx context.Context, e event.Event) error {
		calls = append(calls, "segundo")
		return nil
	})
	bus.Register("otro.evento", func(ctx context.Context, e event.Event) error {
		calls = append(calls, "ajeno")
		return nil
	})

	err := bus.Publish(context.Background(), testEvent{name: "test.event"})
	require.NoError(t, err)
	assert.Equal(t, []string{"primero", "segundo"}, calls,
		"solo los handlers del evento publicado, en orden de registro")
}

func TestBus_SinHandlersNoFalla(t *testing.T) {
	bus := event.NewBus(logger.Nop())
	err := bus.Publish(context.Background(), testEvent{name: "sin.handlers"})
	assert.NoError(t, err)
}

func TestBus_ErrorDeUnHandlerNoBloqueaLosDemas(t *testing.T) {
	bus := event.NewBus(logger.Nop())

	errPrimero := errors.New("falló el primero")
	var segundoEjecutado bool
	bus.Register("test.event", func(ctx context.Context, e event.Event) error {
		return errPrimero
	})
	bus.Register("test.event", func(ctx context.Context, e event.Event) error {
		segundoEjecutado = true
		return nil
	})

	err := bus.Publish(context.Background(), testEvent{name: "test.event"})
	require.Error(t, err)
	assert.True(t, segundoEjecutado, "el handler posterior al fallido debe ejecutarse")
	assert.ErrorIs(t, err, errPrimero, "el error del handler fallido se propaga al publicador")
}

func TestBus_AgregaErroresDeVariosHandlers(t *testing.T) {
	bus := event.NewBus(logger.Nop())

	errA := errors.New("error A")
	errB := errors.New("error B")
	bus.Register("test.event", func(ctx context.Context, e event.Event) error { return errA })
	bus.Register("test.event", func(ctx context.Context, e event.Event) error { return nil })
	bus.Register("test.event", func(ctx context.Context, e event.Event) error { return errB })

	err := bus.Publish(context.Background(), testEvent{name: "test.event"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestBus_PanicEnHandlerSeConvierteEnError(t *testing.T) {
	bus := event.NewBus(logger.Nop())

	var siguienteEjecutado bool
	bus.Register("test.event", func(ctx context.Context, e event.Event) error {
		panic("algo salió muy mal")
	})
	bus.Register("test.event", func(ctx context.Context, e event.Event) error {
		siguienteEjecutado = true
		return nil
	})

	err := bus.Publish(context.Background(), testEvent{name: "test.event"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic en handler")
	assert.True(t, siguienteEjecutado, "un panic aislado no impide notificar al resto")
}
