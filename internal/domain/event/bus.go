package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestock/sge-core/pkg/logger"
)

// Handler reacciona a un evento de dominio. Se invoca en la goroutine
// del publicador; el error se propaga al publicador vía Publish.
type Handler func(ctx context.Context, e Event) error

// Bus es el despachador síncrono de eventos en proceso. Los handlers se
// invocan en orden de registro, dentro de la llamada que publica. No hay
// cola, reintentos ni garantías de orden entre tipos distintos.
//
// Política de fallos: cada handler está aislado — un error o panic se
// registra en el log y no impide la notificación de los handlers
// restantes. Publish devuelve el error agregado de los handlers
// fallidos, de modo que la operación que originó el evento pueda
// decidir si falla su propia transacción.
type Bus struct {
	log      *logger.Logger
	handlers map[string][]Handler
}

// NewBus construye el bus de eventos.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		log:      log,
		handlers: make(map[string][]Handler),
	}
}

// Register agrega un handler al final de la lista del evento dado.
// Orden de registro = orden de invocación. No es seguro registrar
// concurrentemente con Publish; el cableado ocurre en el arranque.
func (b *Bus) Register(eventName string, h Handler) {
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

// Publish invoca sincrónicamente todos los handlers registrados para el
// evento, en orden de registro. Devuelve el error conjunto de los
// handlers que fallaron, o nil si todos terminaron bien.
func (b *Bus) Publish(ctx context.Context, e Event) error {
	var failures []error
	for i, h := range b.handlers[e.EventName()] {
		if err := b.invoke(ctx, h, e); err != nil {
			b.log.Error().
				Err(err).
				Str("event", e.EventName()).
				Int("handler", i).
				Msg("handler de evento falló")
			failures = append(failures, fmt.Errorf("handler %d de %s: %w", i, e.EventName(), err))
		}
	}
	return errors.Join(failures...)
}

// invoke ejecuta un handler convirtiendo un panic en error.
func (b *Bus) invoke(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en handler: %v", r)
		}
	}()
	return h(ctx, e)
}
