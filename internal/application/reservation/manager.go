package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// Manager liga el ciclo de vida de las reservas al de los pedidos:
// crea una reserva ACTIVE por cada línea al crearse el pedido, y las
// libera cuando el pedido se cancela o se recibe.
type Manager struct {
	reservations repository.ReservationRepository
	log          *logger.Logger
}

// NewManager construye el gestor y lo suscribe a los eventos de pedido.
func NewManager(reservations repository.ReservationRepository, bus *event.Bus, log *logger.Logger) *Manager {
	m := &Manager{reservations: reservations, log: log}
	bus.Register(event.OrderCreatedName, m.handleOrderCreated)
	bus.Register(event.OrderCancelledName, m.handleOrderCancelled)
	bus.Register(event.OrderReceivedName, m.handleOrderReceived)
	return m
}

func (m *Manager) handleOrderCreated(ctx context.Context, ev event.Event) error {
	created, ok := ev.(event.OrderCreated)
	if !ok {
		return nil
	}
	return m.CreateForOrder(ctx, created.Order)
}

func (m *Manager) handleOrderCancelled(ctx context.Context, ev event.Event) error {
	cancelled, ok := ev.(event.OrderCancelled)
	if !ok {
		return nil
	}
	return m.ReleaseForOrder(ctx, cancelled.Order.ID, entity.ReleaseCancelled)
}

func (m *Manager) handleOrderReceived(ctx context.Context, ev event.Event) error {
	received, ok := ev.(event.OrderReceived)
	if !ok {
		return nil
	}
	return m.ReleaseForOrder(ctx, received.Order.ID, entity.ReleaseReceived)
}

// CreateForOrder crea y persiste una reserva activa por cada línea del
// pedido, todas con el mismo timestamp.
func (m *Manager) CreateForOrder(ctx context.Context, order entity.Order) error {
	now := time.Now()
	for _, item := range order.Items {
		r := &entity.Reservation{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			ReservedAt: now,
			Status:     entity.ReservationActive,
		}
		if err := m.reservations.Save(ctx, r); err != nil {
			return fmt.Errorf("guardar reserva de producto %s: %w", item.ProductID, err)
		}
	}
	m.log.Info().
		Str("order_id", order.ID).
		Int("reservations", len(order.Items)).
		Msg("reservas creadas para pedido")
	return nil
}

// ReleaseForOrder libera todas las reservas aún activas del pedido con
// el tipo de liberación dado. Las ya liberadas se omiten.
func (m *Manager) ReleaseForOrder(ctx context.Context, orderID, releaseType string) error {
	reservations, err := m.reservations.ListByOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("listar reservas del pedido %s: %w", orderID, err)
	}
	now := time.Now()
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		released, err := r.Release(releaseType, now)
		if err != nil {
			return err
		}
		if err := m.reservations.Save(ctx, &released); err != nil {
			return fmt.Errorf("guardar reserva liberada %s: %w", r.ID, err)
		}
	}
	return nil
}

// Release libera una reserva individual. Liberar una reserva ya
// liberada falla con un error de estado.
func (m *Manager) Release(ctx context.Context, reservationID, releaseType string) error {
	r, err := m.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("buscar reserva: %w", err)
	}
	if r == nil {
		return fmt.Errorf("%w: reserva %s", domain.ErrNotFound, reservationID)
	}
	released, err := r.Release(releaseType, time.Now())
	if err != nil {
		return err
	}
	return m.reservations.Save(ctx, &released)
}

// ListByOrder devuelve las reservas de un pedido.
func (m *Manager) ListByOrder(ctx context.Context, orderID string) ([]entity.Reservation, error) {
	return m.reservations.ListByOrder(ctx, orderID)
}
