package event

import "github.com/gestock/sge-core/internal/domain/entity"

// Nombres de los eventos de dominio publicados por el núcleo.
const (
	MovementRecordedName = "movement.recorded"
	OrderCreatedName     = "order.created"
	OrderCancelledName   = "order.cancelled"
	OrderReceivedName    = "order.received"
	LeadTimeChangedName  = "supplier.lead_time_changed"
)

// Event es un evento de dominio identificado por su nombre.
type Event interface {
	EventName() string
}

// MovementRecorded se publica al registrar un movimiento de inventario.
type MovementRecorded struct {
	Movement entity.Movement
}

func (MovementRecorded) EventName() string { return MovementRecordedName }

// OrderCreated se publica al crear un pedido.
type OrderCreated struct {
	Order entity.Order
}

func (OrderCreated) EventName() string { return OrderCreatedName }

// OrderCancelled se publica al cancelar un pedido.
type OrderCancelled struct {
	Order entity.Order
}

func (OrderCancelled) EventName() string { return OrderCancelledName }

// OrderReceived se publica al confirmar la recepción de un pedido.
type OrderReceived struct {
	Order entity.Order
}

func (OrderReceived) EventName() string { return OrderReceivedName }

// LeadTimeChanged se publica cuando cambia el lead time de un proveedor.
type LeadTimeChanged struct {
	SupplierID string
	OldDays    int
	NewDays    int
}

func (LeadTimeChanged) EventName() string { return LeadTimeChangedName }
