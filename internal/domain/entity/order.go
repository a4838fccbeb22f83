package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderCreated   = "CREATED"
	OrderSent      = "SENT"
	OrderInTransit = "IN_TRANSIT"
	OrderReceived  = "RECEIVED"
	OrderCancelled = "CANCELLED"
	OrderCompleted = "COMPLETED"
)

// orderTransitions define las transiciones de estado válidas.
// CANCELLED y COMPLETED son terminales.
var orderTransitions = map[string][]string{
	OrderCreated:   {OrderSent, OrderCancelled},
	OrderSent:      {OrderInTransit, OrderCancelled},
	OrderInTransit: {OrderReceived},
	OrderReceived:  {OrderCompleted},
}

// OrderItem es una línea de pedido.
type OrderItem struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Order representa un pedido de reposición a un proveedor.
// Las transiciones de estado devuelven una copia nueva; el valor
// original no se modifica.
type Order struct {
	ID           string
	SupplierID   string
	WarehouseID  string
	Items        []OrderItem
	Status       string
	OrderDate    time.Time
	ExpectedDate time.Time // derivada del lead time del proveedor
	Total        decimal.Decimal
}

// CanTransitionTo indica si el pedido admite la transición al estado dado.
func (o Order) CanTransitionTo(status string) bool {
	for _, s := range orderTransitions[o.Status] {
		if s == status {
			return true
		}
	}
	return false
}

// WithStatus devuelve una copia del pedido en el nuevo estado, o un
// error de estado si la transición no es válida.
func (o Order) WithStatus(status string) (Order, error) {
	if !o.CanTransitionTo(status) {
		return o, domain.NewStateError("transición de pedido inválida: %s → %s", o.Status, status)
	}
	next := o
	next.Status = status
	return next, nil
}

// TotalQuantity devuelve la suma de cantidades de todas las líneas.
func (o Order) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Quantity)
	}
	return total
}

// ComputeTotal devuelve la suma de subtotales de las líneas.
func (o Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
