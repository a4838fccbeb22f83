package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	SupplierID  string                   `json:"supplier_id"`
	WarehouseID string                   `json:"warehouse_id"`
	Items       []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest línea de pedido a crear; el precio unitario se
// resuelve desde las cotizaciones.
type CreateOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ChangeOrderStatusRequest entrada para una transición de estado.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ConfirmReceiptRequest entrada para confirmar la recepción.
type ConfirmReceiptRequest struct {
	Responsible string `json:"responsible"`
}

// OrderItemResponse salida de una línea de pedido.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string              `json:"id"`
	SupplierID   string              `json:"supplier_id"`
	WarehouseID  string              `json:"warehouse_id"`
	Items        []OrderItemResponse `json:"items"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	ExpectedDate time.Time           `json:"expected_date"`
	Total        decimal.Decimal     `json:"total"`
}

// NewOrderResponse mapea la entidad a su respuesta.
func NewOrderResponse(o entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		})
	}
	return OrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		WarehouseID:  o.WarehouseID,
		Items:        items,
		Status:       o.Status,
		OrderDate:    o.OrderDate,
		ExpectedDate: o.ExpectedDate,
		Total:        o.Total,
	}
}
