package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appmovement "github.com/gestock/sge-core/internal/application/movement"
	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/quotation"
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// UseCase cubre el ciclo de vida de los pedidos a proveedores: creación
// con precios tomados de cotizaciones, cancelación, recepción y cambios
// de estado. Cada transición publica su evento en el bus; las reservas
// y el motor de reposición reaccionan a esos eventos.
type UseCase struct {
	orders     repository.OrderRepository
	suppliers  repository.SupplierRepository
	warehouses repository.WarehouseRepository
	products   repository.ProductRepository
	quotations repository.QuotationRepository
	stock      repository.StockReader
	selector   quotation.Selector
	ledger     *appmovement.Ledger
	tx         TxRunner
	bus        *event.Bus
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(
	orders repository.OrderRepository,
	suppliers repository.SupplierRepository,
	warehouses repository.WarehouseRepository,
	products repository.ProductRepository,
	quotations repository.QuotationRepository,
	stock repository.StockReader,
	selector quotation.Selector,
	ledger *appmovement.Ledger,
	tx TxRunner,
	bus *event.Bus,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orders:     orders,
		suppliers:  suppliers,
		warehouses: warehouses,
		products:   products,
		quotations: quotations,
		stock:      stock,
		selector:   selector,
		ledger:     ledger,
		tx:         tx,
		bus:        bus,
		log:        log,
	}
}

// CreateInput entrada para crear un pedido. Las líneas llevan solo
// producto y cantidad; el precio unitario se resuelve desde las
// cotizaciones del proveedor.
type CreateInput struct {
	SupplierID  string
	WarehouseID string
	Items       []CreateItem
}

// CreateItem es una línea de pedido a crear.
type CreateItem struct {
	ProductID string
	Quantity  decimal.Decimal
}

// Create valida proveedor y bodega activos, capacidad disponible y
// productos activos, fija el precio de cada línea desde la cotización
// del proveedor (o la mejor cotización disponible), calcula el total y
// la fecha esperada con el lead time del proveedor, persiste el pedido
// en estado CREATED y publica OrderCreated.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el pedido debe tener al menos una línea", domain.ErrInvalidInput)
	}
	supplier, err := uc.suppliers.FindByID(ctx, in.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("buscar proveedor: %w", err)
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, in.SupplierID)
	}
	if !supplier.IsActive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInactiveSupplier, supplier.Name)
	}
	warehouse, err := uc.warehouses.FindByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("buscar bodega: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}
	if !warehouse.IsActive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInactiveWarehouse, warehouse.Name)
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: la cantidad de la línea debe ser positiva", domain.ErrInvalidInput)
		}
		product, err := uc.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("buscar producto: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
		}
		if !product.IsActive() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInactiveProduct, product.Name)
		}
		price, err := uc.priceFor(ctx, line.ProductID, in.SupplierID)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: price,
		})
	}

	order := entity.Order{
		ID:          uuid.New().String(),
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Items:       items,
		Status:      entity.OrderCreated,
		OrderDate:   time.Now(),
	}
	order.ExpectedDate = order.OrderDate.AddDate(0, 0, supplier.LeadTimeDays)
	order.Total = order.ComputeTotal()

	occupation, err := uc.stock.Occupation(ctx, in.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("consultar ocupación: %w", err)
	}
	free := warehouse.FreeCapacity(occupation)
	if order.TotalQuantity().GreaterThan(free) {
		return nil, fmt.Errorf("%w: el pedido excede la capacidad libre de la bodega (libre %s, pedido %s)",
			domain.ErrConflict, free, order.TotalQuantity())
	}

	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Save(ctx, &order)
	})
	if err != nil {
		return nil, fmt.Errorf("guardar pedido: %w", err)
	}
	if err := uc.bus.Publish(ctx, event.OrderCreated{Order: order}); err != nil {
		return nil, fmt.Errorf("reacciones a pedido creado: %w", err)
	}
	uc.log.Info().
		Str("order_id", order.ID).
		Str("supplier_id", order.SupplierID).
		Int("items", len(order.Items)).
		Msg("pedido creado")
	return &order, nil
}

// priceFor resuelve el precio unitario de un producto: prefiere una
// cotización del proveedor del pedido; si no hay, toma la mejor
// cotización de cualquier proveedor según la estrategia configurada.
func (uc *UseCase) priceFor(ctx context.Context, productID, supplierID string) (decimal.Decimal, error) {
	quotes, err := uc.quotations.ListByProduct(ctx, productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listar cotizaciones: %w", err)
	}
	var fromSupplier []entity.Quotation
	for _, q := range quotes {
		if q.SupplierID == supplierID && q.Validity == entity.QuotationActive {
			fromSupplier = append(fromSupplier, q)
		}
	}
	if best := uc.selector.Select(fromSupplier); best != nil {
		return best.Price, nil
	}
	if best := uc.selector.Select(quotes); best != nil {
		return best.Price, nil
	}
	return decimal.Zero, fmt.Errorf("%w: sin cotización para el producto %s", domain.ErrNotFound, productID)
}

// Cancel cancela un pedido. Un pedido IN_TRANSIT no puede cancelarse
// (regla R1H12); los estados terminales fallan con error de estado.
// Publica OrderCancelled, que libera las reservas asociadas.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	if order.Status == entity.OrderInTransit {
		return nil, domain.NewRuleViolation("R1H12", "un pedido en tránsito no puede cancelarse")
	}
	cancelled, err := order.WithStatus(entity.OrderCancelled)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Save(ctx, &cancelled)
	})
	if err != nil {
		return nil, fmt.Errorf("guardar pedido: %w", err)
	}
	if err := uc.bus.Publish(ctx, event.OrderCancelled{Order: cancelled}); err != nil {
		return nil, fmt.Errorf("reacciones a pedido cancelado: %w", err)
	}
	uc.log.Info().Str("order_id", cancelled.ID).Msg("pedido cancelado")
	return &cancelled, nil
}

// ConfirmReceipt marca el pedido como RECEIVED, registra un movimiento
// ENTRY por línea en la bodega de destino y publica OrderReceived, que
// libera las reservas asociadas.
func (uc *UseCase) ConfirmReceipt(ctx context.Context, id, responsible string) (*entity.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	received, err := order.WithStatus(entity.OrderReceived)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Save(ctx, &received)
	})
	if err != nil {
		return nil, fmt.Errorf("guardar pedido: %w", err)
	}

	for _, item := range received.Items {
		_, err := uc.ledger.Record(ctx, appmovement.RecordInput{
			ProductID:   item.ProductID,
			WarehouseID: received.WarehouseID,
			Quantity:    item.Quantity,
			Type:        entity.MovementEntry,
			Reason:      fmt.Sprintf("recepción de pedido %s", received.ID),
			Responsible: responsible,
		})
		if err != nil {
			return nil, fmt.Errorf("registrar entrada de recepción: %w", err)
		}
	}

	if err := uc.bus.Publish(ctx, event.OrderReceived{Order: received}); err != nil {
		return nil, fmt.Errorf("reacciones a pedido recibido: %w", err)
	}
	uc.log.Info().Str("order_id", received.ID).Msg("recepción de pedido confirmada")
	return &received, nil
}

// ChangeStatus aplica una transición explícita del ciclo de vida. Las
// transiciones con efectos propios (cancelar, recibir) tienen sus
// operaciones dedicadas; esta cubre SENT, IN_TRANSIT y COMPLETED.
func (uc *UseCase) ChangeStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	switch status {
	case entity.OrderCancelled:
		return uc.Cancel(ctx, id)
	case entity.OrderReceived:
		return nil, fmt.Errorf("%w: la recepción se confirma con su operación dedicada", domain.ErrInvalidInput)
	case entity.OrderSent, entity.OrderInTransit, entity.OrderCompleted:
	default:
		return nil, fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, status)
	}
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	next, err := order.WithStatus(status)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Save(ctx, &next)
	})
	if err != nil {
		return nil, fmt.Errorf("guardar pedido: %w", err)
	}
	return &next, nil
}

// Get devuelve un pedido por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return order, nil
}
