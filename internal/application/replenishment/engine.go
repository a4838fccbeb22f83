package replenishment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/quotation"
	domrep "github.com/gestock/sge-core/internal/domain/replenishment"
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// Lead time asumido cuando el producto no tiene cotización vigente.
const defaultLeadTimeDays = 7

// Ventana de consumo para el promedio diario.
const consumptionWindowDays = 90

// AlertObserver es notificado cuando se genera una alerta de stock
// bajo. Un observador que falla no bloquea a los demás.
type AlertObserver interface {
	AlertRaised(ctx context.Context, a entity.Alert) error
}

// Assessment es el resultado de evaluar un punto de reposición.
type Assessment struct {
	ROP             int64
	CurrentBalance  decimal.Decimal
	Status          string
	PercentBelowROP decimal.Decimal
	Alert           *entity.Alert // nil si no se generó alerta
}

// Engine calcula el ROP por producto y bodega, determina el estado del
// saldo y emite alertas escalonadas. La recomputación es push: el
// cambio de lead time de un proveedor dispara el recálculo de todos
// sus productos.
type Engine struct {
	points     repository.ReplenishmentPointRepository
	alerts     repository.AlertRepository
	quotations repository.QuotationRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	stock      repository.StockReader
	selector   quotation.Selector
	observers  []AlertObserver
	log        *logger.Logger
}

// NewEngine construye el motor y lo suscribe a LeadTimeChanged.
func NewEngine(
	points repository.ReplenishmentPointRepository,
	alerts repository.AlertRepository,
	quotations repository.QuotationRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	stock repository.StockReader,
	selector quotation.Selector,
	bus *event.Bus,
	log *logger.Logger,
) *Engine {
	e := &Engine{
		points:     points,
		alerts:     alerts,
		quotations: quotations,
		suppliers:  suppliers,
		products:   products,
		warehouses: warehouses,
		stock:      stock,
		selector:   selector,
		log:        log,
	}
	bus.Register(event.LeadTimeChangedName, e.handleLeadTimeChanged)
	return e
}

// AddObserver agrega un observador de alertas. Cableado en el arranque.
func (e *Engine) AddObserver(o AlertObserver) {
	e.observers = append(e.observers, o)
}

// Register da de alta un punto de reposición. Rechaza duplicados por
// (bodega, producto) y stock de seguridad negativo.
func (e *Engine) Register(ctx context.Context, in entity.ReplenishmentPoint) (*entity.ReplenishmentPoint, error) {
	if in.SafetyStock < 0 {
		return nil, fmt.Errorf("%w: el stock de seguridad no puede ser negativo", domain.ErrInvalidInput)
	}
	product, err := e.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	warehouse, err := e.warehouses.FindByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("buscar bodega: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}
	existing, err := e.points.FindByWarehouseAndProduct(ctx, in.WarehouseID, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar punto existente: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un punto de reposición para esta bodega y producto", domain.ErrDuplicate)
	}

	point := in
	point.ID = uuid.New().String()
	if err := e.points.Save(ctx, &point); err != nil {
		return nil, fmt.Errorf("guardar punto de reposición: %w", err)
	}
	return &point, nil
}

// UpdateSafetyStock actualiza el stock de seguridad de un punto.
func (e *Engine) UpdateSafetyStock(ctx context.Context, id string, safetyStock int64) error {
	if safetyStock < 0 {
		return fmt.Errorf("%w: el stock de seguridad no puede ser negativo", domain.ErrInvalidInput)
	}
	point, err := e.points.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar punto de reposición: %w", err)
	}
	if point == nil {
		return fmt.Errorf("%w: punto de reposición %s", domain.ErrNotFound, id)
	}
	point.SafetyStock = safetyStock
	return e.points.Save(ctx, point)
}

// Recompute evalúa el punto de reposición de un producto en una bodega:
// calcula el ROP con el consumo medio reciente y el lead time vigente
// del proveedor que cotiza el producto, determina el estado del saldo
// y, si el déficit cruza el umbral, genera y persiste una alerta.
func (e *Engine) Recompute(ctx context.Context, warehouseID, productID string) (*Assessment, error) {
	point, err := e.points.FindByWarehouseAndProduct(ctx, warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("buscar punto de reposición: %w", err)
	}
	if point == nil {
		return nil, fmt.Errorf("%w: punto de reposición para bodega %s y producto %s",
			domain.ErrNotFound, warehouseID, productID)
	}

	avg, err := e.stock.AverageDailyConsumption(ctx, warehouseID, productID, consumptionWindowDays)
	if err != nil {
		return nil, fmt.Errorf("consumo medio diario: %w", err)
	}

	leadTime, err := e.resolveLeadTime(ctx, productID)
	if err != nil {
		return nil, err
	}

	rop := domrep.ComputeROP(avg, leadTime, point.SafetyStock)
	balance, err := e.stock.Balance(ctx, warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("consultar saldo: %w", err)
	}

	status := domrep.DetermineStatus(balance, rop)
	pct := domrep.PercentBelowROP(balance, rop)
	level := domrep.DetermineAlertLevel(pct)

	assessment := &Assessment{
		ROP:             rop,
		CurrentBalance:  balance,
		Status:          status,
		PercentBelowROP: pct,
	}
	if level == entity.AlertNone {
		return assessment, nil
	}

	alert := entity.Alert{
		ID:              uuid.New().String(),
		Level:           level,
		ProductID:       productID,
		WarehouseID:     warehouseID,
		CurrentQuantity: balance,
		ROP:             rop,
		PercentBelowROP: pct,
		RaisedAt:        time.Now(),
	}
	if err := e.alerts.Save(ctx, &alert); err != nil {
		return nil, fmt.Errorf("guardar alerta: %w", err)
	}
	e.notifyObservers(ctx, alert)
	assessment.Alert = &alert
	return assessment, nil
}

// resolveLeadTime determina el lead time en días para el producto: el
// valor vigente del proveedor detrás de la mejor cotización, el de la
// cotización si el proveedor ya no es resoluble, o el valor por defecto
// cuando no hay cotizaciones.
func (e *Engine) resolveLeadTime(ctx context.Context, productID string) (int, error) {
	quotes, err := e.quotations.ListByProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("listar cotizaciones: %w", err)
	}
	best := e.selector.Select(quotes)
	if best == nil {
		return defaultLeadTimeDays, nil
	}
	sup, err := e.suppliers.FindByID(ctx, best.SupplierID)
	if err != nil {
		return 0, fmt.Errorf("buscar proveedor %s: %w", best.SupplierID, err)
	}
	if sup != nil && sup.LeadTimeDays > 0 {
		return sup.LeadTimeDays, nil
	}
	return best.LeadTimeDays, nil
}

// notifyObservers notifica la alerta a cada observador. Un fallo se
// registra sin interrumpir la notificación de los demás.
func (e *Engine) notifyObservers(ctx context.Context, alert entity.Alert) {
	for _, o := range e.observers {
		if err := o.AlertRaised(ctx, alert); err != nil {
			e.log.Error().
				Err(err).
				Str("alert_id", alert.ID).
				Str("level", alert.Level).
				Msg("observador de alertas falló")
		}
	}
}

// handleLeadTimeChanged recalcula el ROP de todos los puntos de
// reposición de productos abastecidos por el proveedor cuyo lead time
// cambió.
func (e *Engine) handleLeadTimeChanged(ctx context.Context, ev event.Event) error {
	changed, ok := ev.(event.LeadTimeChanged)
	if !ok {
		return nil
	}
	points, err := e.points.ListBySupplier(ctx, changed.SupplierID)
	if err != nil {
		return fmt.Errorf("listar puntos del proveedor %s: %w", changed.SupplierID, err)
	}

	var failures []error
	for _, p := range points {
		if _, err := e.Recompute(ctx, p.WarehouseID, p.ProductID); err != nil {
			failures = append(failures, fmt.Errorf("recalcular %s/%s: %w", p.WarehouseID, p.ProductID, err))
		}
	}
	e.log.Info().
		Str("supplier_id", changed.SupplierID).
		Int("points", len(points)).
		Msg("ROP recalculado por cambio de lead time")
	return errors.Join(failures...)
}

// AlertsByWarehouse devuelve las alertas generadas para una bodega.
func (e *Engine) AlertsByWarehouse(ctx context.Context, warehouseID string) ([]entity.Alert, error) {
	return e.alerts.ListByWarehouse(ctx, warehouseID)
}
