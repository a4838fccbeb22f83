package movement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/repository"
)

// Ledger registra movimientos de inventario y publica MovementRecorded.
// No valida disponibilidad en las salidas: esa verificación corresponde
// al colaborador que mantiene los saldos por bodega.
type Ledger struct {
	movements  repository.MovementRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	bus        *event.Bus
}

// NewLedger construye el ledger de movimientos.
func NewLedger(
	movements repository.MovementRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	bus *event.Bus,
) *Ledger {
	return &Ledger{
		movements:  movements,
		products:   products,
		warehouses: warehouses,
		bus:        bus,
	}
}

// RecordInput entrada para registrar un movimiento. Timestamp vacío
// usa la hora actual.
type RecordInput struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	Type        string // ENTRY, EXIT
	Reason      string
	Responsible string
	Timestamp   time.Time
}

// Record valida que el producto y la bodega existan, persiste el
// movimiento y publica MovementRecorded. Los handlers del evento corren
// dentro de esta misma llamada; si alguno falla, el error agregado se
// propaga al caller.
func (l *Ledger) Record(ctx context.Context, in RecordInput) (*entity.Movement, error) {
	if in.Type != entity.MovementEntry && in.Type != entity.MovementExit {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("%w: el motivo es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Responsible) == "" {
		return nil, fmt.Errorf("%w: el responsable es obligatorio", domain.ErrInvalidInput)
	}

	product, err := l.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	warehouse, err := l.warehouses.FindByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("buscar bodega: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		Timestamp:   ts,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Reason:      in.Reason,
		Responsible: in.Responsible,
	}
	if err := l.movements.Save(ctx, mov); err != nil {
		return nil, fmt.Errorf("guardar movimiento: %w", err)
	}

	if err := l.bus.Publish(ctx, event.MovementRecorded{Movement: *mov}); err != nil {
		return nil, fmt.Errorf("reacciones a movimiento registrado: %w", err)
	}
	return mov, nil
}

// Remove elimina un movimiento sin efectos en cascada sobre traslados
// ni saldos; esa responsabilidad es externa.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	mov, err := l.movements.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar movimiento: %w", err)
	}
	if mov == nil {
		return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	return l.movements.Delete(ctx, id)
}
