package transfer

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
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// Prefijo que marca los movimientos generados por un traslado explícito.
const transferReasonPrefix = "[TRANSFER] "

// Ventana de emparejamiento: la salida debe preceder a la entrada en a
// lo sumo una hora.
const matchWindow = time.Hour

// Engine infiere traslados a partir de pares de movimientos EXIT/ENTRY
// registrados de forma independiente, y expone la operación explícita
// de traslado que crea ambos movimientos. Las dos rutas convergen en la
// misma creación del registro Transfer.
type Engine struct {
	transfers  repository.TransferRepository
	movements  repository.MovementRepository
	warehouses repository.WarehouseRepository
	stock      repository.StockReader
	ledger     *appmovement.Ledger
	log        *logger.Logger
}

// NewEngine construye el motor y lo suscribe a MovementRecorded.
func NewEngine(
	transfers repository.TransferRepository,
	movements repository.MovementRepository,
	warehouses repository.WarehouseRepository,
	stock repository.StockReader,
	ledger *appmovement.Ledger,
	bus *event.Bus,
	log *logger.Logger,
) *Engine {
	e := &Engine{
		transfers:  transfers,
		movements:  movements,
		warehouses: warehouses,
		stock:      stock,
		ledger:     ledger,
		log:        log,
	}
	bus.Register(event.MovementRecordedName, e.handleMovementRecorded)
	return e
}

// handleMovementRecorded busca, para cada ENTRY registrado, una salida
// correspondiente reciente. La ausencia de pareja no es un error: el
// movimiento simplemente no forma parte de un traslado.
func (e *Engine) handleMovementRecorded(ctx context.Context, ev event.Event) error {
	recorded, ok := ev.(event.MovementRecorded)
	if !ok {
		return nil
	}
	entry := recorded.Movement
	if !entry.IsEntry() {
		return nil
	}

	exit, err := e.findMatchingExit(ctx, entry)
	if err != nil {
		return fmt.Errorf("buscar salida correspondiente: %w", err)
	}
	if exit == nil {
		return nil
	}

	transfer, err := e.CreateTransfer(ctx, *exit, entry)
	if err != nil {
		return err
	}
	e.log.Info().
		Str("transfer_id", transfer.ID).
		Str("origin", transfer.OriginWarehouseID).
		Str("dest", transfer.DestWarehouseID).
		Str("product_id", transfer.ProductID).
		Msg("traslado inferido a partir de movimientos")
	return nil
}

// findMatchingExit recorre los movimientos de la ventana
// [entrada − 1h, entrada + 1d] y devuelve la primera salida que
// coincide en producto, cantidad, responsable y motivo, con bodega
// distinta y anterior a la entrada en a lo sumo una hora. El repositorio
// devuelve los movimientos ordenados por timestamp e id, de modo que
// "la primera" es la salida coincidente más antigua.
func (e *Engine) findMatchingExit(ctx context.Context, entry entity.Movement) (*entity.Movement, error) {
	from := entry.Timestamp.Add(-matchWindow)
	to := entry.Timestamp.AddDate(0, 0, 1)
	candidates, err := e.movements.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	for _, m := range candidates {
		if !m.IsExit() {
			continue
		}
		if m.ProductID != entry.ProductID {
			continue
		}
		if !m.Quantity.Equal(entry.Quantity) {
			continue
		}
		if m.Responsible != entry.Responsible {
			continue
		}
		if m.Reason != entry.Reason {
			continue
		}
		if m.WarehouseID == entry.WarehouseID {
			continue
		}
		// La salida no puede ser posterior a la entrada ni precederla
		// en más de una hora.
		gap := entry.Timestamp.Sub(m.Timestamp)
		if gap < 0 || gap > matchWindow {
			continue
		}
		return &m, nil
	}
	return nil, nil
}

// CreateTransfer valida el par salida/entrada y materializa el traslado.
// Cada criterio violado produce un error que nombra el campo discrepante.
func (e *Engine) CreateTransfer(ctx context.Context, exit, entry entity.Movement) (*entity.Transfer, error) {
	if !exit.IsExit() {
		return nil, fmt.Errorf("%w: el primer movimiento debe ser de tipo EXIT", domain.ErrInvalidInput)
	}
	if !entry.IsEntry() {
		return nil, fmt.Errorf("%w: el segundo movimiento debe ser de tipo ENTRY", domain.ErrInvalidInput)
	}
	if exit.ProductID != entry.ProductID {
		return nil, fmt.Errorf("%w: los movimientos deben ser del mismo producto", domain.ErrInvalidInput)
	}
	if !exit.Quantity.Equal(entry.Quantity) {
		return nil, fmt.Errorf("%w: los movimientos deben tener la misma cantidad", domain.ErrInvalidInput)
	}
	if exit.Responsible != entry.Responsible {
		return nil, fmt.Errorf("%w: los movimientos deben tener el mismo responsable", domain.ErrInvalidInput)
	}
	if exit.Reason != entry.Reason {
		return nil, fmt.Errorf("%w: los movimientos deben tener el mismo motivo", domain.ErrInvalidInput)
	}
	if exit.WarehouseID == entry.WarehouseID {
		return nil, fmt.Errorf("%w: las bodegas de origen y destino deben ser diferentes", domain.ErrInvalidInput)
	}

	transfer := &entity.Transfer{
		ID:                uuid.New().String(),
		ProductID:         entry.ProductID,
		Quantity:          entry.Quantity,
		OriginWarehouseID: exit.WarehouseID,
		DestWarehouseID:   entry.WarehouseID,
		Timestamp:         time.Now(),
		Responsible:       entry.Responsible,
		Reason:            entry.Reason,
		SourceMovementID:  exit.ID,
		DestMovementID:    entry.ID,
	}
	if err := e.transfers.Save(ctx, transfer); err != nil {
		return nil, fmt.Errorf("guardar traslado: %w", err)
	}
	return transfer, nil
}

// RegisterInput entrada del traslado explícito entre bodegas.
type RegisterInput struct {
	ProductID         string
	OriginWarehouseID string
	DestWarehouseID   string
	Quantity          decimal.Decimal
	Responsible       string
	Reason            string
}

// RegisterTransfer valida origen/destino, disponibilidad y capacidad, y
// registra la salida en origen y la entrada en destino a través del
// ledger. La entrada dispara la inferencia, que crea el Transfer: la
// ruta explícita y la inferida convergen en el mismo paso de creación.
func (e *Engine) RegisterTransfer(ctx context.Context, in RegisterInput) (*entity.Transfer, error) {
	if in.OriginWarehouseID == in.DestWarehouseID {
		return nil, domain.NewRuleViolation("R1H22", "la bodega de origen debe ser diferente de la de destino")
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}

	origin, err := e.warehouses.FindByID(ctx, in.OriginWarehouseID)
	if err != nil {
		return nil, fmt.Errorf("buscar bodega de origen: %w", err)
	}
	if origin == nil {
		return nil, fmt.Errorf("%w: bodega de origen %s", domain.ErrNotFound, in.OriginWarehouseID)
	}
	dest, err := e.warehouses.FindByID(ctx, in.DestWarehouseID)
	if err != nil {
		return nil, fmt.Errorf("buscar bodega de destino: %w", err)
	}
	if dest == nil {
		return nil, fmt.Errorf("%w: bodega de destino %s", domain.ErrNotFound, in.DestWarehouseID)
	}

	available, err := e.stock.Balance(ctx, in.OriginWarehouseID, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("consultar saldo en origen: %w", err)
	}
	if in.Quantity.GreaterThan(available) {
		return nil, domain.NewRuleViolation("R2H22",
			"cantidad insuficiente en la bodega de origen: disponible %s, solicitado %s",
			available.String(), in.Quantity.String())
	}

	occupation, err := e.stock.Occupation(ctx, in.DestWarehouseID)
	if err != nil {
		return nil, fmt.Errorf("consultar ocupación en destino: %w", err)
	}
	free := dest.FreeCapacity(occupation)
	if in.Quantity.GreaterThan(free) {
		return nil, domain.NewRuleViolation("R3H22",
			"capacidad insuficiente en la bodega de destino: disponible %s, solicitado %s",
			free.String(), in.Quantity.String())
	}

	reason := transferReasonPrefix + in.Reason
	_, err = e.ledger.Record(ctx, appmovement.RecordInput{
		ProductID:   in.ProductID,
		WarehouseID: in.OriginWarehouseID,
		Quantity:    in.Quantity,
		Type:        entity.MovementExit,
		Reason:      reason,
		Responsible: in.Responsible,
	})
	if err != nil {
		return nil, fmt.Errorf("registrar salida en origen: %w", err)
	}

	entryMov, err := e.ledger.Record(ctx, appmovement.RecordInput{
		ProductID:   in.ProductID,
		WarehouseID: in.DestWarehouseID,
		Quantity:    in.Quantity,
		Type:        entity.MovementEntry,
		Reason:      reason,
		Responsible: in.Responsible,
	})
	if err != nil {
		return nil, fmt.Errorf("registrar entrada en destino: %w", err)
	}

	// El traslado fue materializado por la inferencia al registrar la
	// entrada; se recupera por el movimiento de destino.
	transfer, err := e.transfers.FindByDestMovement(ctx, entryMov.ID)
	if err != nil {
		return nil, fmt.Errorf("recuperar traslado creado: %w", err)
	}
	if transfer == nil {
		return nil, fmt.Errorf("%w: el traslado no fue materializado", domain.ErrConflict)
	}
	return transfer, nil
}

// ListByProduct devuelve los traslados de un producto.
func (e *Engine) ListByProduct(ctx context.Context, productID string) ([]entity.Transfer, error) {
	return e.transfers.ListByProduct(ctx, productID)
}
