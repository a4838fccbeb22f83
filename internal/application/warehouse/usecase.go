package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// Operation es una operación administrativa sobre una bodega: una
// precondición que puede vetarla y la mutación que aplica.
type Operation struct {
	Name   string
	Check  func(ctx context.Context, uc *UseCase, w *entity.Warehouse) error
	Mutate func(w *entity.Warehouse)
}

// UseCase administra bodegas: alta, actualización, activación,
// inactivación y baja, con las reglas de unicidad y capacidad.
type UseCase struct {
	warehouses repository.WarehouseRepository
	orders     repository.OrderRepository
	stock      repository.StockReader
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de bodegas.
func NewUseCase(
	warehouses repository.WarehouseRepository,
	orders repository.OrderRepository,
	stock repository.StockReader,
	log *logger.Logger,
) *UseCase {
	return &UseCase{warehouses: warehouses, orders: orders, stock: stock, log: log}
}

// Save crea o actualiza una bodega. El nombre y la dirección son únicos
// por cliente (reglas R3H1 y R2H1); la capacidad no puede reducirse por
// debajo de la ocupación actual (regla R1H3).
func (uc *UseCase) Save(ctx context.Context, in entity.Warehouse) (*entity.Warehouse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: la dirección es obligatoria", domain.ErrInvalidInput)
	}
	if !in.Capacity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la capacidad debe ser positiva", domain.ErrInvalidInput)
	}

	nameTaken, err := uc.warehouses.ExistsByName(ctx, in.ClientID, in.Name, in.ID)
	if err != nil {
		return nil, fmt.Errorf("verificar nombre: %w", err)
	}
	if nameTaken {
		return nil, domain.NewRuleViolation("R3H1", "ya existe una bodega con el nombre %q", in.Name)
	}
	addressTaken, err := uc.warehouses.ExistsByAddress(ctx, in.ClientID, in.Address, in.ID)
	if err != nil {
		return nil, fmt.Errorf("verificar dirección: %w", err)
	}
	if addressTaken {
		return nil, domain.NewRuleViolation("R2H1", "ya existe una bodega en la dirección %q", in.Address)
	}

	warehouse := in
	if warehouse.ID == "" {
		warehouse.ID = uuid.New().String()
		if warehouse.Status == "" {
			warehouse.Status = entity.StatusActive
		}
	} else {
		current, err := uc.warehouses.FindByID(ctx, warehouse.ID)
		if err != nil {
			return nil, fmt.Errorf("buscar bodega: %w", err)
		}
		if current == nil {
			return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, warehouse.ID)
		}
		if warehouse.Status == "" {
			warehouse.Status = current.Status
		}
		occupation, err := uc.stock.Occupation(ctx, warehouse.ID)
		if err != nil {
			return nil, fmt.Errorf("consultar ocupación: %w", err)
		}
		if warehouse.Capacity.LessThan(occupation) {
			return nil, domain.NewRuleViolation("R1H3",
				"la capacidad (%s) no puede ser menor que la ocupación actual (%s)",
				warehouse.Capacity, occupation)
		}
	}

	if err := uc.warehouses.Save(ctx, &warehouse); err != nil {
		return nil, fmt.Errorf("guardar bodega: %w", err)
	}
	return &warehouse, nil
}

// Remove elimina una bodega. Con stock remanente (regla R1H2) o pedidos
// en curso hacia ella (regla R2H2) la baja se rechaza.
func (uc *UseCase) Remove(ctx context.Context, id string) error {
	warehouse, err := uc.warehouses.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar bodega: %w", err)
	}
	if warehouse == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	occupation, err := uc.stock.Occupation(ctx, id)
	if err != nil {
		return fmt.Errorf("consultar ocupación: %w", err)
	}
	if occupation.GreaterThan(decimal.Zero) {
		return domain.NewRuleViolation("R1H2",
			"la bodega %s aún tiene %s unidades en stock", warehouse.Name, occupation)
	}
	open, err := uc.orders.HasOpenByWarehouse(ctx, id)
	if err != nil {
		return fmt.Errorf("consultar pedidos en curso: %w", err)
	}
	if open {
		return domain.NewRuleViolation("R2H2",
			"la bodega %s tiene pedidos en curso", warehouse.Name)
	}
	return uc.warehouses.Delete(ctx, id)
}

// operations es la tabla de operaciones administrativas disponibles.
var operations = map[string]Operation{
	"activate": {
		Name:  "activate",
		Check: func(ctx context.Context, uc *UseCase, w *entity.Warehouse) error { return nil },
		Mutate: func(w *entity.Warehouse) {
			w.Status = entity.StatusActive
		},
	},
	"inactivate": {
		Name: "inactivate",
		Check: func(ctx context.Context, uc *UseCase, w *entity.Warehouse) error {
			open, err := uc.orders.HasOpenByWarehouse(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("consultar pedidos en curso: %w", err)
			}
			if open {
				return fmt.Errorf("%w: la bodega %s tiene pedidos en curso", domain.ErrConflict, w.Name)
			}
			return nil
		},
		Mutate: func(w *entity.Warehouse) {
			w.Status = entity.StatusInactive
		},
	},
}

// Apply ejecuta una operación administrativa por nombre sobre la bodega.
func (uc *UseCase) Apply(ctx context.Context, id, operation string) error {
	op, ok := operations[operation]
	if !ok {
		return fmt.Errorf("%w: operación desconocida %q", domain.ErrInvalidInput, operation)
	}
	warehouse, err := uc.warehouses.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar bodega: %w", err)
	}
	if warehouse == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	if err := op.Check(ctx, uc, warehouse); err != nil {
		return err
	}
	op.Mutate(warehouse)
	return uc.warehouses.Save(ctx, warehouse)
}

// OperationFunc es una operación administrativa ya ligada a sus
// argumentos, lista para componer.
type OperationFunc func(ctx context.Context) error

// WithOperationLogging envuelve una operación con registro de inicio y
// resultado. Los interceptores se componen por función, el más externo
// primero.
func WithOperationLogging(log *logger.Logger, name, warehouseID string, op OperationFunc) OperationFunc {
	return func(ctx context.Context) error {
		log.Info().
			Str("operation", name).
			Str("warehouse_id", warehouseID).
			Msg("operación de bodega iniciada")
		err := op(ctx)
		if err != nil {
			log.Error().
				Err(err).
				Str("operation", name).
				Str("warehouse_id", warehouseID).
				Msg("operación de bodega falló")
			return err
		}
		log.Info().
			Str("operation", name).
			Str("warehouse_id", warehouseID).
			Msg("operación de bodega completada")
		return nil
	}
}
