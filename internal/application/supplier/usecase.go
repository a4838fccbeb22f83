package supplier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// UseCase administra proveedores. Guardar un proveedor existente con un
// lead time distinto publica LeadTimeChanged, lo que dispara el
// recálculo de los puntos de reposición de sus productos.
type UseCase struct {
	suppliers repository.SupplierRepository
	orders    repository.OrderRepository
	bus       *event.Bus
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de proveedores.
func NewUseCase(
	suppliers repository.SupplierRepository,
	orders repository.OrderRepository,
	bus *event.Bus,
	log *logger.Logger,
) *UseCase {
	return &UseCase{suppliers: suppliers, orders: orders, bus: bus, log: log}
}

// Save crea o actualiza un proveedor. La identificación fiscal es única
// por cliente; un cambio de lead time en una actualización publica
// LeadTimeChanged con los valores anterior y nuevo.
func (uc *UseCase) Save(ctx context.Context, in entity.Supplier) (*entity.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.TaxID) == "" {
		return nil, fmt.Errorf("%w: la identificación fiscal es obligatoria", domain.ErrInvalidInput)
	}
	if in.LeadTimeDays < 1 {
		return nil, fmt.Errorf("%w: el lead time debe ser de al menos 1 día", domain.ErrInvalidInput)
	}

	existingTax, err := uc.suppliers.FindByTaxID(ctx, in.ClientID, in.TaxID)
	if err != nil {
		return nil, fmt.Errorf("buscar por identificación fiscal: %w", err)
	}
	if existingTax != nil && existingTax.ID != in.ID {
		return nil, fmt.Errorf("%w: ya existe un proveedor con la identificación fiscal %s",
			domain.ErrDuplicate, in.TaxID)
	}

	supplier := in
	oldLeadTime := 0
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
		if supplier.Status == "" {
			supplier.Status = entity.StatusActive
		}
	} else {
		current, err := uc.suppliers.FindByID(ctx, supplier.ID)
		if err != nil {
			return nil, fmt.Errorf("buscar proveedor: %w", err)
		}
		if current == nil {
			return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, supplier.ID)
		}
		oldLeadTime = current.LeadTimeDays
		if supplier.Status == "" {
			supplier.Status = current.Status
		}
	}

	if err := uc.suppliers.Save(ctx, &supplier); err != nil {
		return nil, fmt.Errorf("guardar proveedor: %w", err)
	}

	if oldLeadTime != 0 && oldLeadTime != supplier.LeadTimeDays {
		uc.log.Info().
			Str("supplier_id", supplier.ID).
			Int("old_days", oldLeadTime).
			Int("new_days", supplier.LeadTimeDays).
			Msg("lead time de proveedor actualizado")
		err := uc.bus.Publish(ctx, event.LeadTimeChanged{
			SupplierID: supplier.ID,
			OldDays:    oldLeadTime,
			NewDays:    supplier.LeadTimeDays,
		})
		if err != nil {
			return nil, fmt.Errorf("reacciones a cambio de lead time: %w", err)
		}
	}
	return &supplier, nil
}

// Inactivate marca el proveedor como inactivo. Con pedidos pendientes
// la inactivación se rechaza (regla R1H7).
func (uc *UseCase) Inactivate(ctx context.Context, id string) error {
	supplier, err := uc.suppliers.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar proveedor: %w", err)
	}
	if supplier == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	pending, err := uc.orders.HasPendingBySupplier(ctx, id)
	if err != nil {
		return fmt.Errorf("consultar pedidos pendientes: %w", err)
	}
	if pending {
		return domain.NewRuleViolation("R1H7",
			"el proveedor %s tiene pedidos pendientes y no puede inactivarse", supplier.Name)
	}
	supplier.Status = entity.StatusInactive
	return uc.suppliers.Save(ctx, supplier)
}

// Activate marca el proveedor como activo.
func (uc *UseCase) Activate(ctx context.Context, id string) error {
	supplier, err := uc.suppliers.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar proveedor: %w", err)
	}
	if supplier == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	supplier.Status = entity.StatusActive
	return uc.suppliers.Save(ctx, supplier)
}

// Get devuelve un proveedor por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := uc.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar proveedor: %w", err)
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return supplier, nil
}
