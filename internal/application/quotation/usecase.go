package quotation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	domquo "github.com/gestock/sge-core/internal/domain/quotation"
	"github.com/gestock/sge-core/internal/domain/repository"
)

// UseCase administra cotizaciones de proveedores y expone la selección
// de la más ventajosa por producto.
type UseCase struct {
	quotations repository.QuotationRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	selector   domquo.Selector
}

// NewUseCase construye el caso de uso de cotizaciones.
func NewUseCase(
	quotations repository.QuotationRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	selector domquo.Selector,
) *UseCase {
	return &UseCase{
		quotations: quotations,
		suppliers:  suppliers,
		products:   products,
		selector:   selector,
	}
}

// Register da de alta una cotización. El precio debe ser positivo y el
// lead time de al menos un día; el proveedor debe estar activo.
func (uc *UseCase) Register(ctx context.Context, in entity.Quotation) (*entity.Quotation, error) {
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio debe ser positivo", domain.ErrInvalidInput)
	}
	if in.LeadTimeDays < 1 {
		return nil, fmt.Errorf("%w: el lead time debe ser de al menos 1 día", domain.ErrInvalidInput)
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
	product, err := uc.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}

	quotation := in
	quotation.ID = uuid.New().String()
	if quotation.Validity == "" {
		quotation.Validity = entity.QuotationActive
	}
	if quotation.ApprovalStatus == "" {
		quotation.ApprovalStatus = entity.QuotationPending
	}
	if err := uc.quotations.Save(ctx, &quotation); err != nil {
		return nil, fmt.Errorf("guardar cotización: %w", err)
	}
	return &quotation, nil
}

// Approve marca la cotización como aprobada.
func (uc *UseCase) Approve(ctx context.Context, id string) error {
	return uc.setField(ctx, id, func(q *entity.Quotation) {
		q.ApprovalStatus = entity.QuotationApproved
	})
}

// Expire marca la cotización como vencida; deja de ser candidata para
// precios y lead times.
func (uc *UseCase) Expire(ctx context.Context, id string) error {
	return uc.setField(ctx, id, func(q *entity.Quotation) {
		q.Validity = entity.QuotationExpired
	})
}

func (uc *UseCase) setField(ctx context.Context, id string, mutate func(q *entity.Quotation)) error {
	quotation, err := uc.quotations.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar cotización: %w", err)
	}
	if quotation == nil {
		return fmt.Errorf("%w: cotización %s", domain.ErrNotFound, id)
	}
	mutate(quotation)
	return uc.quotations.Save(ctx, quotation)
}

// BestForProduct devuelve la cotización más ventajosa del producto
// según la estrategia configurada, o ErrNotFound si no hay ninguna.
func (uc *UseCase) BestForProduct(ctx context.Context, productID string) (*entity.Quotation, error) {
	quotes, err := uc.quotations.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("listar cotizaciones: %w", err)
	}
	best := uc.selector.Select(quotes)
	if best == nil {
		return nil, fmt.Errorf("%w: sin cotizaciones para el producto %s", domain.ErrNotFound, productID)
	}
	return best, nil
}

// ListByProduct devuelve las cotizaciones de un producto.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string) ([]entity.Quotation, error) {
	return uc.quotations.ListByProduct(ctx, productID)
}
