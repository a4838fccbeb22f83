package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gestock/sge-core/internal/domain"
	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
	"github.com/gestock/sge-core/pkg/logger"
)

// operation es un par (precondición, mutación) para las operaciones de
// activación e inactivación de productos.
type operation struct {
	check  func(ctx context.Context, uc *UseCase, p *entity.Product) error
	mutate func(p *entity.Product)
}

// UseCase administra productos y sus cambios de estado.
type UseCase struct {
	products repository.ProductRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de productos.
func NewUseCase(products repository.ProductRepository, log *logger.Logger) *UseCase {
	return &UseCase{products: products, log: log}
}

// Save crea o actualiza un producto.
func (uc *UseCase) Save(ctx context.Context, in entity.Product) (*entity.Product, error) {
	if strings.TrimSpace(in.SKU) == "" {
		return nil, fmt.Errorf("%w: el SKU es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	product := in
	if product.ID == "" {
		product.ID = uuid.New().String()
		if product.Status == "" {
			product.Status = entity.StatusActive
		}
	} else {
		current, err := uc.products.FindByID(ctx, product.ID)
		if err != nil {
			return nil, fmt.Errorf("buscar producto: %w", err)
		}
		if current == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, product.ID)
		}
		if product.Status == "" {
			product.Status = current.Status
		}
	}
	if err := uc.products.Save(ctx, &product); err != nil {
		return nil, fmt.Errorf("guardar producto: %w", err)
	}
	return &product, nil
}

// Get devuelve un producto por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return product, nil
}

// operations tabla de operaciones de estado sobre productos. Un
// producto perecedero con lotes vigentes en bodega no puede
// inactivarse.
var operations = map[string]operation{
	"activate": {
		check: func(ctx context.Context, uc *UseCase, p *entity.Product) error { return nil },
		mutate: func(p *entity.Product) {
			p.Status = entity.StatusActive
		},
	},
	"inactivate": {
		check: func(ctx context.Context, uc *UseCase, p *entity.Product) error {
			if !p.Perishable {
				return nil
			}
			active, err := uc.products.HasActiveBatches(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("consultar lotes vigentes: %w", err)
			}
			if active {
				return fmt.Errorf("%w: el producto perecedero %s tiene lotes vigentes en bodega",
					domain.ErrConflict, p.Name)
			}
			return nil
		},
		mutate: func(p *entity.Product) {
			p.Status = entity.StatusInactive
		},
	},
}

// Apply ejecuta una operación de estado por nombre sobre el producto.
func (uc *UseCase) Apply(ctx context.Context, id, opName string) error {
	op, ok := operations[opName]
	if !ok {
		return fmt.Errorf("%w: operación desconocida %q", domain.ErrInvalidInput, opName)
	}
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar producto: %w", err)
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if err := op.check(ctx, uc, product); err != nil {
		return err
	}
	op.mutate(product)
	if err := uc.products.Save(ctx, product); err != nil {
		return fmt.Errorf("guardar producto: %w", err)
	}
	uc.log.Info().
		Str("product_id", product.ID).
		Str("operation", opName).
		Msg("estado de producto actualizado")
	return nil
}
