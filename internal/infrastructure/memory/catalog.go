package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo vista de cotizaciones sobre el store.
type QuotationRepo struct {
	s *Store
}

func (r *QuotationRepo) Save(ctx context.Context, q *entity.Quotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotations[q.ID] = *q
	return nil
}

func (r *QuotationRepo) FindByID(ctx context.Context, id string) (*entity.Quotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if q, ok := r.s.quotations[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (r *QuotationRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Quotation, error) {
	return r.list(func(q entity.Quotation) bool { return q.ProductID == productID })
}

func (r *QuotationRepo) ListBySupplier(ctx context.Context, supplierID string) ([]entity.Quotation, error) {
	return r.list(func(q entity.Quotation) bool { return q.SupplierID == supplierID })
}

func (r *QuotationRepo) list(match func(entity.Quotation) bool) ([]entity.Quotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []entity.Quotation
	for _, q := range r.s.quotations {
		if match(q) {
			list = append(list, q)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo vista de productos sobre el store.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Save(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// HasActiveBatches indica si el producto tiene saldo positivo en alguna
// bodega.
func (r *ProductRepo) HasActiveBatches(ctx context.Context, productID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	balances := make(map[string]decimal.Decimal)
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			balances[m.WarehouseID] = balances[m.WarehouseID].Add(m.SignedQuantity())
		}
	}
	for _, b := range balances {
		if b.GreaterThan(decimal.Zero) {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo vista de bodegas sobre el store.
type WarehouseRepo struct {
	s *Store
}

func (r *WarehouseRepo) Save(ctx context.Context, w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r *WarehouseRepo) FindByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if w, ok := r.s.warehouses[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *WarehouseRepo) ExistsByName(ctx context.Context, clientID, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, w := range r.s.warehouses {
		if w.ClientID == clientID && w.ID != excludeID && strings.EqualFold(w.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *WarehouseRepo) ExistsByAddress(ctx context.Context, clientID, address, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, w := range r.s.warehouses {
		if w.ClientID == clientID && w.ID != excludeID && strings.EqualFold(w.Address, address) {
			return true, nil
		}
	}
	return false, nil
}

func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.warehouses, id)
	return nil
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo vista de proveedores sobre el store.
type SupplierRepo struct {
	s *Store
}

func (r *SupplierRepo) Save(ctx context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *SupplierRepo) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if sup, ok := r.s.suppliers[id]; ok {
		return &sup, nil
	}
	return nil, nil
}

func (r *SupplierRepo) FindByTaxID(ctx context.Context, clientID, taxID string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sup := range r.s.suppliers {
		if sup.ClientID == clientID && sup.TaxID == taxID {
			out := sup
			return &out, nil
		}
	}
	return nil, nil
}
