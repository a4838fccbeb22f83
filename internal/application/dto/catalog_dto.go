package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// SaveProductRequest entrada para crear o actualizar un producto.
type SaveProductRequest struct {
	ID         string `json:"id,omitempty"` // vacío al crear
	ClientID   string `json:"client_id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Perishable bool   `json:"perishable"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Perishable bool   `json:"perishable"`
}

// NewProductResponse mapea la entidad a su respuesta.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		ClientID:   p.ClientID,
		SKU:        p.SKU,
		Name:       p.Name,
		Status:     p.Status,
		Perishable: p.Perishable,
	}
}

// SaveWarehouseRequest entrada para crear o actualizar una bodega.
type SaveWarehouseRequest struct {
	ID       string          `json:"id,omitempty"` // vacío al crear
	ClientID string          `json:"client_id"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Capacity decimal.Decimal `json:"capacity"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID       string          `json:"id"`
	ClientID string          `json:"client_id"`
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Capacity decimal.Decimal `json:"capacity"`
	Status   string          `json:"status"`
}

// NewWarehouseResponse mapea la entidad a su respuesta.
func NewWarehouseResponse(w entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:       w.ID,
		ClientID: w.ClientID,
		Name:     w.Name,
		Address:  w.Address,
		Capacity: w.Capacity,
		Status:   w.Status,
	}
}

// SaveSupplierRequest entrada para crear o actualizar un proveedor.
type SaveSupplierRequest struct {
	ID           string `json:"id,omitempty"` // vacío al crear
	ClientID     string `json:"client_id"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	LeadTimeDays int    `json:"lead_time_days"`
	Status       string `json:"status"`
}

// NewSupplierResponse mapea la entidad a su respuesta.
func NewSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		Name:         s.Name,
		TaxID:        s.TaxID,
		LeadTimeDays: s.LeadTimeDays,
		Status:       s.Status,
	}
}

// RegisterQuotationRequest entrada para registrar una cotización.
type RegisterQuotationRequest struct {
	ProductID    string          `json:"product_id"`
	SupplierID   string          `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// QuotationResponse salida de una cotización.
type QuotationResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	SupplierID     string          `json:"supplier_id"`
	Price          decimal.Decimal `json:"price"`
	LeadTimeDays   int             `json:"lead_time_days"`
	Validity       string          `json:"validity"`
	ApprovalStatus string          `json:"approval_status"`
}

// NewQuotationResponse mapea la entidad a su respuesta.
func NewQuotationResponse(q entity.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:             q.ID,
		ProductID:      q.ProductID,
		SupplierID:     q.SupplierID,
		Price:          q.Price,
		LeadTimeDays:   q.LeadTimeDays,
		Validity:       q.Validity,
		ApprovalStatus: q.ApprovalStatus,
	}
}

// NewQuotationListResponse mapea una lista de cotizaciones.
func NewQuotationListResponse(list []entity.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, NewQuotationResponse(q))
	}
	return out
}
