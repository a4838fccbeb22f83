package entity

// Estados de producto, bodega y proveedor.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Product representa un producto administrado por el cliente.
type Product struct {
	ID       string
	ClientID string
	SKU      string
	Name     string
	Status   string // ACTIVE, INACTIVE
	// Perecedero: un producto perecedero no puede inactivarse con lotes
	// vigentes en bodega.
	Perishable bool
}

// IsActive indica si el producto está activo.
func (p Product) IsActive() bool { return p.Status == StatusActive }
