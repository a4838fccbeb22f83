package entity

// Supplier representa un proveedor con su lead time vigente.
type Supplier struct {
	ID           string
	ClientID     string
	Name         string
	TaxID        string // identificación fiscal, única por cliente
	LeadTimeDays int    // días entre pedido y recepción
	Status       string // ACTIVE, INACTIVE
}

// IsActive indica si el proveedor está activo.
func (s Supplier) IsActive() bool { return s.Status == StatusActive }
