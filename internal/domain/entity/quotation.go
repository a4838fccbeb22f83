package entity

import "github.com/shopspring/decimal"

// Validez de una cotización.
const (
	QuotationActive  = "ACTIVE"
	QuotationExpired = "EXPIRED"
)

// Estado de aprobación de una cotización.
const (
	QuotationPending  = "PENDING"
	QuotationApproved = "APPROVED"
)

// Quotation es la oferta de un proveedor para un producto: precio,
// lead time en días y validez. Una de varias candidatas entre las que
// se elige la más ventajosa.
type Quotation struct {
	ID             string
	ProductID      string
	SupplierID     string
	Price          decimal.Decimal // > 0
	LeadTimeDays   int             // ≥ 1
	Validity       string          // ACTIVE, EXPIRED
	ApprovalStatus string          // PENDING, APPROVED
}
