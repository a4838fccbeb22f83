package entity

// Estados de un punto de reposición respecto al saldo actual.
const (
	ReplenishmentAdequate   = "ADEQUATE"
	ReplenishmentInadequate = "INADEQUATE"
)

// ReplenishmentPoint asocia un stock de seguridad a un producto en una
// bodega. El ROP se deriva del consumo medio y el lead time del
// proveedor; no se almacena como valor autoritativo.
type ReplenishmentPoint struct {
	ID          string
	WarehouseID string
	ProductID   string
	SafetyStock int64 // nunca negativo
}
