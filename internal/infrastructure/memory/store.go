// Package memory implementa los repositorios del dominio sobre mapas en
// memoria. Sustituye a PostgreSQL en pruebas; respeta los mismos
// contratos de ordenamiento que los adaptadores reales.
package memory

import (
	"sync"
	"time"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// Store contiene todos los agregados en memoria. Seguro para uso
// concurrente. Cada agregado se expone como repositorio a través de su
// accessor.
type Store struct {
	mu sync.RWMutex

	movements    map[string]entity.Movement
	transfers    map[string]entity.Transfer
	reservations map[string]entity.Reservation
	orders       map[string]entity.Order
	points       map[string]entity.ReplenishmentPoint
	alerts       map[string]entity.Alert
	quotations   map[string]entity.Quotation
	products     map[string]entity.Product
	warehouses   map[string]entity.Warehouse
	suppliers    map[string]entity.Supplier

	// Now fija el reloj del lector de consumos; en pruebas se puede
	// sustituir por un instante conocido.
	Now func() time.Time
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		movements:    make(map[string]entity.Movement),
		transfers:    make(map[string]entity.Transfer),
		reservations: make(map[string]entity.Reservation),
		orders:       make(map[string]entity.Order),
		points:       make(map[string]entity.ReplenishmentPoint),
		alerts:       make(map[string]entity.Alert),
		quotations:   make(map[string]entity.Quotation),
		products:     make(map[string]entity.Product),
		warehouses:   make(map[string]entity.Warehouse),
		suppliers:    make(map[string]entity.Supplier),
		Now:          time.Now,
	}
}

// Accessors por agregado.

func (s *Store) Movements() *MovementRepo             { return &MovementRepo{s} }
func (s *Store) Transfers() *TransferRepo             { return &TransferRepo{s} }
func (s *Store) Reservations() *ReservationRepo       { return &ReservationRepo{s} }
func (s *Store) Orders() *OrderRepo                   { return &OrderRepo{s} }
func (s *Store) Points() *ReplenishmentPointRepo      { return &ReplenishmentPointRepo{s} }
func (s *Store) Alerts() *AlertRepo                   { return &AlertRepo{s} }
func (s *Store) Quotations() *QuotationRepo           { return &QuotationRepo{s} }
func (s *Store) Products() *ProductRepo               { return &ProductRepo{s} }
func (s *Store) Warehouses() *WarehouseRepo           { return &WarehouseRepo{s} }
func (s *Store) Suppliers() *SupplierRepo             { return &SupplierRepo{s} }
func (s *Store) Stock() *StockReader                  { return &StockReader{s} }
func (s *Store) Tx() *TxRunner                        { return &TxRunner{s} }
