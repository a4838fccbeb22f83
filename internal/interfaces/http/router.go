package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/sge-core/internal/application/movement"
	"github.com/gestock/sge-core/internal/application/order"
	"github.com/gestock/sge-core/internal/application/product"
	"github.com/gestock/sge-core/internal/application/quotation"
	"github.com/gestock/sge-core/internal/application/replenishment"
	"github.com/gestock/sge-core/internal/application/reservation"
	"github.com/gestock/sge-core/internal/application/supplier"
	"github.com/gestock/sge-core/internal/application/transfer"
	"github.com/gestock/sge-core/internal/application/warehouse"
	"github.com/gestock/sge-core/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger          *movement.Ledger
	TransferEngine  *transfer.Engine
	Reservations    *reservation.Manager
	Replenishment   *replenishment.Engine
	OrderUC         *order.UseCase
	SupplierUC      *supplier.UseCase
	WarehouseUC     *warehouse.UseCase
	ProductUC       *product.UseCase
	QuotationUC     *quotation.UseCase
	Log             *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Movimientos de inventario
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Ledger)
	movements.Post("/", movementHandler.Record)
	movements.Delete("/:id", movementHandler.Delete)

	// Traslados
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferEngine)
	transfers.Post("/", transferHandler.Register)
	transfers.Get("/", transferHandler.ListByProduct)

	// Pedidos
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Post("/:id/receipt", orderHandler.ConfirmReceipt)
	orders.Post("/:id/status", orderHandler.ChangeStatus)

	// Reservas
	reservations := api.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.Reservations)
	reservations.Get("/", reservationHandler.ListByOrder)
	reservations.Post("/:id/release", reservationHandler.Release)

	// Reposición: puntos, evaluación y alertas
	replenishmentGroup := api.Group("/replenishment")
	replenishmentHandler := NewReplenishmentHandler(deps.Replenishment)
	replenishmentGroup.Post("/points", replenishmentHandler.RegisterPoint)
	replenishmentGroup.Put("/points/:id/safety-stock", replenishmentHandler.UpdateSafetyStock)
	replenishmentGroup.Get("/assessment", replenishmentHandler.Assess)
	replenishmentGroup.Get("/alerts", replenishmentHandler.ListAlerts)

	// Cotizaciones
	quotations := api.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/", quotationHandler.Register)
	quotations.Get("/", quotationHandler.ListByProduct)
	quotations.Get("/best", quotationHandler.Best)
	quotations.Post("/:id/approve", quotationHandler.Approve)
	quotations.Post("/:id/expire", quotationHandler.Expire)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Save)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/:id/activate", supplierHandler.Activate)
	suppliers.Post("/:id/inactivate", supplierHandler.Inactivate)

	// Bodegas
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	warehouses.Post("/", warehouseHandler.Save)
	warehouses.Delete("/:id", warehouseHandler.Delete)
	warehouses.Post("/:id/:operation", warehouseHandler.Apply)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Save)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/:operation", productHandler.Apply)
}
