package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appmovement "github.com/gestock/sge-core/internal/application/movement"
	apporder "github.com/gestock/sge-core/internal/application/order"
	appproduct "github.com/gestock/sge-core/internal/application/product"
	appquotation "github.com/gestock/sge-core/internal/application/quotation"
	appreplenishment "github.com/gestock/sge-core/internal/application/replenishment"
	appreservation "github.com/gestock/sge-core/internal/application/reservation"
	appsupplier "github.com/gestock/sge-core/internal/application/supplier"
	apptransfer "github.com/gestock/sge-core/internal/application/transfer"
	appwarehouse "github.com/gestock/sge-core/internal/application/warehouse"
	"github.com/gestock/sge-core/internal/domain/event"
	"github.com/gestock/sge-core/internal/domain/quotation"
	"github.com/gestock/sge-core/internal/infrastructure/postgres"
	httpRouter "github.com/gestock/sge-core/internal/interfaces/http"
	"github.com/gestock/sge-core/pkg/config"
	"github.com/gestock/sge-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	pointRepo := postgres.NewReplenishmentPointRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockReader := postgres.NewStockReader(pool)
	txRunner := postgres.NewTxRunner(pool)

	// El bus es síncrono: los handlers corren dentro de la publicación.
	// El orden de registro define el orden de invocación por evento.
	bus := event.NewBus(log)
	selector := quotation.Full{}

	ledger := appmovement.NewLedger(movementRepo, productRepo, warehouseRepo, bus)
	transferEngine := apptransfer.NewEngine(transferRepo, movementRepo, warehouseRepo, stockReader, ledger, bus, log)
	reservations := appreservation.NewManager(reservationRepo, bus, log)
	replenishmentEngine := appreplenishment.NewEngine(
		pointRepo, alertRepo, quotationRepo, supplierRepo, productRepo,
		warehouseRepo, stockReader, selector, bus, log,
	)
	orderUC := apporder.NewUseCase(
		orderRepo, supplierRepo, warehouseRepo, productRepo, quotationRepo,
		stockReader, selector, ledger, txRunner, bus, log,
	)
	supplierUC := appsupplier.NewUseCase(supplierRepo, orderRepo, bus, log)
	warehouseUC := appwarehouse.NewUseCase(warehouseRepo, orderRepo, stockReader, log)
	productUC := appproduct.NewUseCase(productRepo, log)
	quotationUC := appquotation.NewUseCase(quotationRepo, supplierRepo, productRepo, selector)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:         ledger,
		TransferEngine: transferEngine,
		Reservations:   reservations,
		Replenishment:  replenishmentEngine,
		OrderUC:        orderUC,
		SupplierUC:     supplierUC,
		WarehouseUC:    warehouseUC,
		ProductUC:      productUC,
		QuotationUC:    quotationUC,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
