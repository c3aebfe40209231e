package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/cargohub-api/internal/application/auth"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/cargohub-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cargohub-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cargohub-api/internal/interfaces/http"
	"github.com/jhoicas/cargohub-api/pkg/config"
	"github.com/jhoicas/cargohub-api/pkg/logger"
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

	classificationRepo := postgres.NewClassificationRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Motor atado al pool para las operaciones sin transacción. Las mutaciones
	// que tocan el libro de inventario corren un motor propio dentro del
	// TxRunner.
	eng := engine.New(engine.Stores{
		Inventories: inventoryRepo,
		Orders:      orderRepo,
		Shipments:   shipmentRepo,
		Transfers:   transferRepo,
		Lookup:      postgres.NewLookup(pool),
	})
	txRunner := postgres.NewTxRunner(pool)

	classificationUC := usecase.NewClassificationUseCase(classificationRepo, eng)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, itemRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, orderRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locationRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, eng)
	itemUC := usecase.NewItemUseCase(itemRepo, inventoryRepo, eng)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, eng)
	orderUC := usecase.NewOrderUseCase(orderRepo, eng, txRunner)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, orderRepo, eng, txRunner)
	transferUC := usecase.NewTransferUseCase(transferRepo, eng, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)

	// PDF: albarán de empaque del pedido
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	packingSlipUC := usecase.NewPackingSlipUseCase(
		orderRepo, itemRepo, warehouseRepo, clientRepo, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CargoHub API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClassificationUC: classificationUC,
		SupplierUC:       supplierUC,
		ClientUC:         clientUC,
		WarehouseUC:      warehouseUC,
		LocationUC:       locationUC,
		ItemUC:           itemUC,
		InventoryUC:      inventoryUC,
		OrderUC:          orderUC,
		PackingSlipUC:    packingSlipUC,
		ShipmentUC:       shipmentUC,
		TransferUC:       transferUC,
		UserUC:           userUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
		DB:               pool,
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
