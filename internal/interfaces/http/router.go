package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/auth"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClassificationUC *usecase.ClassificationUseCase
	SupplierUC       *usecase.SupplierUseCase
	ClientUC         *usecase.ClientUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	LocationUC       *usecase.LocationUseCase
	ItemUC           *usecase.ItemUseCase
	InventoryUC      *usecase.InventoryUseCase
	OrderUC          *usecase.OrderUseCase
	PackingSlipUC    *usecase.PackingSlipUseCase
	ShipmentUC       *usecase.ShipmentUseCase
	TransferUC       *usecase.TransferUseCase
	UserUC           *usecase.UserUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	DB               Pinger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	// Infraestructura (público)
	healthHandler := NewHealthHandler(deps.DB)
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Administración de aplicaciones (requiere JWT con rol admin)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret), RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Archive)
	users.Post("/:id/unarchive", userHandler.Unarchive)

	// Rutas protegidas por clave de API
	protected := api.Group("/", APIKeyMiddleware(deps.AuthUC))

	// Clasificaciones de artículos (protegido)
	registerClassification(protected, "/item_groups", entity.KindItemGroup, deps.ClassificationUC)
	registerClassification(protected, "/item_lines", entity.KindItemLine, deps.ClassificationUC)
	registerClassification(protected, "/item_types", entity.KindItemType, deps.ClassificationUC)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers", RequireAccess(entity.KindSupplier))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Get("/:id/items", supplierHandler.ListItems)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Archive)
	suppliers.Post("/:id/unarchive", supplierHandler.Unarchive)

	// Clients (protegido)
	clients := protected.Group("/clients", RequireAccess(entity.KindClient))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Get("/:id/orders", clientHandler.ListOrders)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Archive)
	clients.Post("/:id/unarchive", clientHandler.Unarchive)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses", RequireAccess(entity.KindWarehouse))
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/locations", warehouseHandler.ListLocations)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Archive)
	warehouses.Post("/:id/unarchive", warehouseHandler.Unarchive)

	// Locations (protegido)
	locations := protected.Group("/locations", RequireAccess(entity.KindLocation))
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Archive)
	locations.Post("/:id/unarchive", locationHandler.Unarchive)

	// Items (protegido)
	items := protected.Group("/items", RequireAccess(entity.KindItem))
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/inventory", itemHandler.ListInventory)
	items.Get("/:id/inventory/totals", itemHandler.InventoryTotals)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Archive)
	items.Post("/:id/unarchive", itemHandler.Unarchive)

	// Inventories (protegido)
	inventories := protected.Group("/inventories", RequireAccess(entity.KindInventory))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", inventoryHandler.Update)
	inventories.Delete("/:id", inventoryHandler.Archive)
	inventories.Post("/:id/unarchive", inventoryHandler.Unarchive)

	// Orders (protegido)
	orders := protected.Group("/orders", RequireAccess(entity.KindOrder))
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PackingSlipUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/items", orderHandler.ListItems)
	orders.Get("/:id/packing-slip", orderHandler.PackingSlip)
	orders.Put("/:id", orderHandler.Update)
	orders.Put("/:id/items", orderHandler.ReplaceItems)
	orders.Delete("/:id", orderHandler.Archive)
	orders.Post("/:id/unarchive", orderHandler.Unarchive)

	// Shipments (protegido)
	shipments := protected.Group("/shipments", RequireAccess(entity.KindShipment))
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Get("/:id/items", shipmentHandler.ListItems)
	shipments.Get("/:id/orders", shipmentHandler.ListOrders)
	shipments.Put("/:id", shipmentHandler.Update)
	shipments.Put("/:id/items", shipmentHandler.ReplaceItems)
	shipments.Put("/:id/orders", shipmentHandler.AssignOrders)
	shipments.Put("/:id/commit", shipmentHandler.Commit)
	shipments.Delete("/:id", shipmentHandler.Archive)
	shipments.Post("/:id/unarchive", shipmentHandler.Unarchive)

	// Transfers (protegido)
	transfers := protected.Group("/transfers", RequireAccess(entity.KindTransfer))
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Get("/:id/items", transferHandler.ListItems)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Put("/:id/commit", transferHandler.Commit)
	transfers.Delete("/:id", transferHandler.Archive)
	transfers.Post("/:id/unarchive", transferHandler.Unarchive)
}

// registerClassification registra las rutas CRUD de una clasificación de
// artículos bajo su propio prefijo. Las tres comparten handler y caso de uso.
func registerClassification(r fiber.Router, prefix string, kind entity.Kind, uc *usecase.ClassificationUseCase) {
	g := r.Group(prefix, RequireAccess(kind))
	h := NewClassificationHandler(uc, kind)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Archive)
	g.Post("/:id/unarchive", h.Unarchive)
}
