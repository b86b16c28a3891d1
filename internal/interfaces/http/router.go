package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	appinventory "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	MovementUC  *appinventory.MovementUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
}

// Router registra las rutas de la API. Ninguna ruta exige autenticación: el
// login solo emite un token informativo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (cosmético)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Put("/:id", inventoryHandler.Update)

	// Movements (ledger append-only; las rutas fijas van antes que las variables)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/date-range", movementHandler.ListByDateRange)
	movements.Get("/export", movementHandler.Export)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Post("/", reportHandler.Create)
	reports.Delete("/:id", reportHandler.Delete)

	// Analytics
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/analytics/dashboard", dashboardHandler.GetSummary)
}
