// Package app assembles the fiber applications of the data and business
// tiers.
package app

import (
	"time"

	"inventario/internal/business"
	"inventario/internal/client"
	"inventario/internal/events"
	"inventario/internal/gateway"
	"inventario/internal/handlers"
	"inventario/internal/middleware"
	"inventario/internal/repositories"
	"inventario/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// Prices travel as JSON numbers between tiers and to clients.
	decimal.MarshalJSONWithoutQuotes = true
}

// DataDeps are the collaborators of the data tier.
type DataDeps struct {
	Products    repositories.ProductRepository
	Categories  repositories.CategoryRepository
	Inventories repositories.InventoryRepository
	Publisher   events.Publisher
	Logger      *zap.Logger
	AccessLog   bool
}

// BusinessDeps are the collaborators of the business tier.
type BusinessDeps struct {
	DataServiceURL string
	Logger         *zap.Logger
	AccessLog      bool
}

func newFiber(name string, log *zap.Logger, accessLog bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if accessLog {
		app.Use(logger.New())
	}
	app.Use(middleware.RequestID(), middleware.Tracing())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"service": name,
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	return app
}

// NewDataApp builds the data tier: storage-backed CRUD under /data.
func NewDataApp(deps DataDeps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	productService := services.NewProductService(deps.Products, deps.Publisher, log)
	categoryService := services.NewCategoryService(deps.Categories)
	inventoryService := services.NewInventoryService(deps.Inventories, deps.Products, deps.Publisher, log)

	app := newFiber("data-service", log, deps.AccessLog)
	data := app.Group("/data")
	handlers.NewProductHandler(productService).RegisterRoutes(data)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(data)
	handlers.NewInventoryHandler(inventoryService).RegisterRoutes(data)
	return app
}

// NewBusinessApp builds the business tier: the public API under /api,
// backed by the data tier at deps.DataServiceURL.
func NewBusinessApp(deps BusinessDeps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dataClient := client.NewDataServiceClient(deps.DataServiceURL, log)
	productService := business.NewProductService(dataClient)
	categoryService := business.NewCategoryService(dataClient)
	inventoryService := business.NewInventoryService(dataClient)

	app := newFiber("business-service", log, deps.AccessLog)
	api := app.Group("/api")
	gateway.NewProductHandler(productService).RegisterRoutes(api)
	gateway.NewCategoryHandler(categoryService).RegisterRoutes(api)
	gateway.NewInventoryHandler(inventoryService).RegisterRoutes(api)
	gateway.NewReportHandler(productService).RegisterRoutes(api)
	return app
}
