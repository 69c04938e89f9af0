package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventario/internal/app"
	"inventario/internal/config"
	"inventario/internal/events"
	"inventario/internal/observability"
	"inventario/internal/repositories"
	"inventario/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.ServiceName(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// --- Tracing ---
	shutdownTracing, err := observability.SetupTracing(context.Background(), observability.TracingConfig{
		ServiceName: cfg.ServiceName(),
		Endpoint:    cfg.OtelEndpoint,
		AuthHeader:  cfg.OtelAuthHeader,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// --- Fiber App ---
	var server *fiber.App
	cleanup := func() {}
	switch cfg.Tier {
	case config.TierData:
		deps, closeDeps, err := newDataDeps(cfg, logger)
		if err != nil {
			logger.Fatal("Failed to initialize data tier", zap.Error(err))
		}
		cleanup = closeDeps
		server = app.NewDataApp(deps)
	case config.TierBusiness:
		server = app.NewBusinessApp(app.BusinessDeps{
			DataServiceURL: cfg.DataServiceURL,
			Logger:         logger,
			AccessLog:      true,
		})
	}

	// --- Start HTTP Server ---
	logger.Info("Starting server",
		zap.String("tier", cfg.Tier),
		zap.String("port", cfg.Port))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Listen(cfg.Port); err != nil {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Error during Fiber shutdown", zap.Error(err))
	}
	cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("Error during tracer shutdown", zap.Error(err))
	}

	logger.Info("Server gracefully stopped")
}

// newDataDeps opens the configured storage and event publisher of the data
// tier. The returned func releases them.
func newDataDeps(cfg *config.Config, logger *zap.Logger) (app.DataDeps, func(), error) {
	deps := app.DataDeps{Logger: logger, AccessLog: true}

	// --- Repositories ---
	if cfg.DBDriver == config.DriverMemory {
		store := repositories.NewMemoryStore()
		deps.Products = store.Products()
		deps.Categories = store.Categories()
		deps.Inventories = store.Inventories()
	} else {
		db, err := repositories.Open(cfg.DBDriver, cfg.DatabaseDSN, logger)
		if err != nil {
			return deps, nil, err
		}
		deps.Products = repositories.NewGORMProductRepository(db)
		deps.Categories = repositories.NewGORMCategoryRepository(db)
		deps.Inventories = repositories.NewGORMInventoryRepository(db)
	}

	// --- Inventory events ---
	switch cfg.EventsDriver {
	case config.EventsRabbitMQ:
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Logger: logger})
		if err != nil {
			return deps, nil, err
		}
		if err := mqClient.ConsumeInventoryEvents(rabbitmq.LowStockAlert(logger)); err != nil {
			logger.Error("Failed to start RabbitMQ consumer", zap.Error(err))
		}
		deps.Publisher = mqClient
		return deps, func() {
			if err := mqClient.Close(); err != nil {
				logger.Error("Error closing RabbitMQ client", zap.Error(err))
			}
		}, nil
	case config.EventsKafka:
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		deps.Publisher = publisher
		return deps, func() {
			if err := publisher.Close(); err != nil {
				logger.Error("Error closing Kafka writer", zap.Error(err))
			}
		}, nil
	default:
		deps.Publisher = events.NopPublisher{}
		return deps, func() {}, nil
	}
}
