package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/adapters/http/routes"
	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/config"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/mq"
	"shoplane/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"

	_ "shoplane/docs" // Swagger docs
)

// @title ShopLane API
// @version 1.0
// @description Multi-vendor marketplace API for buyers, sellers and admins.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@shoplane.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin account and demo catalog in development
	if cfg.IsDev() {
		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed data: %v", err)
		}
	}

	// Event publisher is optional; the API runs without a broker
	var events *mq.Publisher
	if cfg.AMQP.URL != "" {
		events, err = mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Printf("⚠️ Warning: Failed to connect to message broker: %v", err)
		} else {
			defer events.Close()
		}
	}

	// Local image store for product images and verification documents
	images, err := storage.NewLocalStore(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize media store: %v", err)
	}

	// Payment gateway; disabled when keys are not configured
	payments, err := services.NewPaymentService(cfg, events)
	if err != nil {
		log.Fatalf("❌ Failed to initialize payment gateway: %v", err)
	}
	if !payments.Enabled() {
		log.Println("⚠️ Card payments disabled (no gateway keys configured)")
	}

	// Start cron service for the stale order sweep (02:00 daily)
	cronService := services.NewCronService(repositories.NewOrderRepository(db))
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ShopLane API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, events, images, payments)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
