package routes

import (
	"shoplane/internal/adapters/http/handlers"
	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/config"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/mq"
	"shoplane/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(
	app *fiber.App,
	db *gorm.DB,
	cfg *config.Config,
	events *mq.Publisher,
	images storage.ImageStore,
	payments *services.PaymentService,
) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewSellerProfileRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	todoRepo := repositories.NewTodoRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, images)
	importService := services.NewImportService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, payments, events)
	sellerService := services.NewSellerService(userRepo, profileRepo, orderRepo)
	todoService := services.NewTodoService(todoRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	productHandler := handlers.NewProductHandler(productService, importService)
	orderHandler := handlers.NewOrderHandler(orderService)
	sellerHandler := handlers.NewSellerHandler(sellerService, images)
	adminHandler := handlers.NewAdminHandler(userService)
	accountHandler := handlers.NewAccountHandler(userService, authService)
	todoHandler := handlers.NewTodoHandler(todoService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded product images and verification documents
	app.Static(cfg.Media.BaseURL, cfg.Media.Dir)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	productRoutes := apiV1.Group("/products")
	setupProductRoutes(productRoutes, productHandler, cfg)

	orderRoutes := apiV1.Group("/orders")
	orderRoutes.Use(middleware.RequireAuth(cfg))
	setupOrderRoutes(orderRoutes, orderHandler)

	sellerRoutes := apiV1.Group("/seller")
	sellerRoutes.Use(middleware.RequireAuth(cfg))
	setupSellerRoutes(sellerRoutes, sellerHandler, productHandler)

	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.RequireAuth(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, adminHandler)

	accountRoutes := apiV1.Group("/account")
	accountRoutes.Use(middleware.RequireAuth(cfg))
	setupAccountRoutes(accountRoutes, accountHandler)

	todoRoutes := apiV1.Group("/todos")
	todoRoutes.Use(middleware.RequireAuth(cfg))
	setupTodoRoutes(todoRoutes, todoHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate limited against brute force
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.RequireAuth(cfg), handler.Me)
}

// setupProductRoutes configures public catalog and seller creation routes
func setupProductRoutes(router fiber.Router, handler *handlers.ProductHandler, cfg *config.Config) {
	// Public catalog, short-lived cache
	router.Get("/", middleware.CatalogCache(), handler.List)

	// Seller creation route lives under the catalog prefix
	router.Post("/create", middleware.RequireAuth(cfg), middleware.SellerOnly(), handler.Create)

	router.Get("/:id", middleware.CatalogCache(), handler.Get)
}

// setupOrderRoutes configures order routes (authenticated users)
func setupOrderRoutes(router fiber.Router, handler *handlers.OrderHandler) {
	router.Post("/", handler.Checkout)
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
}

// setupSellerRoutes configures seller routes. Applying is open to any
// authenticated user; everything else requires the seller role.
func setupSellerRoutes(router fiber.Router, handler *handlers.SellerHandler, productHandler *handlers.ProductHandler) {
	router.Post("/apply", handler.Apply)

	sellerOnly := router.Group("")
	sellerOnly.Use(middleware.SellerOnly())

	sellerOnly.Post("/verify", handler.SubmitVerification)
	sellerOnly.Put("/bank", handler.UpdateBankDetails)
	sellerOnly.Get("/dashboard", handler.Dashboard)

	sellerOnly.Get("/products", productHandler.ListMine)
	sellerOnly.Post("/products/import", productHandler.Import)
	sellerOnly.Put("/products/:id", productHandler.Update)
	sellerOnly.Delete("/products/:id", productHandler.Delete)
}

// setupAdminRoutes configures admin routes (Admin only)
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler) {
	router.Get("/users", handler.ListUsers)
	router.Put("/users/:id", handler.UpdateUser)
	router.Post("/sellers/:id/approve", handler.ApproveSeller)
}

// setupAccountRoutes configures profile routes (Authenticated)
func setupAccountRoutes(router fiber.Router, handler *handlers.AccountHandler) {
	router.Get("/profile", handler.GetProfile)
	router.Put("/profile", handler.UpdateProfile)
	router.Put("/password", handler.ChangePassword)
}

// setupTodoRoutes configures todo routes (Authenticated)
func setupTodoRoutes(router fiber.Router, handler *handlers.TodoHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}
