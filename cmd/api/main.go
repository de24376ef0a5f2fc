package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"textile-inventory-api/internal/handler"
	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/internal/service"
	"textile-inventory-api/internal/ws"
	"textile-inventory-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Product{},
		&model.ActivityLog{},
		&model.Assistant{},
		&model.BusinessRegistration{},
	)

	// 3. Seed default admin account
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	assistantRepo := repository.NewAssistantRepo(db)
	regRepo := repository.NewRegistrationRepo(db)

	// Catalog state: Postgres for sessions, in-memory shim for demo mode
	backends := repository.BackendSelector{
		Remote: repository.NewRemoteBackend(db),
		Demo:   repository.NewDemoBackend(),
	}

	invService := service.NewInventoryService(backends, wsHub)
	storeService := service.NewStoreService(backends)
	activityService := service.NewActivityService(backends)
	authService := service.NewAuthService(userRepo, regRepo)
	regService := service.NewRegistrationService(regRepo, userRepo)
	assistantService := service.NewAssistantService(assistantRepo, userRepo)
	userService := service.NewUserService(userRepo)
	dashService := service.NewDashboardService(backends, userRepo, regRepo)

	invHandler := handler.NewInventoryHandler(invService)
	storeHandler := handler.NewStoreHandler(storeService)
	activityHandler := handler.NewActivityHandler(activityService)
	authHandler := handler.NewAuthHandler(authService)
	regHandler := handler.NewRegistrationHandler(regService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	userHandler := handler.NewUserHandler(userService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Textile Inventory API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ CATALOG ROUTES ============
	// Work with or without a session: unauthenticated requests fall back
	// to the ephemeral demo backend.
	catalog := api.Group("", middleware.ResolveActor(userRepo, assistantRepo))

	catalog.Get("/stores", storeHandler.GetStores)
	catalog.Post("/stores", storeHandler.CreateStore)
	catalog.Put("/stores/:id/active", storeHandler.SetActive)

	catalog.Get("/products", invHandler.GetProducts)
	catalog.Post("/products", invHandler.CreateProduct)
	catalog.Put("/products/:id/quantity", invHandler.UpdateQuantity)
	catalog.Post("/products/:id/adjust", invHandler.AdjustQuantity)
	catalog.Delete("/products/:id", invHandler.DeleteProduct)
	catalog.Get("/products/low-stock", invHandler.GetLowStock)

	catalog.Get("/activities", activityHandler.GetActivities)
	catalog.Get("/activities/export", activityHandler.ExportActivities)

	catalog.Get("/dashboard/stats", dashHandler.GetStats)

	// ============ OWNER ROUTES ============
	owner := api.Group("", middleware.RequireAuth(userRepo, assistantRepo), middleware.RequireRole(model.RoleBusinessOwner))
	owner.Get("/assistants", assistantHandler.GetAssistants)
	owner.Post("/assistants", assistantHandler.CreateAssistant)
	owner.Put("/assistants/:id/access", assistantHandler.SetStoreAccess)
	owner.Put("/assistants/:id/active", assistantHandler.SetActive)
	owner.Put("/assistants/:id/muted", assistantHandler.SetMuted)

	// ============ ADMIN ROUTES ============
	admin := api.Group("", middleware.RequireAuth(userRepo, assistantRepo), middleware.RequireRole(model.RoleAdmin))
	admin.Get("/registrations", regHandler.GetRegistrations)
	admin.Post("/registrations/:id/approve", regHandler.Approve)
	admin.Post("/registrations/:id/reject", regHandler.Reject)
	admin.Get("/users", userHandler.GetUsers)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Put("/users/:id/active", userHandler.SetActive)
	admin.Get("/dashboard/admin-stats", dashHandler.GetAdminStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Email:    email,
		Name:     "System Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("✅ Admin user created: %s", email)
	}
}
