package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-portfolio-api/internal/content"
	"go-portfolio-api/internal/handler"
	"go-portfolio-api/internal/middleware"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/service"
	"go-portfolio-api/internal/ws"
	"go-portfolio-api/pkg/database"

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
	db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Course{},
		&model.Permission{},
		&model.Suggestion{},
		&model.PermissionSuggestion{},
	)

	// 3. Seed roles, the admin permission bundle, and the admin account
	seedRolesAndAdmin(db)

	// 4. Load the portfolio payload (read-only after this point)
	portfolio, err := content.Load(os.Getenv("PORTFOLIO_FILE"))
	if err != nil {
		log.Fatal("Failed to load portfolio content: ", err)
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	suggestionRepo := repository.NewSuggestionRepo(db)
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)

	suggestionService := service.NewSuggestionService(suggestionRepo, userRepo, courseRepo, permissionRepo, db, wsHub)
	authService := service.NewAuthService(userRepo)

	suggestionHandler := handler.NewSuggestionHandler(suggestionService)
	portfolioHandler := handler.NewPortfolioHandler(portfolio)
	authHandler := handler.NewAuthHandler(authService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Portfolio API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api")

	// Portfolio content (public, read-only)
	api.Get("/portfolio", portfolioHandler.GetPortfolio)
	api.Get("/hero", portfolioHandler.GetHero)
	api.Get("/projects", portfolioHandler.GetProjects)
	api.Get("/hobbies", portfolioHandler.GetHobbies)

	// Auth
	api.Post("/auth/login", authHandler.Login)

	// Suggestions. The guestbook surface is public; the archived list and
	// permanent delete require an authenticated caller whose role grants the
	// capability.
	api.Post("/suggestions", suggestionHandler.Create)
	api.Get("/suggestions", suggestionHandler.ListActive)
	api.Get("/suggestions/archived",
		middleware.RequireAuth(userRepo),
		middleware.RequireCapability(permissionRepo, model.CapabilityRead),
		suggestionHandler.ListArchived)
	api.Put("/suggestions/:id", suggestionHandler.Update)
	api.Delete("/suggestions/:id", suggestionHandler.Archive)
	api.Put("/suggestions/:id/restore", suggestionHandler.Restore)
	api.Delete("/suggestions/:id/permanent",
		middleware.RequireAuth(userRepo),
		middleware.RequireCapability(permissionRepo, model.CapabilityPermaDelete),
		suggestionHandler.Purge)

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

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesAndAdmin creates the fixed roles, the admin capability bundle,
// and the admin account if they don't exist
func seedRolesAndAdmin(db *gorm.DB) {
	roleRepo := repository.NewRoleRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	if _, err := permissionRepo.FindOrCreate(db, model.RoleAdmin); err != nil {
		log.Printf("Warning: Failed to seed admin permissions: %v", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	if _, err := userRepo.FindByEmail(adminEmail); err == nil {
		return
	}

	admin := &model.User{
		Name:   "Portfolio Admin",
		Email:  adminEmail,
		RoleID: model.RoleAdmin,
	}
	if err := admin.SetPassword(adminPassword); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", adminEmail)
	}
}
