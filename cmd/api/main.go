package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"admissions-portal/internal/config"
	"admissions-portal/internal/domain"
	"admissions-portal/internal/handler"
	"admissions-portal/internal/middleware"
	"admissions-portal/internal/repository"
	"admissions-portal/internal/service"
	"admissions-portal/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (spreadsheet export will not work)", err)
	}

	recordStore := store.New(store.NewRedisKV(redisClient))
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, recordStore, minioClient, cfg)
	handlers := handler.NewHandlers(services, repos.Directory)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))

	protected.Get("/auth/me", h.Auth.Me)

	schools := protected.Group("/schools")
	schools.Get("/", h.Directory.ListSchools)
	schools.Get("/:schoolId/classes", h.Directory.ListClasses)

	applications := protected.Group("/applications")
	applications.Post("/", middleware.RequireAnyRole(domain.RoleStudent, domain.RoleAgent), h.Application.Create)
	applications.Get("/", middleware.RequireAnyRole(domain.RoleAgent, domain.RoleDirector), h.Application.List)
	applications.Get("/:applicationId", h.Application.Get)
	applications.Get("/:applicationId/issues", middleware.RequireRole(domain.RoleAgent), h.Application.GetIssues)
	applications.Post("/:applicationId/documents", middleware.RequireAnyRole(domain.RoleStudent, domain.RoleAgent), h.Application.AddDocument)
	applications.Post("/:applicationId/submit", middleware.RequireRole(domain.RoleAgent), h.Application.Submit)
	applications.Post("/:applicationId/mark-incomplete", middleware.RequireRole(domain.RoleAgent), h.Application.MarkIncomplete)
	applications.Post("/:applicationId/validate", middleware.RequireRole(domain.RoleDirector), h.Application.Validate)
	applications.Post("/:applicationId/reject", middleware.RequireRole(domain.RoleDirector), h.Application.Reject)

	inbox := protected.Group("/inbox", middleware.RequireRole(domain.RoleDirector))
	inbox.Get("/", h.Inbox.List)
	inbox.Patch("/:id/read", h.Inbox.MarkAsRead)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	exports := protected.Group("/exports", middleware.RequireRole(domain.RoleAdmin))
	exports.Post("/classes/:classId", h.Export.GenerateForClass)
	exports.Post("/schools/:schoolId", h.Export.GenerateForSchool)
	exports.Post("/all", h.Export.GenerateAll)
}
