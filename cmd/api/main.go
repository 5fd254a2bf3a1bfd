package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"employee-portal/internal/config"
	"employee-portal/internal/domain"
	"employee-portal/internal/handler"
	"employee-portal/internal/middleware"
	"employee-portal/internal/pkg/i18n"
	"employee-portal/internal/realtime"
	"employee-portal/internal/repository"
	"employee-portal/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := i18n.LoadTranslations("internal/pkg/i18n/locales"); err != nil {
		log.Printf("Warning: failed to load translations: %v", err)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	broadcaster := realtime.NewBroadcaster(ctx, redis)
	hub := realtime.NewHub()
	go hub.RunSubscriber(ctx, redis)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, broadcaster, cfg)
	handlers := handler.NewHandlers(services)

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

	setupRoutes(app, handlers, hub, cfg)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, hub *realtime.Hub, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// The websocket handshake carries the token as a query parameter, so the
	// route sits outside the Authorization-header middleware.
	app.Use("/ws", realtime.Upgrade)
	app.Get("/ws", hub.Handler(func(token string) (*domain.AccessClaims, error) {
		return middleware.ParseAccessToken(cfg.JWTSecret, token)
	}))

	v1 := app.Group("/api/v1")

	protected := v1.Group("", middleware.AuthRequired(cfg.JWTSecret))

	requests := protected.Group("/requests")
	requests.Post("/", h.Request.Submit)
	requests.Get("/", h.Request.List)
	requests.Get("/:requestId", h.Request.Get)
	requests.Put("/:requestId/action", h.Request.Respond)
	requests.Put("/:requestId", middleware.RequireAdmin(), h.Request.Review)
	requests.Delete("/:requestId", h.Request.Cancel)

	documents := protected.Group("/documents")
	documents.Post("/", middleware.RequireAdmin(), h.Document.Create)
	documents.Get("/", h.Document.List)
	documents.Get("/:documentId", h.Document.Get)
	documents.Put("/:documentId", middleware.RequireAdmin(), h.Document.Update)
	documents.Delete("/:documentId", middleware.RequireAdmin(), h.Document.Delete)

	incidents := protected.Group("/incidents")
	incidents.Post("/", middleware.RequireAdmin(), h.Incident.Create)
	incidents.Get("/", h.Incident.List)
	incidents.Get("/:incidentId", h.Incident.Get)
	incidents.Put("/:incidentId", middleware.RequireAdmin(), h.Incident.Update)
	incidents.Delete("/:incidentId", middleware.RequireAdmin(), h.Incident.Delete)

	schedules := protected.Group("/schedules")
	schedules.Post("/", middleware.RequireAdmin(), h.Schedule.Create)
	schedules.Get("/", h.Schedule.List)
	schedules.Delete("/:scheduleId", middleware.RequireAdmin(), h.Schedule.Delete)

	attendance := protected.Group("/attendance")
	attendance.Post("/clock-in", h.Attendance.ClockIn)
	attendance.Post("/clock-out", h.Attendance.ClockOut)
	attendance.Get("/", h.Attendance.List)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	audit := protected.Group("/audit", middleware.RequireAdmin())
	audit.Get("/", h.Audit.List)
	audit.Get("/:entityType/:entityId", h.Audit.ListByEntity)
}
