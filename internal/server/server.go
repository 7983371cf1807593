// Package server assembles the HTTP application from its dependencies.
package server

import (
	"time"

	"userdesk/internal/handlers"
	"userdesk/internal/middleware"
	"userdesk/internal/repositories"
	"userdesk/internal/services"
	"userdesk/internal/userid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Deps is everything the application needs at startup.
type Deps struct {
	Store          *repositories.Store
	Events         services.EventPublisher
	Log            *zap.Logger
	RequestTimeout time.Duration
}

// New builds the fiber application with all routes and middleware.
func New(d Deps) *fiber.App {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 10 * time.Second
	}

	adminService := services.NewAdminService(d.Store.Admins, d.Events, d.Log.Named("admins"))
	userService := services.NewUserService(d.Store.Users, userid.New(), d.Events, d.Log.Named("users"))

	app := fiber.New(fiber.Config{
		AppName:               "userdesk",
		ErrorHandler:          handlers.ErrorHandler(d.Log),
		ReadTimeout:           d.RequestTimeout,
		WriteTimeout:          d.RequestTimeout,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestLogger(d.Log.Named("http")))
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestTimeout(d.RequestTimeout))

	handlers.NewHealthHandler(d.Store).RegisterRoutes(app)
	handlers.NewAdminHandler(adminService, d.Log.Named("admins")).RegisterRoutes(app)
	handlers.NewUserHandler(userService, d.Log.Named("users")).RegisterRoutes(app)

	return app
}
