package http

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/askgemini/api/http/handlers"
	"github.com/artem13815/askgemini/api/http/middleware"
	"github.com/artem13815/askgemini/api/http/presenter"
)

// NewApp creates a Fiber app whose unhandled errors are rendered as {"error": "..."}.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "askgemini",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal server error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code, msg = fe.Code, fe.Message
			}
			return presenter.Error(c, code, msg)
		},
	})
}

// Register wires middleware and all HTTP routes onto given Fiber app.
func Register(app *fiber.App, log *zap.Logger, ask *handlers.AskHandler, health *handlers.HealthHandler, staticDir string) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New())

	// Health and readiness endpoints for monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/ask", ask.Ask)

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Web front end
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(staticDir, "index.html"))
	})
	app.Static("/", staticDir)
}
