package api

import (
	"bizcardx/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func SetupRouter(
	cardHandler *handlers.CardHandler,
	db *pgxpool.Pool,
	uploadDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Stored card images, served for the annotation overlay
	app.Static("/uploads", uploadDir)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			appLogger.Error("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	cards := app.Group("/api/v1/cards")
	cards.Post("/scan", cardHandler.ScanCard)
	cards.Post("", cardHandler.CreateCard)
	cards.Get("", cardHandler.ListCards)
	cards.Get("/holders", cardHandler.ListHolders)
	cards.Put("/:holder", cardHandler.UpdateCardField)
	cards.Delete("/:holder", cardHandler.DeleteCard)

	return app
}
