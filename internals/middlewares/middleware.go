package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	loggerMW "labrecord_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters:
// recovery must wrap everything, the limiter runs before any handler work.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Registering base middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
