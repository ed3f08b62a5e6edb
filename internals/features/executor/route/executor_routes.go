// file: internals/features/executor/route/executor_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	executorController "labrecord_backend/internals/features/executor/controller"
	"labrecord_backend/internals/middlewares"
)

// ExecutorRoutes
// Base: /api/u/executor, rate-limited harder than the rest of the API
// because every call fans out to the remote runner.
func ExecutorRoutes(r fiber.Router) {
	ctrl := executorController.NewExecutorController()

	g := r.Group("/executor", middlewares.ExecutorRateLimiter())
	g.Post("/run", ctrl.Run)
}
