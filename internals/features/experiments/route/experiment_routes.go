// file: internals/features/experiments/route/experiment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	experimentController "labrecord_backend/internals/features/experiments/controller"
)

// ExperimentUserRoutes
// Base: /api/u/experiments, read for everyone, write guarded per-row by the
// evaluator (assigned faculty may create/update under their subjects).
func ExperimentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := experimentController.NewExperimentController(db)

	g := r.Group("/experiments")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
}

// ExperimentAdminRoutes
// Base: /api/a/experiments, adds delete.
func ExperimentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := experimentController.NewExperimentController(db)

	g := r.Group("/experiments")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Delete("/:id", ctrl.Delete)
}
