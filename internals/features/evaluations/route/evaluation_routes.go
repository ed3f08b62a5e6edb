// file: internals/features/evaluations/route/evaluation_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationController "labrecord_backend/internals/features/evaluations/controller"
)

// EvaluationUserRoutes
// Base: /api/u/evaluations, faculty grade, students read their grades.
func EvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := evaluationController.NewEvaluationController(db)

	g := r.Group("/evaluations")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
}

// EvaluationAdminRoutes
// Base: /api/a/evaluations
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := evaluationController.NewEvaluationController(db)

	g := r.Group("/evaluations")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Delete("/:id", ctrl.Delete)
}
