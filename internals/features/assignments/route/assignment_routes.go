// file: internals/features/assignments/route/assignment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "labrecord_backend/internals/features/assignments/controller"
)

// AssignmentUserRoutes
// Base: /api/u/assignments, faculty list their own edges only.
func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewAssignmentController(db)

	g := r.Group("/assignments")
	g.Get("/", ctrl.List)
}

// AssignmentAdminRoutes
// Base: /api/a/assignments, create/remove edges.
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewAssignmentController(db)

	g := r.Group("/assignments")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)
}
