// file: internals/features/subjects/route/subject_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "labrecord_backend/internals/features/subjects/controller"
)

// SubjectUserRoutes
// Base: /api/u/subjects, read-only for every authenticated role.
func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}

// SubjectAdminRoutes
// Base: /api/a/subjects, full CRUD.
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Delete("/:id", ctrl.Delete)
}
