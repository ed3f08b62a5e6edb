// file: internals/features/submissions/route/submission_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "labrecord_backend/internals/features/submissions/controller"
)

// SubmissionUserRoutes
// Base: /api/u/submissions, students create/update their own work, faculty
// read the work of their subjects. Per-row checks run in the controller.
func SubmissionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := submissionController.NewSubmissionController(db)

	g := r.Group("/submissions")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
}

// SubmissionAdminRoutes
// Base: /api/a/submissions
func SubmissionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := submissionController.NewSubmissionController(db)

	g := r.Group("/submissions")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
}
