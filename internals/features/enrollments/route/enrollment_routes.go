// file: internals/features/enrollments/route/enrollment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "labrecord_backend/internals/features/enrollments/controller"
)

// EnrollmentUserRoutes
// Base: /api/u/enrollments, students self-enroll and list their own edges;
// faculty list edges of subjects assigned to them.
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	g := r.Group("/enrollments")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
}

// EnrollmentAdminRoutes
// Base: /api/a/enrollments, adds removal.
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	g := r.Group("/enrollments")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)
}
