// file: internals/features/principals/route/principal_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	principalController "labrecord_backend/internals/features/principals/controller"
)

// PrincipalUserRoutes
// Base: /api/u/profiles
func PrincipalUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := principalController.NewPrincipalController(db)

	g := r.Group("/profiles")
	g.Get("/", ctrl.List)        // GET   /profiles
	g.Get("/me", ctrl.Me)        // GET   /profiles/me
	g.Get("/:id", ctrl.GetByID)  // GET   /profiles/:id
	g.Patch("/:id", ctrl.Patch)  // PATCH /profiles/:id (self; admins via /api/a)
}

// PrincipalAdminRoutes
// Base: /api/a/profiles, same controller, role gate applied by the group.
func PrincipalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := principalController.NewPrincipalController(db)

	g := r.Group("/profiles")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Patch) // role changes allowed here
}

// ProvisioningWebhookRoutes
// Base: /api/webhooks, shared-secret guard, mounted outside the JWT groups.
func ProvisioningWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := principalController.NewProvisionController(db)
	r.Post("/identity", ctrl.IdentityCreated)
}
