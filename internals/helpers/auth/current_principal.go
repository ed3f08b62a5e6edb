// file: internals/helpers/auth/current_principal.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"labrecord_backend/internals/features/authz"
)

// CurrentPrincipal rebuilds the caller snapshot from locals set by the auth
// middleware (which read the registry row, not the token). Controllers pass
// the snapshot explicitly into every evaluator and workflow call.
func CurrentPrincipal(c *fiber.Ctx) (authz.Principal, error) {
	idStr, _ := c.Locals("principal_id").(string)
	role, _ := c.Locals("principal_role").(string)

	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil || id == uuid.Nil || role == "" {
		return authz.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing caller identity")
	}
	return authz.Principal{ID: id, Role: role}, nil
}

// ParseUUIDParam parses a uuid path parameter.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}
