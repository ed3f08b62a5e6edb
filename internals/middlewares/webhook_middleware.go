package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"labrecord_backend/internals/configs"
)

// WebhookAuth guards provider-to-provider endpoints (identity provisioning)
// with a shared-secret header instead of a user JWT.
func WebhookAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		want := configs.IdentityWebhookToken
		got := c.Get("X-Webhook-Token")
		if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid webhook token")
		}
		return c.Next()
	}
}
