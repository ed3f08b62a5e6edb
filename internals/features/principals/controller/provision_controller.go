// file: internals/features/principals/controller/provision_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "labrecord_backend/internals/features/principals/dto"
	service "labrecord_backend/internals/features/principals/service"
	helper "labrecord_backend/internals/helpers"
)

// ProvisionController consumes the identity provider's "principal created"
// events. The route is guarded by the webhook shared secret, not a user JWT.
type ProvisionController struct {
	Validator *validator.Validate
	Service   *service.ProvisioningService
}

func NewProvisionController(db *gorm.DB) *ProvisionController {
	return &ProvisionController{
		Validator: validator.New(),
		Service:   service.NewProvisioningService(db),
	}
}

// POST /webhooks/identity
func (ctrl *ProvisionController) IdentityCreated(c *fiber.Ctx) error {
	var ev dto.IdentityCreatedEvent
	if err := c.BodyParser(&ev); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&ev); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row, err := ctrl.Service.Provision(c.UserContext(), &ev)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			// the identifier space is provider-unique; a duplicate means a
			// replayed delivery, not a second identity
			return helper.JsonError(c, fiber.StatusConflict, "Principal already provisioned")
		}
		log.Printf("[ERROR] provisioning %s: %v", ev.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Principal provisioned", dto.FromModel(row))
}
