// file: internals/features/executor/controller/executor_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"labrecord_backend/internals/configs"
	"labrecord_backend/internals/constants"
	dto "labrecord_backend/internals/features/executor/dto"
	service "labrecord_backend/internals/features/executor/service"
	helper "labrecord_backend/internals/helpers"
)

type ExecutorController struct {
	Validator *validator.Validate
	Executor  *service.ExecutorService
}

func NewExecutorController() *ExecutorController {
	return &ExecutorController{
		Validator: validator.New(),
		Executor:  service.NewExecutorService(configs.ExecutorBaseURL, configs.ExecutorAPIKey),
	}
}

// POST /run, forwards code to the remote runner and relays the result.
// Any authenticated principal may run code; no rows are touched.
func (ctrl *ExecutorController) Run(c *fiber.Ctx) error {
	var body dto.RunRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.ValidLanguage(body.Language) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported language")
	}

	out, err := ctrl.Executor.Run(c.UserContext(), body)
	if err != nil {
		var ue *service.UpstreamError
		if errors.As(err, &ue) {
			return helper.JsonError(c, fiber.StatusBadGateway, ue.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Execution finished", out)
}
