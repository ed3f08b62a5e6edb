// file: internals/features/principals/controller/principal_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labrecord_backend/internals/constants"
	"labrecord_backend/internals/features/authz"
	dto "labrecord_backend/internals/features/principals/dto"
	model "labrecord_backend/internals/features/principals/model"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type PrincipalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
}

func NewPrincipalController(db *gorm.DB) *PrincipalController {
	return &PrincipalController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
	}
}

/* =========================
   Handlers
========================= */

// GET /profiles (any authenticated caller)
func (ctrl *PrincipalController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindPrincipal}) {
		return helper.JsonNotFound(c)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.PrincipalModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("principal_role = ?", role)
	}
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("principal_department = ?", dept)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PrincipalModel
	if err := q.Order("principal_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Profiles fetched", dto.FromModels(rows), helper.BuildPagination(pg, total, len(rows)))
}

// GET /profiles/me
func (ctrl *PrincipalController) Me(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row model.PrincipalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "principal_id = ?", caller.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Profile fetched", dto.FromModel(&row))
}

// GET /profiles/:id
func (ctrl *PrincipalController) GetByID(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindPrincipal, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.PrincipalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "principal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Profile fetched", dto.FromModel(&row))
}

// PATCH /profiles/:id (self or admin)
func (ctrl *PrincipalController) Patch(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionUpdate, authz.Resource{Kind: authz.KindPrincipal, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var body dto.PatchPrincipalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// role changes stay on the admin surface
	if body.PrincipalRole != nil && caller.Role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may change roles")
	}

	var row model.PrincipalModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "principal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	upd := body.ToUpdates()
	if len(upd) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(&row))
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&row).Updates(upd).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Profile updated", dto.FromModel(&row))
}
