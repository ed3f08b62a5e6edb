// file: internals/features/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labrecord_backend/internals/features/authz"
	dto "labrecord_backend/internals/features/subjects/dto"
	model "labrecord_backend/internals/features/subjects/model"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
	}
}

func applySort(q *gorm.DB, sort string) *gorm.DB {
	switch strings.TrimSpace(sort) {
	case "name":
		return q.Order("subject_name ASC")
	case "desc_name":
		return q.Order("subject_name DESC")
	case "created_at":
		return q.Order("subject_created_at ASC")
	case "desc_created_at", "":
		return q.Order("subject_created_at DESC")
	default:
		return q.Order("subject_created_at DESC")
	}
}

/* =========================
   Handlers
========================= */

// GET / (any authenticated caller)
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindSubject}) {
		return helper.JsonNotFound(c)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})

	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("subject_department = ?", dept)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("subject_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SubjectModel
	if err := applySort(q, c.Query("sort")).
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Subjects fetched", dto.FromModels(rows), helper.BuildPagination(pg, total, len(rows)))
}

// GET /:id
func (ctrl *SubjectController) GetByID(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindSubject, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.SubjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Subject fetched", dto.FromModel(&row))
}

// POST / (ADMIN)
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionInsert, authz.Resource{Kind: authz.KindSubject}) {
		return helper.JsonNotFound(c)
	}

	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A subject with this code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Subject created", dto.FromModel(&row))
}

// PATCH /:id (ADMIN)
func (ctrl *SubjectController) Patch(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionUpdate, authz.Resource{Kind: authz.KindSubject, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.SubjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	upd := body.ToUpdates()
	if len(upd) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(&row))
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&row).Updates(upd).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A subject with this code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Subject updated", dto.FromModel(&row))
}

// DELETE /:id (ADMIN)
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionDelete, authz.Resource{Kind: authz.KindSubject, ID: id}) {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("subject_id = ?", id).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}

	return helper.JsonOK(c, "Subject deleted", fiber.Map{"subject_id": id})
}
