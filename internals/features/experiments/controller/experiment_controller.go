// file: internals/features/experiments/controller/experiment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"labrecord_backend/internals/features/authz"
	dto "labrecord_backend/internals/features/experiments/dto"
	model "labrecord_backend/internals/features/experiments/model"
	subjectModel "labrecord_backend/internals/features/subjects/model"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type ExperimentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
}

func NewExperimentController(db *gorm.DB) *ExperimentController {
	return &ExperimentController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
	}
}

func applySort(q *gorm.DB, sort string) *gorm.DB {
	switch strings.TrimSpace(sort) {
	case "number":
		return q.Order("experiment_number ASC NULLS LAST")
	case "due_date":
		return q.Order("experiment_due_date ASC NULLS LAST")
	case "created_at":
		return q.Order("experiment_created_at ASC")
	case "desc_created_at", "":
		return q.Order("experiment_created_at DESC")
	default:
		return q.Order("experiment_created_at DESC")
	}
}

/* =========================
   Handlers
========================= */

// GET / (any authenticated caller; ?subject_id= filter)
func (ctrl *ExperimentController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindExperiment}) {
		return helper.JsonNotFound(c)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ExperimentModel{})

	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("experiment_subject_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ExperimentModel
	if err := applySort(q, c.Query("sort")).
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Experiments fetched", dto.FromModels(rows), helper.BuildPagination(pg, total, len(rows)))
}

// GET /:id
func (ctrl *ExperimentController) GetByID(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindExperiment, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.ExperimentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "experiment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Experiment fetched", dto.FromModel(&row))
}

// POST / (admin, or faculty assigned to the subject)
func (ctrl *ExperimentController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateExperimentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionInsert,
		authz.Resource{Kind: authz.KindExperiment, SubjectID: body.ExperimentSubjectID}) {
		return helper.JsonNotFound(c)
	}

	// parent liveness, an experiment never dangles from a dead subject
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", body.ExperimentSubjectID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonNotFound(c)
	}

	row := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Experiment created", dto.FromModel(&row))
}

// PATCH /:id (admin, or faculty assigned to the owning subject)
func (ctrl *ExperimentController) Patch(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionUpdate, authz.Resource{Kind: authz.KindExperiment, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.ExperimentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "experiment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchExperimentRequest
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
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Experiment updated", dto.FromModel(&row))
}

// DELETE /:id (ADMIN)
func (ctrl *ExperimentController) Delete(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionDelete, authz.Resource{Kind: authz.KindExperiment, ID: id}) {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("experiment_id = ?", id).
		Delete(&model.ExperimentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}

	return helper.JsonOK(c, "Experiment deleted", fiber.Map{"experiment_id": id})
}
