// file: internals/features/evaluations/controller/evaluation_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"labrecord_backend/internals/constants"
	"labrecord_backend/internals/features/authz"
	dto "labrecord_backend/internals/features/evaluations/dto"
	model "labrecord_backend/internals/features/evaluations/model"
	service "labrecord_backend/internals/features/evaluations/service"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type EvaluationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
	Grading   *service.GradingService
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
		Grading:   service.NewGradingService(db),
	}
}

/* =========================
   Handlers
========================= */

// GET /, admins see everything, faculty what they authored or what sits
// in their subjects, students the grades on their own submissions.
func (ctrl *EvaluationController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.EvaluationModel{})

	switch caller.Role {
	case constants.RoleAdmin:
		// unrestricted
	case constants.RoleFaculty:
		q = q.Where(
			"evaluation_faculty_id = ? OR evaluation_submission_id IN (?)",
			caller.ID,
			ctrl.DB.Table("submissions").
				Select("submission_id").
				Joins("JOIN experiments ON experiments.experiment_id = submissions.submission_experiment_id").
				Joins("JOIN assignments ON assignments.assignment_subject_id = experiments.experiment_subject_id").
				Where("assignments.assignment_faculty_id = ?", caller.ID),
		)
	case constants.RoleStudent:
		q = q.Where(
			"evaluation_submission_id IN (?)",
			ctrl.DB.Table("submissions").
				Select("submission_id").
				Where("submission_student_id = ?", caller.ID),
		)
	default:
		return helper.JsonNotFound(c)
	}

	if sid := strings.TrimSpace(c.Query("submission_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission_id")
		}
		q = q.Where("evaluation_submission_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EvaluationModel
	if err := q.Order("evaluation_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Evaluations fetched", dto.FromModels(rows), helper.BuildPagination(pg, total, len(rows)))
}

// GET /:id
func (ctrl *EvaluationController) GetByID(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindEvaluation, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.EvaluationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("evaluation_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Evaluation fetched", dto.FromModel(&row))
}

// POST /, assigned faculty (via the submission's subject) or admin.
func (ctrl *EvaluationController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateEvaluationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionInsert,
		authz.Resource{Kind: authz.KindEvaluation, SubmissionID: body.EvaluationSubmissionID, OwnerID: caller.ID}) {
		return helper.JsonNotFound(c)
	}

	row := body.ToModel(caller.ID)
	if err := ctrl.Grading.Create(c.UserContext(), &row); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicate):
			return helper.JsonError(c, fiber.StatusConflict, "Submission is already evaluated")
		case errors.Is(err, service.ErrSubmissionGone):
			return helper.JsonNotFound(c)
		case errors.Is(err, service.ErrDraft):
			return helper.JsonError(c, fiber.StatusBadRequest, "Submission has not been handed in yet")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Evaluation created", dto.FromModel(&row))
}

// PATCH /:id, author or admin only.
func (ctrl *EvaluationController) Patch(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.PatchEvaluationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionUpdate, authz.Resource{Kind: authz.KindEvaluation, ID: id}) {
		return helper.JsonNotFound(c)
	}

	row, err := ctrl.Grading.Update(c.UserContext(), id, body.ToUpdates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Evaluation updated", dto.FromModel(row))
}

// DELETE /:id (ADMIN), removing the row reverts the derived status of the
// submission back to `submitted`.
func (ctrl *EvaluationController) Delete(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionDelete, authz.Resource{Kind: authz.KindEvaluation, ID: id}) {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("evaluation_id = ?", id).
		Delete(&model.EvaluationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}

	return helper.JsonOK(c, "Evaluation removed", fiber.Map{"evaluation_id": id})
}
