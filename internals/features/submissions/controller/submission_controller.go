// file: internals/features/submissions/controller/submission_controller.go
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
	experimentModel "labrecord_backend/internals/features/experiments/model"
	dto "labrecord_backend/internals/features/submissions/dto"
	model "labrecord_backend/internals/features/submissions/model"
	service "labrecord_backend/internals/features/submissions/service"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
	Workflow  *service.WorkflowService
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
		Workflow:  service.NewWorkflowService(db),
	}
}

// evaluatedSet marks which of the given submissions carry an evaluation,
// in one query instead of one per row.
func (ctrl *SubmissionController) evaluatedSet(c *fiber.Ctx, rows []model.SubmissionModel) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].SubmissionID)
	}
	var hit []uuid.UUID
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("evaluations").
		Where("evaluation_submission_id IN ?", ids).
		Pluck("evaluation_submission_id", &hit).Error; err != nil {
		return nil, err
	}
	for _, id := range hit {
		out[id] = true
	}
	return out, nil
}

/* =========================
   Handlers
========================= */

// GET /, admins everything; students their own; faculty the submissions of
// subjects assigned to them (scope via ?experiment_id= or ?subject_id=).
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SubmissionModel{})

	var experimentID uuid.UUID
	if eid := strings.TrimSpace(c.Query("experiment_id")); eid != "" {
		experimentID, err = uuid.Parse(eid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid experiment_id")
		}
		q = q.Where("submission_experiment_id = ?", experimentID)
	}

	var subjectID uuid.UUID
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		subjectID, err = uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Joins("JOIN experiments ON experiments.experiment_id = submissions.submission_experiment_id").
			Where("experiments.experiment_subject_id = ?", subjectID)
	}

	switch caller.Role {
	case constants.RoleAdmin:
		// unrestricted
	case constants.RoleStudent:
		q = q.Where("submission_student_id = ?", caller.ID)
	case constants.RoleFaculty:
		if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect,
			authz.Resource{Kind: authz.KindSubmission, ExperimentID: experimentID, SubjectID: subjectID}) {
			return helper.JsonNotFound(c)
		}
	default:
		return helper.JsonNotFound(c)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SubmissionModel
	if err := q.Order("submission_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	evaluated, err := ctrl.evaluatedSet(c, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	out := make([]dto.SubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i], evaluated[rows[i].SubmissionID]))
	}

	return helper.JsonList(c, "Submissions fetched", out, helper.BuildPagination(pg, total, len(rows)))
}

// GET /:id
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect, authz.Resource{Kind: authz.KindSubmission, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	evaluated, err := ctrl.Workflow.HasEvaluation(c.UserContext(), row.SubmissionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Submission fetched", dto.FromModel(&row, evaluated))
}

// POST / (STUDENT; admins may create on behalf of a student)
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// force ownership onto the caller for student requests
	if caller.Role == constants.RoleStudent {
		body.SubmissionStudentID = caller.ID
	}

	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.ValidLanguage(body.SubmissionLanguage) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown language tag")
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionInsert,
		authz.Resource{Kind: authz.KindSubmission, ExperimentID: body.SubmissionExperimentID, OwnerID: body.SubmissionStudentID}) {
		return helper.JsonNotFound(c)
	}

	// the experiment must be live
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&experimentModel.ExperimentModel{}).
		Where("experiment_id = ?", body.SubmissionExperimentID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonNotFound(c)
	}

	row, err := ctrl.Workflow.Create(c.UserContext(), body)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			return helper.JsonError(c, fiber.StatusConflict, "A submission for this experiment already exists, update it instead")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Submission created", dto.FromModel(row, false))
}

// PATCH /:id (owning student while unevaluated; admin any time)
func (ctrl *SubmissionController) Patch(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionUpdate, authz.Resource{Kind: authz.KindSubmission, ID: id}) {
		return helper.JsonNotFound(c)
	}

	var row model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonNotFound(c)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.SubmissionLanguage != nil && !constants.ValidLanguage(*body.SubmissionLanguage) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown language tag")
	}

	updated, err := ctrl.Workflow.Update(c.UserContext(), &row, body, caller.Role == constants.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocked):
			return helper.JsonError(c, fiber.StatusConflict, "Submission is already evaluated")
		case errors.Is(err, service.ErrBadTransition):
			return helper.JsonError(c, fiber.StatusBadRequest, "Status may only advance")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	evaluated, err := ctrl.Workflow.HasEvaluation(c.UserContext(), updated.SubmissionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Submission updated", dto.FromModel(updated, evaluated))
}
