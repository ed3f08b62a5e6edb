// file: internals/features/assignments/controller/assignment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"labrecord_backend/internals/constants"
	dto "labrecord_backend/internals/features/assignments/dto"
	model "labrecord_backend/internals/features/assignments/model"
	"labrecord_backend/internals/features/authz"
	principalModel "labrecord_backend/internals/features/principals/model"
	subjectModel "labrecord_backend/internals/features/subjects/model"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
	}
}

/* =========================
   Handlers
========================= */

// GET /, admins see everything; faculty only their own edges.
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AssignmentModel{})

	switch caller.Role {
	case constants.RoleAdmin:
		if fid := strings.TrimSpace(c.Query("faculty_id")); fid != "" {
			id, err := uuid.Parse(fid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty_id")
			}
			q = q.Where("assignment_faculty_id = ?", id)
		}
	case constants.RoleFaculty:
		q = q.Where("assignment_faculty_id = ?", caller.ID)
	default:
		return helper.JsonNotFound(c)
	}

	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("assignment_subject_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Assignments fetched", dto.FromModels(rows), helper.BuildPagination(pg, total, len(rows)))
}

// POST / (ADMIN)
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionInsert,
		authz.Resource{Kind: authz.KindAssignment, SubjectID: body.AssignmentSubjectID, OwnerID: body.AssignmentFacultyID}) {
		return helper.JsonNotFound(c)
	}

	// both endpoints of the edge must be live, and the principal must be faculty
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", body.AssignmentSubjectID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonNotFound(c)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&principalModel.PrincipalModel{}).
		Where("principal_id = ? AND principal_role = ?", body.AssignmentFacultyID, constants.RoleFaculty).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonNotFound(c)
	}

	row := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Faculty is already assigned to this subject")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Assignment created", dto.FromModel(&row))
}

// DELETE /:id (ADMIN)
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionDelete, authz.Resource{Kind: authz.KindAssignment, ID: id}) {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("assignment_id = ?", id).
		Delete(&model.AssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}

	return helper.JsonOK(c, "Assignment removed", fiber.Map{"assignment_id": id})
}
