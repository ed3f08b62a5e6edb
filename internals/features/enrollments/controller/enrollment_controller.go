// file: internals/features/enrollments/controller/enrollment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"labrecord_backend/internals/constants"
	"labrecord_backend/internals/features/authz"
	dto "labrecord_backend/internals/features/enrollments/dto"
	model "labrecord_backend/internals/features/enrollments/model"
	principalModel "labrecord_backend/internals/features/principals/model"
	subjectModel "labrecord_backend/internals/features/subjects/model"
	helper "labrecord_backend/internals/helpers"
	helperAuth "labrecord_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Authz     *authz.Evaluator
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
		Authz:     authz.NewEvaluator(authz.NewGormSource(db)),
	}
}

/* =========================
   Handlers
========================= */

// GET /, admins see everything; students their own edges; faculty the
// edges of subjects they are assigned to (?subject_id= required for them).
func (ctrl *EnrollmentController) List(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.EnrollmentModel{})

	var subjectID uuid.UUID
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		subjectID, err = uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("enrollment_subject_id = ?", subjectID)
	}

	switch caller.Role {
	case constants.RoleAdmin:
		// no scope restriction
	case constants.RoleStudent:
		q = q.Where("enrollment_student_id = ?", caller.ID)
	case constants.RoleFaculty:
		if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionSelect,
			authz.Resource{Kind: authz.KindEnrollment, SubjectID: subjectID}) {
			return helper.JsonNotFound(c)
		}
	default:
		return helper.JsonNotFound(c)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Enrollments fetched", dto.FromModels(rows), helper.BuildPagination(pg, total, len(rows)))
}

// POST /, a student enrolls themself; an admin enrolls anyone.
func (ctrl *EnrollmentController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// force the edge onto the caller for student requests
	if caller.Role == constants.RoleStudent {
		body.EnrollmentStudentID = caller.ID
	}

	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionInsert,
		authz.Resource{Kind: authz.KindEnrollment, SubjectID: body.EnrollmentSubjectID, OwnerID: body.EnrollmentStudentID}) {
		return helper.JsonNotFound(c)
	}

	// both endpoints of the edge must be live
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", body.EnrollmentSubjectID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonNotFound(c)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&principalModel.PrincipalModel{}).
		Where("principal_id = ? AND principal_role = ?", body.EnrollmentStudentID, constants.RoleStudent).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonNotFound(c)
	}

	row := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student is already enrolled in this subject")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Enrolled", dto.FromModel(&row))
}

// DELETE /:id (ADMIN)
func (ctrl *EnrollmentController) Delete(c *fiber.Ctx) error {
	caller, err := helperAuth.CurrentPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ctrl.Authz.Authorize(c.UserContext(), caller, authz.ActionDelete, authz.Resource{Kind: authz.KindEnrollment, ID: id}) {
		return helper.JsonNotFound(c)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("enrollment_id = ?", id).
		Delete(&model.EnrollmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonNotFound(c)
	}

	return helper.JsonOK(c, "Enrollment removed", fiber.Map{"enrollment_id": id})
}
