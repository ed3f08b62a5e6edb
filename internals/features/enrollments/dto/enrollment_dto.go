// file: internals/features/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/enrollments/model"
)

type CreateEnrollmentRequest struct {
	// Overridden from the token for student callers; admins may enroll
	// any student.
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentSubjectID uuid.UUID `json:"enrollment_subject_id" validate:"required"`
}

func (r CreateEnrollmentRequest) ToModel() model.EnrollmentModel {
	return model.EnrollmentModel{
		EnrollmentStudentID: r.EnrollmentStudentID,
		EnrollmentSubjectID: r.EnrollmentSubjectID,
	}
}

type EnrollmentResponse struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id"`
	EnrollmentSubjectID uuid.UUID `json:"enrollment_subject_id"`
	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`
}

func FromModel(m *model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:        m.EnrollmentID,
		EnrollmentStudentID: m.EnrollmentStudentID,
		EnrollmentSubjectID: m.EnrollmentSubjectID,
		EnrollmentCreatedAt: m.EnrollmentCreatedAt,
	}
}

func FromModels(ms []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
