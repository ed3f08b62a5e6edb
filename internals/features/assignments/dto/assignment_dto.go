// file: internals/features/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/assignments/model"
)

type CreateAssignmentRequest struct {
	AssignmentFacultyID uuid.UUID `json:"assignment_faculty_id" validate:"required"`
	AssignmentSubjectID uuid.UUID `json:"assignment_subject_id" validate:"required"`
}

func (r CreateAssignmentRequest) ToModel() model.AssignmentModel {
	return model.AssignmentModel{
		AssignmentFacultyID: r.AssignmentFacultyID,
		AssignmentSubjectID: r.AssignmentSubjectID,
	}
}

type AssignmentResponse struct {
	AssignmentID        uuid.UUID `json:"assignment_id"`
	AssignmentFacultyID uuid.UUID `json:"assignment_faculty_id"`
	AssignmentSubjectID uuid.UUID `json:"assignment_subject_id"`
	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
}

func FromModel(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:        m.AssignmentID,
		AssignmentFacultyID: m.AssignmentFacultyID,
		AssignmentSubjectID: m.AssignmentSubjectID,
		AssignmentCreatedAt: m.AssignmentCreatedAt,
	}
}

func FromModels(ms []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
