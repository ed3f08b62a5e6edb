// file: internals/features/evaluations/dto/evaluation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/evaluations/model"
)

type CreateEvaluationRequest struct {
	EvaluationSubmissionID uuid.UUID `json:"evaluation_submission_id" validate:"required"`
	EvaluationMarks        *int      `json:"evaluation_marks" validate:"required,gte=0,lte=100"`
	EvaluationRemarks      *string   `json:"evaluation_remarks,omitempty" validate:"omitempty,max=2000"`
}

// ToModel stamps the author from the authenticated principal, never from
// the request body.
func (r CreateEvaluationRequest) ToModel(facultyID uuid.UUID) model.EvaluationModel {
	return model.EvaluationModel{
		EvaluationSubmissionID: r.EvaluationSubmissionID,
		EvaluationFacultyID:    facultyID,
		EvaluationMarks:        *r.EvaluationMarks,
		EvaluationRemarks:      r.EvaluationRemarks,
	}
}

type PatchEvaluationRequest struct {
	EvaluationMarks   *int    `json:"evaluation_marks,omitempty" validate:"omitempty,gte=0,lte=100"`
	EvaluationRemarks *string `json:"evaluation_remarks,omitempty" validate:"omitempty,max=2000"`
}

func (p *PatchEvaluationRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if p.EvaluationMarks != nil {
		upd["evaluation_marks"] = *p.EvaluationMarks
	}
	if p.EvaluationRemarks != nil {
		upd["evaluation_remarks"] = *p.EvaluationRemarks
	}
	return upd
}

type EvaluationResponse struct {
	EvaluationID           uuid.UUID `json:"evaluation_id"`
	EvaluationSubmissionID uuid.UUID `json:"evaluation_submission_id"`
	EvaluationFacultyID    uuid.UUID `json:"evaluation_faculty_id"`
	EvaluationMarks        int       `json:"evaluation_marks"`
	EvaluationRemarks      *string   `json:"evaluation_remarks,omitempty"`
	EvaluationCreatedAt    time.Time `json:"evaluation_created_at"`
	EvaluationUpdatedAt    time.Time `json:"evaluation_updated_at"`
}

func FromModel(m *model.EvaluationModel) EvaluationResponse {
	return EvaluationResponse{
		EvaluationID:           m.EvaluationID,
		EvaluationSubmissionID: m.EvaluationSubmissionID,
		EvaluationFacultyID:    m.EvaluationFacultyID,
		EvaluationMarks:        m.EvaluationMarks,
		EvaluationRemarks:      m.EvaluationRemarks,
		EvaluationCreatedAt:    m.EvaluationCreatedAt,
		EvaluationUpdatedAt:    m.EvaluationUpdatedAt,
	}
}

func FromModels(ms []model.EvaluationModel) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
