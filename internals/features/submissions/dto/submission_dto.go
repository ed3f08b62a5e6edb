// file: internals/features/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/submissions/model"
)

/* =========================================================
   CREATE DTO
========================================================= */

type CreateSubmissionRequest struct {
	SubmissionExperimentID uuid.UUID `json:"submission_experiment_id" validate:"required"`
	// Forced to the caller for student requests.
	SubmissionStudentID uuid.UUID `json:"submission_student_id" validate:"required"`

	SubmissionCode     string  `json:"submission_code" validate:"required"`
	SubmissionLanguage string  `json:"submission_language" validate:"required"`
	SubmissionFileURL  *string `json:"submission_file_url,omitempty" validate:"omitempty,url"`

	// Optional: "draft" keeps the work private until submitted.
	SubmissionStatus *model.SubmissionStatus `json:"submission_status,omitempty" validate:"omitempty,oneof=draft submitted"`
}

func (r CreateSubmissionRequest) ToModel() model.SubmissionModel {
	status := model.SubmissionStatusSubmitted
	if r.SubmissionStatus != nil {
		status = *r.SubmissionStatus
	}
	return model.SubmissionModel{
		SubmissionExperimentID: r.SubmissionExperimentID,
		SubmissionStudentID:    r.SubmissionStudentID,
		SubmissionCode:         r.SubmissionCode,
		SubmissionLanguage:     r.SubmissionLanguage,
		SubmissionFileURL:      r.SubmissionFileURL,
		SubmissionStatus:       status,
	}
}

/* =========================================================
   PATCH DTO (resubmission)
========================================================= */

type PatchSubmissionRequest struct {
	SubmissionCode     *string                 `json:"submission_code,omitempty"`
	SubmissionLanguage *string                 `json:"submission_language,omitempty"`
	SubmissionFileURL  *string                 `json:"submission_file_url,omitempty" validate:"omitempty,url"`
	SubmissionStatus   *model.SubmissionStatus `json:"submission_status,omitempty" validate:"omitempty,oneof=draft submitted"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type SubmissionResponse struct {
	SubmissionID           uuid.UUID  `json:"submission_id"`
	SubmissionExperimentID uuid.UUID  `json:"submission_experiment_id"`
	SubmissionStudentID    uuid.UUID  `json:"submission_student_id"`
	SubmissionCode         string     `json:"submission_code"`
	SubmissionLanguage     string     `json:"submission_language"`
	SubmissionFileURL      *string    `json:"submission_file_url,omitempty"`
	SubmissionSubmittedAt  *time.Time `json:"submission_submitted_at,omitempty"`
	SubmissionCreatedAt    time.Time  `json:"submission_created_at"`
	SubmissionUpdatedAt    time.Time  `json:"submission_updated_at"`

	// Derived: "evaluated" when an Evaluation row exists.
	SubmissionStatus model.SubmissionStatus `json:"submission_status"`
}

func FromModel(m *model.SubmissionModel, hasEvaluation bool) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionExperimentID: m.SubmissionExperimentID,
		SubmissionStudentID:    m.SubmissionStudentID,
		SubmissionCode:         m.SubmissionCode,
		SubmissionLanguage:     m.SubmissionLanguage,
		SubmissionFileURL:      m.SubmissionFileURL,
		SubmissionSubmittedAt:  m.SubmissionSubmittedAt,
		SubmissionCreatedAt:    m.SubmissionCreatedAt,
		SubmissionUpdatedAt:    m.SubmissionUpdatedAt,
		SubmissionStatus:       model.EffectiveStatus(m.SubmissionStatus, hasEvaluation),
	}
}
