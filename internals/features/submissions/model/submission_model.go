// file: internals/features/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Stored states only carry caller intent. "evaluated" is never stored: it is
// derived from the existence of an Evaluation row, so the status can never
// race the evaluation insert or go stale after a partial failure.
type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"

	// derived only, see EffectiveStatus
	SubmissionStatusEvaluated SubmissionStatus = "evaluated"
)

// CanTransition encodes the stored-state machine: status only advances.
func CanTransition(from, to SubmissionStatus) bool {
	switch from {
	case SubmissionStatusDraft:
		return to == SubmissionStatusDraft || to == SubmissionStatusSubmitted
	case SubmissionStatusSubmitted:
		return to == SubmissionStatusSubmitted
	}
	return false
}

// EffectiveStatus folds the evaluation existence into the reported status.
func EffectiveStatus(stored SubmissionStatus, hasEvaluation bool) SubmissionStatus {
	if hasEvaluation {
		return SubmissionStatusEvaluated
	}
	return stored
}

type SubmissionModel struct {
	/* ============ PK ============ */
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`

	/* ============ Edge (experiment, student), unique pair ============ */
	SubmissionExperimentID uuid.UUID `gorm:"column:submission_experiment_id;type:uuid;not null;uniqueIndex:uq_submissions_experiment_student;index:idx_submissions_experiment" json:"submission_experiment_id"`
	SubmissionStudentID    uuid.UUID `gorm:"column:submission_student_id;type:uuid;not null;uniqueIndex:uq_submissions_experiment_student;index:idx_submissions_student" json:"submission_student_id"`

	/* ============ Payload ============ */
	SubmissionCode     string  `gorm:"column:submission_code;type:text;not null" json:"submission_code"`
	SubmissionLanguage string  `gorm:"column:submission_language;type:varchar(24);not null" json:"submission_language"`
	SubmissionFileURL  *string `gorm:"column:submission_file_url;type:text" json:"submission_file_url,omitempty"`

	SubmissionStatus SubmissionStatus `gorm:"column:submission_status;type:varchar(16);not null;default:'submitted';check:chk_submission_status,submission_status IN ('draft','submitted')" json:"submission_status"`

	SubmissionSubmittedAt *time.Time `gorm:"column:submission_submitted_at;type:timestamptz" json:"submission_submitted_at,omitempty"`

	/* ============ Audit ============ */
	SubmissionCreatedAt time.Time `gorm:"column:submission_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"column:submission_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
