// file: internals/features/evaluations/model/evaluation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationModel records one grading verdict per submission. The unique
// index on evaluation_submission_id is the at-most-one guarantee; a
// submission counts as "evaluated" exactly when a row exists here.
//
// Rows are hard-deleted. A soft-deleted evaluation would still have to be
// excluded from the derived-status query, so there is nothing to gain from
// keeping the tombstone.
type EvaluationModel struct {
	/* ============ PK ============ */
	EvaluationID uuid.UUID `gorm:"column:evaluation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"evaluation_id"`

	/* ============ FKs ============ */
	EvaluationSubmissionID uuid.UUID `gorm:"column:evaluation_submission_id;type:uuid;not null;uniqueIndex:uq_evaluations_submission" json:"evaluation_submission_id"`
	EvaluationFacultyID    uuid.UUID `gorm:"column:evaluation_faculty_id;type:uuid;not null;index:idx_evaluations_faculty" json:"evaluation_faculty_id"`

	/* ============ Attributes ============ */
	EvaluationMarks   int     `gorm:"column:evaluation_marks;not null;check:chk_evaluations_marks,evaluation_marks >= 0 AND evaluation_marks <= 100" json:"evaluation_marks"`
	EvaluationRemarks *string `gorm:"column:evaluation_remarks;type:text" json:"evaluation_remarks,omitempty"`

	/* ============ Audit ============ */
	EvaluationCreatedAt time.Time `gorm:"column:evaluation_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time `gorm:"column:evaluation_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"evaluation_updated_at"`
}

func (EvaluationModel) TableName() string { return "evaluations" }
