// file: internals/features/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel is the (faculty, subject) relation edge granting authoring
// rights over the subject's experiments and evaluations. Hard-deleted for
// the same reason as enrollments.
type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`

	AssignmentFacultyID uuid.UUID `gorm:"column:assignment_faculty_id;type:uuid;not null;uniqueIndex:uq_assignments_faculty_subject;index:idx_assignments_faculty" json:"assignment_faculty_id"`
	AssignmentSubjectID uuid.UUID `gorm:"column:assignment_subject_id;type:uuid;not null;uniqueIndex:uq_assignments_faculty_subject;index:idx_assignments_subject" json:"assignment_subject_id"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"assignment_created_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
