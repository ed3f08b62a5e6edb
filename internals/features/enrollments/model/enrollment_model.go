// file: internals/features/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentModel is the (student, subject) relation edge. Hard-deleted:
// a removed edge must deny on the very next policy evaluation, and the pair
// unique index must allow re-enrollment after an admin removal.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollments_student_subject;index:idx_enrollments_student" json:"enrollment_student_id"`
	EnrollmentSubjectID uuid.UUID `gorm:"column:enrollment_subject_id;type:uuid;not null;uniqueIndex:uq_enrollments_student_subject;index:idx_enrollments_subject" json:"enrollment_subject_id"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"enrollment_created_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
