// file: internals/features/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	/* ============ PK ============ */
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	/* ============ Identity & attributes ============ */
	SubjectName       string  `gorm:"column:subject_name;type:varchar(160);not null" json:"subject_name"`
	SubjectCode       *string `gorm:"column:subject_code;type:varchar(40);uniqueIndex:uq_subjects_code" json:"subject_code,omitempty"`
	SubjectDepartment string  `gorm:"column:subject_department;type:varchar(8);not null;check:chk_subject_department,subject_department IN ('CSE','IT','AIDS');index:idx_subjects_department" json:"subject_department"`
	SubjectDesc       *string `gorm:"column:subject_desc;type:text" json:"subject_desc,omitempty"`

	/* ============ Audit ============ */
	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
