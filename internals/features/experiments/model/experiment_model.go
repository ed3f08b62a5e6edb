// file: internals/features/experiments/model/experiment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExperimentModel struct {
	/* ============ PK ============ */
	ExperimentID uuid.UUID `gorm:"column:experiment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"experiment_id"`

	/* ============ FK (→ subjects) ============ */
	ExperimentSubjectID uuid.UUID `gorm:"column:experiment_subject_id;type:uuid;not null;index:idx_experiments_subject" json:"experiment_subject_id"`

	/* ============ Attributes ============ */
	ExperimentTitle   string     `gorm:"column:experiment_title;type:varchar(200);not null" json:"experiment_title"`
	ExperimentNumber  *int       `gorm:"column:experiment_number" json:"experiment_number,omitempty"`
	ExperimentDueDate *time.Time `gorm:"column:experiment_due_date;type:timestamptz" json:"experiment_due_date,omitempty"`

	/* ============ Audit ============ */
	ExperimentCreatedAt time.Time      `gorm:"column:experiment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"experiment_created_at"`
	ExperimentUpdatedAt time.Time      `gorm:"column:experiment_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"experiment_updated_at"`
	ExperimentDeletedAt gorm.DeletedAt `gorm:"column:experiment_deleted_at;index" json:"experiment_deleted_at,omitempty"`
}

func (ExperimentModel) TableName() string { return "experiments" }
