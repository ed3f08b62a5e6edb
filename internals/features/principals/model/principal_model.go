// file: internals/features/principals/model/principal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PrincipalModel mirrors the identity provider's user space. The id comes
// from the provider (no column default) and is unique per identity, so the
// provisioning trigger needs no idempotency layer.
type PrincipalModel struct {
	/* ============ PK ============ */
	PrincipalID uuid.UUID `gorm:"column:principal_id;type:uuid;primaryKey" json:"principal_id"`

	/* ============ Identity & role ============ */
	PrincipalFullName   string  `gorm:"column:principal_full_name;type:varchar(120);not null;default:''" json:"principal_full_name"`
	PrincipalRole       string  `gorm:"column:principal_role;type:varchar(16);not null;default:'student';check:chk_principal_role,principal_role IN ('admin','faculty','student');index:idx_principals_role" json:"principal_role"`
	PrincipalDepartment *string `gorm:"column:principal_department;type:varchar(8);check:chk_principal_department,principal_department IS NULL OR principal_department IN ('CSE','IT','AIDS')" json:"principal_department,omitempty"`

	// Raw provisioning payload from the identity provider, kept for audit.
	PrincipalMetadata datatypes.JSONMap `gorm:"column:principal_metadata;type:jsonb" json:"principal_metadata,omitempty"`

	/* ============ Audit ============ */
	PrincipalCreatedAt time.Time      `gorm:"column:principal_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"principal_created_at"`
	PrincipalUpdatedAt time.Time      `gorm:"column:principal_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"principal_updated_at"`
	PrincipalDeletedAt gorm.DeletedAt `gorm:"column:principal_deleted_at;index" json:"principal_deleted_at,omitempty"`
}

func (PrincipalModel) TableName() string { return "principals" }
