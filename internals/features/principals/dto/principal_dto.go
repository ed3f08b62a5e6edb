// file: internals/features/principals/dto/principal_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/principals/model"
)

/* =========================================================
   PROVISIONING (identity-provider webhook)
========================================================= */

// IdentitycreatedEvent: one per new identity, consumed once.
type IdentityCreatedEvent struct {
	ID       uuid.UUID        `json:"id" validate:"required"`
	Metadata IdentityMetadata `json:"metadata"`
}

type IdentityMetadata struct {
	FullName   *string `json:"full_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

/* =========================================================
   PATCH DTO
========================================================= */

type PatchPrincipalRequest struct {
	PrincipalFullName   *string `json:"principal_full_name,omitempty" validate:"omitempty,min=1,max=120"`
	PrincipalDepartment *string `json:"principal_department,omitempty" validate:"omitempty,oneof=CSE IT AIDS"`
	// Role changes go through the admin surface only; controllers reject
	// this field for non-admin callers.
	PrincipalRole *string `json:"principal_role,omitempty" validate:"omitempty,oneof=admin faculty student"`
}

func (p *PatchPrincipalRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if p.PrincipalFullName != nil {
		upd["principal_full_name"] = *p.PrincipalFullName
	}
	if p.PrincipalDepartment != nil {
		upd["principal_department"] = *p.PrincipalDepartment
	}
	if p.PrincipalRole != nil {
		upd["principal_role"] = *p.PrincipalRole
	}
	return upd
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type PrincipalResponse struct {
	PrincipalID         uuid.UUID `json:"principal_id"`
	PrincipalFullName   string    `json:"principal_full_name"`
	PrincipalRole       string    `json:"principal_role"`
	PrincipalDepartment *string   `json:"principal_department,omitempty"`
	PrincipalCreatedAt  time.Time `json:"principal_created_at"`
	PrincipalUpdatedAt  time.Time `json:"principal_updated_at"`
}

func FromModel(m *model.PrincipalModel) PrincipalResponse {
	return PrincipalResponse{
		PrincipalID:         m.PrincipalID,
		PrincipalFullName:   m.PrincipalFullName,
		PrincipalRole:       m.PrincipalRole,
		PrincipalDepartment: m.PrincipalDepartment,
		PrincipalCreatedAt:  m.PrincipalCreatedAt,
		PrincipalUpdatedAt:  m.PrincipalUpdatedAt,
	}
}

func FromModels(ms []model.PrincipalModel) []PrincipalResponse {
	out := make([]PrincipalResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
