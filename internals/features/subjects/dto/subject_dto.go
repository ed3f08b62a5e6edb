// file: internals/features/subjects/dto/subject_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName       string  `json:"subject_name" validate:"required,min=1,max=160"`
	SubjectCode       *string `json:"subject_code,omitempty" validate:"omitempty,min=1,max=40"`
	SubjectDepartment string  `json:"subject_department" validate:"required,oneof=CSE IT AIDS"`
	SubjectDesc       *string `json:"subject_desc,omitempty"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectName:       r.SubjectName,
		SubjectCode:       r.SubjectCode,
		SubjectDepartment: r.SubjectDepartment,
		SubjectDesc:       r.SubjectDesc,
	}
}

type PatchSubjectRequest struct {
	SubjectName       *string `json:"subject_name,omitempty" validate:"omitempty,min=1,max=160"`
	SubjectCode       *string `json:"subject_code,omitempty" validate:"omitempty,min=1,max=40"`
	SubjectDepartment *string `json:"subject_department,omitempty" validate:"omitempty,oneof=CSE IT AIDS"`
	SubjectDesc       *string `json:"subject_desc,omitempty"`
}

func (p *PatchSubjectRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if p.SubjectName != nil {
		upd["subject_name"] = *p.SubjectName
	}
	if p.SubjectCode != nil {
		upd["subject_code"] = *p.SubjectCode
	}
	if p.SubjectDepartment != nil {
		upd["subject_department"] = *p.SubjectDepartment
	}
	if p.SubjectDesc != nil {
		upd["subject_desc"] = *p.SubjectDesc
	}
	return upd
}

type SubjectResponse struct {
	SubjectID         uuid.UUID `json:"subject_id"`
	SubjectName       string    `json:"subject_name"`
	SubjectCode       *string   `json:"subject_code,omitempty"`
	SubjectDepartment string    `json:"subject_department"`
	SubjectDesc       *string   `json:"subject_desc,omitempty"`
	SubjectCreatedAt  time.Time `json:"subject_created_at"`
	SubjectUpdatedAt  time.Time `json:"subject_updated_at"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:         m.SubjectID,
		SubjectName:       m.SubjectName,
		SubjectCode:       m.SubjectCode,
		SubjectDepartment: m.SubjectDepartment,
		SubjectDesc:       m.SubjectDesc,
		SubjectCreatedAt:  m.SubjectCreatedAt,
		SubjectUpdatedAt:  m.SubjectUpdatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
