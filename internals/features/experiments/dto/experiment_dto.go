// file: internals/features/experiments/dto/experiment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "labrecord_backend/internals/features/experiments/model"
)

type CreateExperimentRequest struct {
	ExperimentSubjectID uuid.UUID  `json:"experiment_subject_id" validate:"required"`
	ExperimentTitle     string     `json:"experiment_title" validate:"required,min=1,max=200"`
	ExperimentNumber    *int       `json:"experiment_number,omitempty" validate:"omitempty,gte=1"`
	ExperimentDueDate   *time.Time `json:"experiment_due_date,omitempty"`
}

func (r CreateExperimentRequest) ToModel() model.ExperimentModel {
	return model.ExperimentModel{
		ExperimentSubjectID: r.ExperimentSubjectID,
		ExperimentTitle:     r.ExperimentTitle,
		ExperimentNumber:    r.ExperimentNumber,
		ExperimentDueDate:   r.ExperimentDueDate,
	}
}

type PatchExperimentRequest struct {
	ExperimentTitle   *string    `json:"experiment_title,omitempty" validate:"omitempty,min=1,max=200"`
	ExperimentNumber  *int       `json:"experiment_number,omitempty" validate:"omitempty,gte=1"`
	ExperimentDueDate *time.Time `json:"experiment_due_date,omitempty"`
}

func (p *PatchExperimentRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if p.ExperimentTitle != nil {
		upd["experiment_title"] = *p.ExperimentTitle
	}
	if p.ExperimentNumber != nil {
		upd["experiment_number"] = *p.ExperimentNumber
	}
	if p.ExperimentDueDate != nil {
		upd["experiment_due_date"] = *p.ExperimentDueDate
	}
	return upd
}

type ExperimentResponse struct {
	ExperimentID        uuid.UUID  `json:"experiment_id"`
	ExperimentSubjectID uuid.UUID  `json:"experiment_subject_id"`
	ExperimentTitle     string     `json:"experiment_title"`
	ExperimentNumber    *int       `json:"experiment_number,omitempty"`
	ExperimentDueDate   *time.Time `json:"experiment_due_date,omitempty"`
	ExperimentCreatedAt time.Time  `json:"experiment_created_at"`
	ExperimentUpdatedAt time.Time  `json:"experiment_updated_at"`
}

func FromModel(m *model.ExperimentModel) ExperimentResponse {
	return ExperimentResponse{
		ExperimentID:        m.ExperimentID,
		ExperimentSubjectID: m.ExperimentSubjectID,
		ExperimentTitle:     m.ExperimentTitle,
		ExperimentNumber:    m.ExperimentNumber,
		ExperimentDueDate:   m.ExperimentDueDate,
		ExperimentCreatedAt: m.ExperimentCreatedAt,
		ExperimentUpdatedAt: m.ExperimentUpdatedAt,
	}
}

func FromModels(ms []model.ExperimentModel) []ExperimentResponse {
	out := make([]ExperimentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
