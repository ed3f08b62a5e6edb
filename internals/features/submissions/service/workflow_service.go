// file: internals/features/submissions/service/workflow_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "labrecord_backend/internals/features/submissions/dto"
	model "labrecord_backend/internals/features/submissions/model"
	helper "labrecord_backend/internals/helpers"
)

// Workflow errors, mapped to the HTTP taxonomy by the controller.
var (
	// ErrDuplicate: a submission for (experiment, student) already exists;
	// the caller must switch to the update path.
	ErrDuplicate = errors.New("submission already exists")
	// ErrLocked: an evaluation exists, the submission is frozen.
	ErrLocked = errors.New("submission already evaluated")
	// ErrBadTransition: status may only advance.
	ErrBadTransition = errors.New("invalid status transition")
)

// WorkflowService enforces the submission state machine. Uniqueness is left
// to the DB constraint, two concurrent first writes resolve as one row and
// one ErrDuplicate, with no pessimistic locking.
type WorkflowService struct {
	DB *gorm.DB
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{DB: db}
}

// HasEvaluation is the derivation behind the "evaluated" status.
func (s *WorkflowService) HasEvaluation(ctx context.Context, submissionID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("evaluations").
		Where("evaluation_submission_id = ?", submissionID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create is the absent→draft/submitted transition.
func (s *WorkflowService) Create(ctx context.Context, req dto.CreateSubmissionRequest) (*model.SubmissionModel, error) {
	row := req.ToModel()
	if row.SubmissionStatus == model.SubmissionStatusSubmitted {
		now := time.Now()
		row.SubmissionSubmittedAt = &now
	}

	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateCreateError(err)
	}
	return &row, nil
}

// translateCreateError maps a duplicate-key failure on the
// (experiment, student) unique index to ErrDuplicate.
func translateCreateError(err error) error {
	if helper.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Update handles draft→submitted and submitted→submitted (resubmission).
// adminOverride lets an admin edit even after evaluation; students are
// locked out the moment an Evaluation row exists.
func (s *WorkflowService) Update(ctx context.Context, row *model.SubmissionModel, req dto.PatchSubmissionRequest, adminOverride bool) (*model.SubmissionModel, error) {
	if !adminOverride {
		evaluated, err := s.HasEvaluation(ctx, row.SubmissionID)
		if err != nil {
			return nil, err
		}
		if evaluated {
			return nil, ErrLocked
		}
	}

	upd := map[string]any{}
	if req.SubmissionCode != nil {
		upd["submission_code"] = *req.SubmissionCode
	}
	if req.SubmissionLanguage != nil {
		upd["submission_language"] = *req.SubmissionLanguage
	}
	if req.SubmissionFileURL != nil {
		upd["submission_file_url"] = *req.SubmissionFileURL
	}
	if req.SubmissionStatus != nil {
		if !model.CanTransition(row.SubmissionStatus, *req.SubmissionStatus) && !adminOverride {
			return nil, ErrBadTransition
		}
		upd["submission_status"] = *req.SubmissionStatus
		if *req.SubmissionStatus == model.SubmissionStatusSubmitted && row.SubmissionSubmittedAt == nil {
			upd["submission_submitted_at"] = time.Now()
		}
	}

	if len(upd) == 0 {
		return row, nil
	}
	if err := s.DB.WithContext(ctx).Model(row).Updates(upd).Error; err != nil {
		return nil, err
	}
	return row, nil
}
