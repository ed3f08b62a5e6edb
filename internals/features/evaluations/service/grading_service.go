// file: internals/features/evaluations/service/grading_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "labrecord_backend/internals/features/evaluations/model"
	submissionModel "labrecord_backend/internals/features/submissions/model"
	helper "labrecord_backend/internals/helpers"
)

var (
	// ErrDuplicate: an evaluation already exists for the submission. The
	// unique index is the arbiter, so two concurrent grades resolve as one
	// success and one of these.
	ErrDuplicate = errors.New("evaluation already exists for this submission")

	// ErrSubmissionGone: the target submission does not exist.
	ErrSubmissionGone = errors.New("submission not found")

	// ErrDraft: the submission has not been handed in yet.
	ErrDraft = errors.New("submission is still a draft")
)

// GradingService owns evaluation writes. Marking a submission "evaluated"
// is not a write at all, readers derive it from row existence.
type GradingService struct {
	DB *gorm.DB
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{DB: db}
}

// Create inserts the single evaluation for a submission. Precondition
// checks read the submission first, but the uniqueness guarantee comes
// from the index, not from the read.
func (s *GradingService) Create(ctx context.Context, row *model.EvaluationModel) error {
	var sub submissionModel.SubmissionModel
	if err := s.DB.WithContext(ctx).
		Where("submission_id = ?", row.EvaluationSubmissionID).
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionGone
		}
		return err
	}
	if sub.SubmissionStatus == submissionModel.SubmissionStatusDraft {
		return ErrDraft
	}

	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return translateCreateError(err)
	}
	return nil
}

// translateCreateError maps a duplicate-key failure on the submission
// unique index to ErrDuplicate; anything else passes through untouched.
func translateCreateError(err error) error {
	if helper.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Update applies a partial patch to an existing evaluation and reloads it.
func (s *GradingService) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.EvaluationModel, error) {
	var row model.EvaluationModel
	if err := s.DB.WithContext(ctx).
		Where("evaluation_id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).
			Model(&row).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &row, nil
}
