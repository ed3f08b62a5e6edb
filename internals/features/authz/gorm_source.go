// file: internals/features/authz/gorm_source.go
package authz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSource resolves the relation graph straight from the authoritative
// tables. No caching layer on purpose: the policy contract requires edge
// changes to be visible on the very next call.
type GormSource struct {
	DB *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{DB: db}
}

func (s *GormSource) IsFacultyFor(ctx context.Context, facultyID, subjectID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("assignments").
		Where("assignment_faculty_id = ? AND assignment_subject_id = ?", facultyID, subjectID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *GormSource) IsStudentFor(ctx context.Context, studentID, subjectID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("enrollments").
		Where("enrollment_student_id = ? AND enrollment_subject_id = ?", studentID, subjectID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *GormSource) ExperimentSubject(ctx context.Context, experimentID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		ExperimentSubjectID uuid.UUID
	}
	err := s.DB.WithContext(ctx).
		Table("experiments").
		Select("experiment_subject_id").
		Where("experiment_id = ? AND experiment_deleted_at IS NULL", experimentID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, mapNotFound(err)
	}
	return row.ExperimentSubjectID, nil
}

func (s *GormSource) SubmissionOrigin(ctx context.Context, submissionID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var row struct {
		SubmissionExperimentID uuid.UUID
		SubmissionStudentID    uuid.UUID
	}
	err := s.DB.WithContext(ctx).
		Table("submissions").
		Select("submission_experiment_id, submission_student_id").
		Where("submission_id = ?", submissionID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, uuid.Nil, mapNotFound(err)
	}
	return row.SubmissionExperimentID, row.SubmissionStudentID, nil
}

func (s *GormSource) EvaluationOrigin(ctx context.Context, evaluationID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var row struct {
		EvaluationSubmissionID uuid.UUID
		EvaluationFacultyID    uuid.UUID
	}
	err := s.DB.WithContext(ctx).
		Table("evaluations").
		Select("evaluation_submission_id, evaluation_faculty_id").
		Where("evaluation_id = ?", evaluationID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, uuid.Nil, mapNotFound(err)
	}
	return row.EvaluationSubmissionID, row.EvaluationFacultyID, nil
}

func (s *GormSource) EnrollmentEdge(ctx context.Context, enrollmentID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var row struct {
		EnrollmentStudentID uuid.UUID
		EnrollmentSubjectID uuid.UUID
	}
	err := s.DB.WithContext(ctx).
		Table("enrollments").
		Select("enrollment_student_id, enrollment_subject_id").
		Where("enrollment_id = ?", enrollmentID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, uuid.Nil, mapNotFound(err)
	}
	return row.EnrollmentStudentID, row.EnrollmentSubjectID, nil
}

func (s *GormSource) AssignmentEdge(ctx context.Context, assignmentID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var row struct {
		AssignmentFacultyID uuid.UUID
		AssignmentSubjectID uuid.UUID
	}
	err := s.DB.WithContext(ctx).
		Table("assignments").
		Select("assignment_faculty_id, assignment_subject_id").
		Where("assignment_id = ?", assignmentID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, uuid.Nil, mapNotFound(err)
	}
	return row.AssignmentFacultyID, row.AssignmentSubjectID, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
