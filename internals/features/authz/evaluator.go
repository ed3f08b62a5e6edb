// file: internals/features/authz/evaluator.go
package authz

import (
	"context"

	"github.com/google/uuid"

	"labrecord_backend/internals/constants"
)

// Evaluator computes allow/deny for (principal, action, resource). Pure and
// side-effect-free: every call re-reads the relation graph through the
// RelationSource, so an edge removed a millisecond ago already denies.
type Evaluator struct {
	src RelationSource
}

func NewEvaluator(src RelationSource) *Evaluator {
	return &Evaluator{src: src}
}

// Authorize never returns an error. Unknown roles, unknown kinds and
// unresolved references all evaluate to deny, least privilege by default.
func (e *Evaluator) Authorize(ctx context.Context, caller Principal, action Action, res Resource) bool {
	pol, ok := rolePolicies[caller.Role]
	if !ok {
		return false
	}
	allowed, err := pol.can(ctx, e.src, caller, action, res)
	if err != nil {
		return false
	}
	return allowed
}

// rolePolicy is one closed implementation per role so the action×resource
// table stays exhaustive and exhaustively testable.
type rolePolicy interface {
	can(ctx context.Context, src RelationSource, caller Principal, action Action, res Resource) (bool, error)
}

var rolePolicies = map[string]rolePolicy{
	constants.RoleAdmin:   adminPolicy{},
	constants.RoleFaculty: facultyPolicy{},
	constants.RoleStudent: studentPolicy{},
}

/* =========================
   Chain resolution
========================= */

// subjectOf resolves the owning Subject for any resource, walking the
// hierarchy as far as needed (the Evaluation rules need the full
// Evaluation→Submission→Experiment→Subject chain).
func subjectOf(ctx context.Context, src RelationSource, res Resource) (uuid.UUID, error) {
	switch res.Kind {
	case KindSubject:
		if res.ID != uuid.Nil {
			return res.ID, nil
		}
		return res.SubjectID, nil

	case KindExperiment, KindEnrollment, KindAssignment:
		if res.ID != uuid.Nil {
			switch res.Kind {
			case KindExperiment:
				return src.ExperimentSubject(ctx, res.ID)
			case KindEnrollment:
				_, sid, err := src.EnrollmentEdge(ctx, res.ID)
				return sid, err
			default:
				_, sid, err := src.AssignmentEdge(ctx, res.ID)
				return sid, err
			}
		}
		if res.SubjectID == uuid.Nil {
			return uuid.Nil, ErrNotFound
		}
		return res.SubjectID, nil

	case KindSubmission:
		expID := res.ExperimentID
		if res.ID != uuid.Nil {
			var err error
			expID, _, err = src.SubmissionOrigin(ctx, res.ID)
			if err != nil {
				return uuid.Nil, err
			}
		}
		if expID == uuid.Nil {
			// list scope given as a subject directly
			if res.SubjectID == uuid.Nil {
				return uuid.Nil, ErrNotFound
			}
			return res.SubjectID, nil
		}
		return src.ExperimentSubject(ctx, expID)

	case KindEvaluation:
		subID := res.SubmissionID
		if res.ID != uuid.Nil {
			var err error
			subID, _, err = src.EvaluationOrigin(ctx, res.ID)
			if err != nil {
				return uuid.Nil, err
			}
		}
		if subID == uuid.Nil {
			return uuid.Nil, ErrNotFound
		}
		expID, _, err := src.SubmissionOrigin(ctx, subID)
		if err != nil {
			return uuid.Nil, err
		}
		return src.ExperimentSubject(ctx, expID)
	}
	return uuid.Nil, ErrNotFound
}

// ownerOf resolves the principal a row/edge belongs to.
func ownerOf(ctx context.Context, src RelationSource, res Resource) (uuid.UUID, error) {
	if res.ID == uuid.Nil {
		if res.OwnerID == uuid.Nil {
			return uuid.Nil, ErrNotFound
		}
		return res.OwnerID, nil
	}
	switch res.Kind {
	case KindPrincipal:
		return res.ID, nil
	case KindEnrollment:
		stu, _, err := src.EnrollmentEdge(ctx, res.ID)
		return stu, err
	case KindAssignment:
		fac, _, err := src.AssignmentEdge(ctx, res.ID)
		return fac, err
	case KindSubmission:
		_, stu, err := src.SubmissionOrigin(ctx, res.ID)
		return stu, err
	case KindEvaluation:
		_, fac, err := src.EvaluationOrigin(ctx, res.ID)
		return fac, err
	}
	return uuid.Nil, ErrNotFound
}

// submissionStudentOf resolves the owning student of the Submission an
// Evaluation belongs to (first hop of the evaluation chain).
func submissionStudentOf(ctx context.Context, src RelationSource, res Resource) (uuid.UUID, error) {
	subID := res.SubmissionID
	if res.ID != uuid.Nil {
		var err error
		subID, _, err = src.EvaluationOrigin(ctx, res.ID)
		if err != nil {
			return uuid.Nil, err
		}
	}
	if subID == uuid.Nil {
		return uuid.Nil, ErrNotFound
	}
	_, stu, err := src.SubmissionOrigin(ctx, subID)
	return stu, err
}
