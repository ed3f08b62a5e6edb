// file: internals/features/authz/policy.go
package authz

import (
	"context"
)

/* =========================
   admin
========================= */

// adminPolicy: every action on every resource type. Principal inserts still
// flow through the provisioning trigger, which bypasses the evaluator.
type adminPolicy struct{}

func (adminPolicy) can(ctx context.Context, src RelationSource, caller Principal, action Action, res Resource) (bool, error) {
	return true, nil
}

/* =========================
   faculty
========================= */

type facultyPolicy struct{}

func (facultyPolicy) can(ctx context.Context, src RelationSource, caller Principal, action Action, res Resource) (bool, error) {
	switch res.Kind {

	case KindPrincipal:
		switch action {
		case ActionSelect:
			return true, nil
		case ActionUpdate:
			return caller.ID == res.ID, nil
		}
		return false, nil

	case KindSubject:
		return action == ActionSelect, nil

	case KindExperiment:
		switch action {
		case ActionSelect:
			return true, nil
		case ActionInsert, ActionUpdate:
			sid, err := subjectOf(ctx, src, res)
			if err != nil {
				return false, err
			}
			return src.IsFacultyFor(ctx, caller.ID, sid)
		}
		return false, nil

	case KindEnrollment:
		if action != ActionSelect {
			return false, nil
		}
		sid, err := subjectOf(ctx, src, res)
		if err != nil {
			return false, err
		}
		return src.IsFacultyFor(ctx, caller.ID, sid)

	case KindAssignment:
		if action != ActionSelect {
			return false, nil
		}
		owner, err := ownerOf(ctx, src, res)
		if err != nil {
			return false, err
		}
		return caller.ID == owner, nil

	case KindSubmission:
		if action != ActionSelect {
			return false, nil
		}
		sid, err := subjectOf(ctx, src, res)
		if err != nil {
			return false, err
		}
		return src.IsFacultyFor(ctx, caller.ID, sid)

	case KindEvaluation:
		switch action {
		case ActionSelect:
			// Author always; otherwise any faculty assigned to the subject
			// resolved through the full submission→experiment→subject chain.
			owner, err := ownerOf(ctx, src, res)
			if err == nil && caller.ID == owner {
				return true, nil
			}
			sid, err := subjectOf(ctx, src, res)
			if err != nil {
				return false, err
			}
			return src.IsFacultyFor(ctx, caller.ID, sid)
		case ActionInsert:
			sid, err := subjectOf(ctx, src, res)
			if err != nil {
				return false, err
			}
			return src.IsFacultyFor(ctx, caller.ID, sid)
		case ActionUpdate:
			owner, err := ownerOf(ctx, src, res)
			if err != nil {
				return false, err
			}
			return caller.ID == owner, nil
		}
		return false, nil
	}
	return false, nil
}

/* =========================
   student
========================= */

type studentPolicy struct{}

func (studentPolicy) can(ctx context.Context, src RelationSource, caller Principal, action Action, res Resource) (bool, error) {
	switch res.Kind {

	case KindPrincipal:
		switch action {
		case ActionSelect:
			return true, nil
		case ActionUpdate:
			return caller.ID == res.ID, nil
		}
		return false, nil

	case KindSubject, KindExperiment:
		return action == ActionSelect, nil

	case KindEnrollment:
		switch action {
		case ActionSelect, ActionInsert:
			// Students only see and create their own enrollment edges.
			owner, err := ownerOf(ctx, src, res)
			if err != nil {
				return false, err
			}
			return caller.ID == owner, nil
		}
		return false, nil

	case KindAssignment:
		return false, nil

	case KindSubmission:
		switch action {
		case ActionSelect, ActionInsert, ActionUpdate:
			owner, err := ownerOf(ctx, src, res)
			if err != nil {
				return false, err
			}
			return caller.ID == owner, nil
		}
		return false, nil

	case KindEvaluation:
		if action != ActionSelect {
			return false, nil
		}
		stu, err := submissionStudentOf(ctx, src, res)
		if err != nil {
			return false, err
		}
		return caller.ID == stu, nil
	}
	return false, nil
}
