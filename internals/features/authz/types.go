// file: internals/features/authz/types.go
package authz

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Action is the closed set of operations the policy table knows about.
type Action string

const (
	ActionSelect Action = "select"
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ResourceKind is the closed set of protected resource types.
type ResourceKind string

const (
	KindPrincipal  ResourceKind = "principal"
	KindSubject    ResourceKind = "subject"
	KindExperiment ResourceKind = "experiment"
	KindEnrollment ResourceKind = "enrollment"
	KindAssignment ResourceKind = "assignment"
	KindSubmission ResourceKind = "submission"
	KindEvaluation ResourceKind = "evaluation"
)

// Principal is the caller snapshot, loaded from the registry row on every
// request. Role is authoritative here, never a token claim.
type Principal struct {
	ID   uuid.UUID
	Role string
}

// Resource identifies the target row, or the row about to be inserted.
// ID is Nil on insert; the scope fields carry what the caller already
// knows and the evaluator resolves the rest through the relation graph.
type Resource struct {
	Kind ResourceKind

	ID uuid.UUID

	// Insert/list scope hints.
	SubjectID    uuid.UUID // experiment / enrollment / assignment scope
	ExperimentID uuid.UUID // submission scope
	SubmissionID uuid.UUID // evaluation scope

	// Principal the row/edge belongs to (student for enrollment/submission,
	// faculty for assignment/evaluation).
	OwnerID uuid.UUID
}

// ErrNotFound is returned by a RelationSource when a reference cannot be
// resolved. The evaluator turns it into a deny, indistinguishable from a
// failed predicate.
var ErrNotFound = errors.New("authz: relation not found")

// RelationSource is the read side of the relation graph. Implementations
// must hit the authoritative store on every call, no caching, so edge
// changes are visible to the very next Authorize.
type RelationSource interface {
	IsFacultyFor(ctx context.Context, facultyID, subjectID uuid.UUID) (bool, error)
	IsStudentFor(ctx context.Context, studentID, subjectID uuid.UUID) (bool, error)

	// Hierarchy walks. Each returns ErrNotFound on a dangling reference.
	ExperimentSubject(ctx context.Context, experimentID uuid.UUID) (uuid.UUID, error)
	SubmissionOrigin(ctx context.Context, submissionID uuid.UUID) (experimentID, studentID uuid.UUID, err error)
	EvaluationOrigin(ctx context.Context, evaluationID uuid.UUID) (submissionID, facultyID uuid.UUID, err error)
	EnrollmentEdge(ctx context.Context, enrollmentID uuid.UUID) (studentID, subjectID uuid.UUID, err error)
	AssignmentEdge(ctx context.Context, assignmentID uuid.UUID) (facultyID, subjectID uuid.UUID, err error)
}
