// file: internals/features/authz/evaluator_test.go
package authz

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labrecord_backend/internals/constants"
)

/* =========================
   In-memory relation graph
========================= */

type edge struct{ a, b uuid.UUID }

type fakeSource struct {
	assignments map[edge]bool      // (faculty, subject)
	enrollments map[edge]bool      // (student, subject)
	experiments map[uuid.UUID]uuid.UUID
	submissions map[uuid.UUID][2]uuid.UUID // id → (experiment, student)
	evaluations map[uuid.UUID][2]uuid.UUID // id → (submission, faculty)
	enrollEdges map[uuid.UUID][2]uuid.UUID // id → (student, subject)
	assignEdges map[uuid.UUID][2]uuid.UUID // id → (faculty, subject)
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		assignments: map[edge]bool{},
		enrollments: map[edge]bool{},
		experiments: map[uuid.UUID]uuid.UUID{},
		submissions: map[uuid.UUID][2]uuid.UUID{},
		evaluations: map[uuid.UUID][2]uuid.UUID{},
		enrollEdges: map[uuid.UUID][2]uuid.UUID{},
		assignEdges: map[uuid.UUID][2]uuid.UUID{},
	}
}

func (f *fakeSource) IsFacultyFor(_ context.Context, facultyID, subjectID uuid.UUID) (bool, error) {
	return f.assignments[edge{facultyID, subjectID}], nil
}
func (f *fakeSource) IsStudentFor(_ context.Context, studentID, subjectID uuid.UUID) (bool, error) {
	return f.enrollments[edge{studentID, subjectID}], nil
}
func (f *fakeSource) ExperimentSubject(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	sid, ok := f.experiments[id]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return sid, nil
}
func (f *fakeSource) SubmissionOrigin(_ context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	v, ok := f.submissions[id]
	if !ok {
		return uuid.Nil, uuid.Nil, ErrNotFound
	}
	return v[0], v[1], nil
}
func (f *fakeSource) EvaluationOrigin(_ context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	v, ok := f.evaluations[id]
	if !ok {
		return uuid.Nil, uuid.Nil, ErrNotFound
	}
	return v[0], v[1], nil
}
func (f *fakeSource) EnrollmentEdge(_ context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	v, ok := f.enrollEdges[id]
	if !ok {
		return uuid.Nil, uuid.Nil, ErrNotFound
	}
	return v[0], v[1], nil
}
func (f *fakeSource) AssignmentEdge(_ context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	v, ok := f.assignEdges[id]
	if !ok {
		return uuid.Nil, uuid.Nil, ErrNotFound
	}
	return v[0], v[1], nil
}

/* =========================
   Fixture: stu1 enrolled in CS101, fac1 assigned, exp1 under CS101,
   sub1 by stu1 for exp1, eval1 on sub1 by fac1.
========================= */

type fixture struct {
	src                          *fakeSource
	ev                           *Evaluator
	cs101, other                 uuid.UUID
	exp1                         uuid.UUID
	sub1, eval1                  uuid.UUID
	enr1, asg1                   uuid.UUID
	admin, fac1, fac2, stu1, stu2 Principal
}

func newFixture() *fixture {
	f := &fixture{src: newFakeSource()}
	f.cs101, f.other = uuid.New(), uuid.New()
	f.exp1 = uuid.New()
	f.sub1, f.eval1 = uuid.New(), uuid.New()
	f.enr1, f.asg1 = uuid.New(), uuid.New()

	f.admin = Principal{ID: uuid.New(), Role: constants.RoleAdmin}
	f.fac1 = Principal{ID: uuid.New(), Role: constants.RoleFaculty}
	f.fac2 = Principal{ID: uuid.New(), Role: constants.RoleFaculty}
	f.stu1 = Principal{ID: uuid.New(), Role: constants.RoleStudent}
	f.stu2 = Principal{ID: uuid.New(), Role: constants.RoleStudent}

	f.src.assignments[edge{f.fac1.ID, f.cs101}] = true
	f.src.assignments[edge{f.fac2.ID, f.other}] = true
	f.src.enrollments[edge{f.stu1.ID, f.cs101}] = true

	f.src.experiments[f.exp1] = f.cs101
	f.src.submissions[f.sub1] = [2]uuid.UUID{f.exp1, f.stu1.ID}
	f.src.evaluations[f.eval1] = [2]uuid.UUID{f.sub1, f.fac1.ID}
	f.src.enrollEdges[f.enr1] = [2]uuid.UUID{f.stu1.ID, f.cs101}
	f.src.assignEdges[f.asg1] = [2]uuid.UUID{f.fac1.ID, f.cs101}

	f.ev = NewEvaluator(f.src)
	return f
}

func TestAdminAllowsEveryActionOnEveryKind(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	kinds := []ResourceKind{KindPrincipal, KindSubject, KindExperiment, KindEnrollment, KindAssignment, KindSubmission, KindEvaluation}
	actions := []Action{ActionSelect, ActionInsert, ActionUpdate, ActionDelete}
	for _, k := range kinds {
		for _, a := range actions {
			require.True(t, f.ev.Authorize(ctx, f.admin, a, Resource{Kind: k, ID: uuid.New()}),
				"admin must be allowed %s on %s", a, k)
		}
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	f := newFixture()
	p := Principal{ID: uuid.New(), Role: "registrar"}
	assert.False(t, f.ev.Authorize(context.Background(), p, ActionSelect, Resource{Kind: KindSubject, ID: f.cs101}))
}

func TestFacultyExperimentInsertFollowsAssignmentEdge(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindExperiment, SubjectID: f.cs101}

	// fac2 has no edge to CS101.
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionInsert, res))

	// Edge added: visible on the very next call, no caching lag.
	f.src.assignments[edge{f.fac2.ID, f.cs101}] = true
	assert.True(t, f.ev.Authorize(ctx, f.fac2, ActionInsert, res))

	// Edge removed again.
	delete(f.src.assignments, edge{f.fac2.ID, f.cs101})
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionInsert, res))
}

func TestFacultyExperimentUpdateResolvesSubject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindExperiment, ID: f.exp1}

	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionUpdate, res))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionUpdate, res))
	// delete stays admin-only
	assert.False(t, f.ev.Authorize(ctx, f.fac1, ActionDelete, res))
}

func TestEvaluationVisibilityTwoHop(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindEvaluation, ID: f.eval1}

	// Assigned faculty sees it; faculty of some other subject does not.
	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, res))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionSelect, res))

	// Owning student sees it; an unrelated student does not.
	assert.True(t, f.ev.Authorize(ctx, f.stu1, ActionSelect, res))
	assert.False(t, f.ev.Authorize(ctx, f.stu2, ActionSelect, res))
}

func TestEvaluationInsertRequiresFullChain(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindEvaluation, SubmissionID: f.sub1}

	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionInsert, res))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionInsert, res))
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionInsert, res))

	// Breaking any hop of submission→experiment→subject denies.
	delete(f.src.experiments, f.exp1)
	assert.False(t, f.ev.Authorize(ctx, f.fac1, ActionInsert, res))
}

func TestEvaluationUpdateAuthorOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindEvaluation, ID: f.eval1}

	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionUpdate, res))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionUpdate, res))
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionUpdate, res))
}

func TestStudentEnrollmentSelfOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	own := Resource{Kind: KindEnrollment, SubjectID: f.cs101, OwnerID: f.stu1.ID}
	foreign := Resource{Kind: KindEnrollment, SubjectID: f.cs101, OwnerID: f.stu2.ID}

	assert.True(t, f.ev.Authorize(ctx, f.stu1, ActionInsert, own))
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionInsert, foreign))
	// deletion is admin only
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionDelete, Resource{Kind: KindEnrollment, ID: f.enr1}))
	// faculty assigned to the subject may list its enrollments
	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, Resource{Kind: KindEnrollment, ID: f.enr1}))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionSelect, Resource{Kind: KindEnrollment, ID: f.enr1}))
}

func TestAssignmentVisibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindAssignment, ID: f.asg1}

	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, res))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionSelect, res))
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionSelect, res))
	// only admins create assignment edges
	assert.False(t, f.ev.Authorize(ctx, f.fac1, ActionInsert, Resource{Kind: KindAssignment, SubjectID: f.cs101, OwnerID: f.fac1.ID}))
}

func TestSubmissionOwnership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res := Resource{Kind: KindSubmission, ID: f.sub1}

	assert.True(t, f.ev.Authorize(ctx, f.stu1, ActionSelect, res))
	assert.True(t, f.ev.Authorize(ctx, f.stu1, ActionUpdate, res))
	assert.False(t, f.ev.Authorize(ctx, f.stu2, ActionSelect, res))
	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, res))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionSelect, res))
	// faculty never edit submissions
	assert.False(t, f.ev.Authorize(ctx, f.fac1, ActionUpdate, res))
	// no one deletes submissions through the evaluator but admin
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionDelete, res))
}

func TestFacultySubmissionScopeBySubject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Listing scope given as a subject instead of an experiment.
	bySubject := Resource{Kind: KindSubmission, SubjectID: f.cs101}
	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, bySubject))
	assert.False(t, f.ev.Authorize(ctx, f.fac2, ActionSelect, bySubject))

	// An experiment scope still resolves through the hierarchy and wins
	// over the subject hint.
	both := Resource{Kind: KindSubmission, ExperimentID: f.exp1, SubjectID: f.other}
	assert.True(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, both))

	// No scope at all denies.
	assert.False(t, f.ev.Authorize(ctx, f.fac1, ActionSelect, Resource{Kind: KindSubmission}))
}

func TestProfileUpdateSelfOrAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	self := Resource{Kind: KindPrincipal, ID: f.stu1.ID}
	other := Resource{Kind: KindPrincipal, ID: f.stu2.ID}

	assert.True(t, f.ev.Authorize(ctx, f.stu1, ActionUpdate, self))
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionUpdate, other))
	assert.True(t, f.ev.Authorize(ctx, f.admin, ActionUpdate, other))
	// profiles are readable by any authenticated caller
	assert.True(t, f.ev.Authorize(ctx, f.fac2, ActionSelect, other))
}

func TestDanglingReferencesDeny(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Evaluation whose submission chain is broken.
	orphanEval := uuid.New()
	f.src.evaluations[orphanEval] = [2]uuid.UUID{uuid.New(), f.fac1.ID}
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionSelect, Resource{Kind: KindEvaluation, ID: orphanEval}))

	// Unknown ids deny across the board for non-admins.
	assert.False(t, f.ev.Authorize(ctx, f.fac1, ActionUpdate, Resource{Kind: KindExperiment, ID: uuid.New()}))
	assert.False(t, f.ev.Authorize(ctx, f.stu1, ActionSelect, Resource{Kind: KindSubmission, ID: uuid.New()}))
}
