// file: internals/features/evaluations/dto/evaluation_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCreateEvaluationMarksBounds(t *testing.T) {
	v := validator.New()
	subID := uuid.New()

	cases := []struct {
		name  string
		marks *int
		ok    bool
	}{
		{"lower bound", intPtr(0), true},
		{"upper bound", intPtr(100), true},
		{"mid range", intPtr(85), true},
		{"below range", intPtr(-1), false},
		{"above range", intPtr(101), false},
		{"missing", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateEvaluationRequest{
				EvaluationSubmissionID: subID,
				EvaluationMarks:        tc.marks,
			}
			err := v.Struct(&req)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCreateEvaluationAuthorFromCaller(t *testing.T) {
	faculty := uuid.New()
	req := CreateEvaluationRequest{
		EvaluationSubmissionID: uuid.New(),
		EvaluationMarks:        intPtr(72),
	}

	row := req.ToModel(faculty)
	require.Equal(t, faculty, row.EvaluationFacultyID)
	require.Equal(t, req.EvaluationSubmissionID, row.EvaluationSubmissionID)
	require.Equal(t, 72, row.EvaluationMarks)
}

func TestPatchEvaluationToUpdates(t *testing.T) {
	remarks := "Good"
	p := PatchEvaluationRequest{
		EvaluationMarks:   intPtr(90),
		EvaluationRemarks: &remarks,
	}
	upd := p.ToUpdates()
	assert.Equal(t, 90, upd["evaluation_marks"])
	assert.Equal(t, "Good", upd["evaluation_remarks"])

	empty := PatchEvaluationRequest{}
	assert.Empty(t, empty.ToUpdates())
}
