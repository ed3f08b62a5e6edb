// file: internals/helpers/pg_error_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"gorm translated wrapped", fmt.Errorf("create submission: %w", gorm.ErrDuplicatedKey), true},
		{"pq unique violation", &pq.Error{Code: "23505", Constraint: "uq_submissions_experiment_student"}, true},
		{"pq unique violation wrapped", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"pq foreign key violation", &pq.Error{Code: "23503"}, false},
		{"pq not null violation", &pq.Error{Code: "23502"}, false},
		{"driver text duplicate key", errors.New(`pq: duplicate key value violates unique constraint "uq_enrollments_student_subject"`), true},
		{"driver text unique constraint", errors.New("UNIQUE constraint failed: evaluations.evaluation_submission_id"), true},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}
