// file: internals/features/evaluations/service/grading_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// A second evaluation for the same submission must surface as ErrDuplicate
// (409 at the controller), regardless of how the driver reports the
// unique-index hit. Exactly one of two concurrent grades wins the insert;
// the loser takes this path.
func TestDuplicateEvaluationMapsToConflict(t *testing.T) {
	assert.ErrorIs(t, translateCreateError(&pq.Error{Code: "23505", Constraint: "uq_evaluations_submission"}), ErrDuplicate)
	assert.ErrorIs(t, translateCreateError(gorm.ErrDuplicatedKey), ErrDuplicate)
}

func TestNonDuplicateCreateErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset by peer")
	assert.Equal(t, boom, translateCreateError(boom))

	assert.NotErrorIs(t, translateCreateError(&pq.Error{Code: "23503"}), ErrDuplicate)
	assert.NotErrorIs(t, translateCreateError(gorm.ErrRecordNotFound), ErrDuplicate)
}
