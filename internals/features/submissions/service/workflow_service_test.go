// file: internals/features/submissions/service/workflow_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Two concurrent first writes for the same (experiment, student) resolve as
// one row and one ErrDuplicate; the controller turns the latter into 409 so
// the caller switches to the update path.
func TestDuplicateSubmissionMapsToConflict(t *testing.T) {
	assert.ErrorIs(t, translateCreateError(&pq.Error{Code: "23505", Constraint: "uq_submissions_experiment_student"}), ErrDuplicate)
	assert.ErrorIs(t, translateCreateError(gorm.ErrDuplicatedKey), ErrDuplicate)
}

func TestNonDuplicateCreateErrorsPassThrough(t *testing.T) {
	boom := errors.New("statement timeout")
	assert.Equal(t, boom, translateCreateError(boom))
	assert.NotErrorIs(t, translateCreateError(gorm.ErrRecordNotFound), ErrDuplicate)
}
