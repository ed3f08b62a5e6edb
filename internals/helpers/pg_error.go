// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a duplicate-key failure. The
// unique indexes on (student,subject), (faculty,subject),
// (experiment,student) and evaluation.submission_id are the system's only
// concurrency control, so this check decides Conflict vs. 500 everywhere.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	// driver variants that don't unwrap cleanly
	le := strings.ToLower(err.Error())
	return strings.Contains(le, "duplicate key") || strings.Contains(le, "unique constraint")
}
