// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name  string
		p     Paging
		total int64
		count int
		pages int
		next  bool
		prev  bool
	}{
		{"first of many", Paging{Page: 1, PerPage: 20}, 45, 20, 3, true, false},
		{"middle page", Paging{Page: 2, PerPage: 20}, 45, 20, 3, true, true},
		{"last page", Paging{Page: 3, PerPage: 20}, 45, 5, 3, false, true},
		{"empty set", Paging{Page: 1, PerPage: 20}, 0, 0, 0, false, false},
		{"exact fit", Paging{Page: 2, PerPage: 10}, 20, 10, 2, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pg := BuildPagination(tc.p, tc.total, tc.count)
			assert.Equal(t, tc.pages, pg.TotalPages)
			assert.Equal(t, tc.next, pg.HasNext)
			assert.Equal(t, tc.prev, pg.HasPrev)
			assert.Equal(t, tc.count, pg.Count)
			assert.Equal(t, tc.total, pg.Total)
		})
	}
}
