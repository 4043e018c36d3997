package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchbase/launchbase/pkg/query"
)

func TestNewPageClamping(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 20, 1, 20},
		{"limit over cap", 2, 500, 2, 100},
		{"in range", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := query.NewPage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPageOffset(t *testing.T) {
	p := query.NewPage(3, 10)
	assert.Equal(t, 20, p.Offset())
}

func TestMetaEmptyResultSet(t *testing.T) {
	m := query.NewPage(1, 10).Meta(0)

	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}

func TestMetaMiddlePage(t *testing.T) {
	m := query.NewPage(2, 10).Meta(25)

	assert.Equal(t, int64(25), m.Total)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)
}

func TestMetaLastPage(t *testing.T) {
	m := query.NewPage(3, 10).Meta(25)

	assert.False(t, m.HasNext)
	assert.True(t, m.HasPrev)
}

func TestLimitOffsetFollowsFilters(t *testing.T) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("status", "pending")

	fragment, args := query.NewPage(2, 5).LimitOffset(seq)

	assert.Equal(t, "LIMIT $2 OFFSET $3", fragment)
	assert.Equal(t, []interface{}{5, 5}, args)
}

// A list request with one filter plus paging binds values in clause order:
// the filter arg first, then limit, then offset.
func TestListStatementValueOrder(t *testing.T) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("status", "pending")

	page := query.NewPage(2, 5)
	fragment, pageArgs := page.LimitOffset(seq)

	args := append(f.Args(), pageArgs...)
	assert.Equal(t, []interface{}{"pending", 5, 5}, args)
	assert.Equal(t, "status = $1", f.Clause())
	assert.Equal(t, "LIMIT $2 OFFSET $3", fragment)
}
