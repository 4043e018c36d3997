package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/query"
)

var userSortColumns = []string{"created_at", "updated_at", "first_name", "last_name", "email", "role"}

func TestNewSortAcceptsWhitelistedColumn(t *testing.T) {
	s, err := query.NewSort("created_at", "asc", userSortColumns)
	require.NoError(t, err)

	assert.Equal(t, "created_at", s.Column)
	assert.Equal(t, "ASC", s.Direction)
}

func TestNewSortRejectsUnlistedColumn(t *testing.T) {
	_, err := query.NewSort("password", "asc", userSortColumns)
	assert.ErrorIs(t, err, query.ErrInvalidSortColumn)

	_, err = query.NewSort("email; DROP TABLE users", "asc", userSortColumns)
	assert.ErrorIs(t, err, query.ErrInvalidSortColumn)
}

func TestNewSortDefaultsToDescending(t *testing.T) {
	for _, dir := range []string{"", "desc", "DESC", "sideways", "descending"} {
		s, err := query.NewSort("email", dir, userSortColumns)
		require.NoError(t, err)
		assert.Equal(t, "DESC", s.Direction, "direction %q", dir)
	}
}

func TestOrderByQualifiesWithPrefix(t *testing.T) {
	s, err := query.NewSort("total_amount", "ASC", []string{"total_amount"})
	require.NoError(t, err)

	assert.Equal(t, "ORDER BY o.total_amount ASC", s.OrderBy("o"))
	assert.Equal(t, "ORDER BY total_amount ASC", s.OrderBy(""))
}
