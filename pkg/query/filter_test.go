package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/query"
)

func TestFilterBuilderEmptyYieldsTautology(t *testing.T) {
	f := query.NewFilterBuilder(query.NewSequencer())

	assert.Equal(t, "1=1", f.Clause())
	assert.Empty(t, f.Args())
}

func TestFilterBuilderSkipsUnsetValues(t *testing.T) {
	f := query.NewFilterBuilder(query.NewSequencer())
	f.Equal("role", "")
	f.Equal("customer_id", (*uint)(nil))
	f.Min("price", (*float64)(nil))
	f.Search("", "name")

	assert.Equal(t, "1=1", f.Clause())
	assert.Empty(t, f.Args())
}

func TestFilterBuilderNumbersPlaceholdersSequentially(t *testing.T) {
	price := 9.99
	f := query.NewFilterBuilder(query.NewSequencer())
	f.Equal("status", "pending")
	f.Min("total_amount", &price)
	f.Max("total_amount", 100.0)

	assert.Equal(t, "status = $1 AND total_amount >= $2 AND total_amount <= $3", f.Clause())
	assert.Equal(t, []interface{}{"pending", 9.99, 100.0}, f.Args())
}

func TestFilterBuilderSearchSharesOnePlaceholder(t *testing.T) {
	f := query.NewFilterBuilder(query.NewSequencer())
	f.Equal("category", "tools")
	f.Search("kit", "name", "description")

	assert.Equal(t, "category = $1 AND (name ILIKE $2 OR description ILIKE $2)", f.Clause())
	// One bound value serves both columns.
	assert.Equal(t, []interface{}{"tools", "%kit%"}, f.Args())
}

func TestFilterBuilderArgsMatchPlaceholderCount(t *testing.T) {
	min := 1.0
	max := 50.0
	active := true
	f := query.NewFilterBuilder(query.NewSequencer())
	f.Equal("is_active", &active)
	f.Equal("category", "books")
	f.Search("go", "name", "description")
	f.Min("price", &min)
	f.Max("price", &max)

	require.Equal(t, 5, f.Len())
	assert.Len(t, f.Args(), 5)
	assert.Contains(t, f.Clause(), "$5")
	assert.NotContains(t, f.Clause(), "$6")
}

func TestFilterBuilderContinuesFromSequencer(t *testing.T) {
	seq := query.NewSequencer()
	seq.Next() // $1 consumed elsewhere

	f := query.NewFilterBuilder(seq)
	f.Equal("role", "admin")

	assert.Equal(t, "role = $2", f.Clause())
}
