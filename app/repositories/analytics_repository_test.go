package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/app/repositories"
)

func TestRevenueGroupsByRequestedPeriod(t *testing.T) {
	for _, tc := range []struct {
		period string
		trunc  string
	}{
		{"day", "DATE_TRUNC('day', created_at)"},
		{"week", "DATE_TRUNC('week', created_at)"},
		{"month", "DATE_TRUNC('month', created_at)"},
		{"bogus", "DATE_TRUNC('month', created_at)"},
	} {
		store := &fakeStore{}
		repo := repositories.NewAnalyticsRepository(store)

		_, err := repo.Revenue(context.Background(), tc.period)
		require.NoError(t, err)

		sel, ok := store.last("select")
		require.True(t, ok)
		assert.Contains(t, sel.sql, "GROUP BY "+tc.trunc, "period %q", tc.period)
		assert.Contains(t, sel.sql, "WHERE status = 'delivered'")
		assert.Empty(t, sel.args, "period must never travel as a bound value")
	}
}

func TestUserActivityBindsCutoff(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewAnalyticsRepository(store)

	_, err := repo.UserActivity(context.Background(), 7)
	require.NoError(t, err)

	sel, _ := store.last("select")
	assert.Contains(t, sel.sql, "created_at >= $1")
	assert.NotContains(t, sel.sql, "INTERVAL")
	assert.Len(t, sel.args, 1)
}
