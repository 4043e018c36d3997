package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryTopicDropsHeadlineViews(t *testing.T) {
	for topic, stale := range staleByTopic {
		assert.Contains(t, stale.keys, "analytics:system", topic)
		assert.Contains(t, stale.keys, "analytics:dashboard", topic)
	}
}

func TestOrderChangesDropRevenueAndCustomerViews(t *testing.T) {
	stale, ok := staleByTopic["orders.changed"]
	require.True(t, ok)

	for _, period := range []string{"day", "week", "month"} {
		assert.Contains(t, stale.keys, "analytics:revenue:"+period)
	}
	assert.Contains(t, stale.patterns, "analytics:orders:*")
	assert.Contains(t, stale.patterns, "analytics:customers:*")
}

func TestWindowedViewsInvalidateByPattern(t *testing.T) {
	// The per-window views (analytics:users:<days> and friends) carry the
	// window in the key, so invalidation must match by pattern.
	assert.Contains(t, staleByTopic["users.changed"].patterns, "analytics:users:*")
	assert.Contains(t, staleByTopic["files.changed"].patterns, "analytics:files:*")
}
