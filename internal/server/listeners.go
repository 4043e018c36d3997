package server

import (
	"context"

	"github.com/launchbase/launchbase/pkg/cache"
	"github.com/launchbase/launchbase/pkg/event"
	"github.com/launchbase/launchbase/pkg/logger"
)

// staleSet names the cached analytics views a change topic invalidates:
// exact keys for the fixed views, glob patterns for views parameterised by
// window or limit (analytics:users:<days>, analytics:customers:<limit>, ...).
type staleSet struct {
	keys     []string
	patterns []string
}

// staleByTopic maps each <entity>.changed topic to the views it goes stale.
// Every topic drops the headline views; the rest follows which tables each
// query reads.
var staleByTopic = map[string]staleSet{
	"users.changed": {
		keys:     []string{"analytics:system", "analytics:dashboard"},
		patterns: []string{"analytics:users:*", "analytics:customers:*"},
	},
	"products.changed": {
		keys: []string{
			"analytics:system", "analytics:dashboard",
			"analytics:products", "analytics:categories",
		},
	},
	"orders.changed": {
		keys: []string{
			"analytics:system", "analytics:dashboard",
			"analytics:products", "analytics:categories",
			"analytics:revenue:day", "analytics:revenue:week", "analytics:revenue:month",
		},
		patterns: []string{"analytics:orders:*", "analytics:customers:*"},
	},
	"files.changed": {
		keys:     []string{"analytics:system", "analytics:dashboard"},
		patterns: []string{"analytics:files:*"},
	},
}

// registerListeners subscribes the cache-invalidation hooks. Services fire
// <entity>.changed after every successful write; the affected analytics
// views are dropped so dashboards pick the change up before the TTL would
// have expired them.
func registerListeners() {
	for topic, stale := range staleByTopic {
		stale := stale
		event.Listen(topic, func(payload interface{}) {
			ctx := context.Background()
			if err := cache.Del(ctx, stale.keys...); err != nil {
				logger.Warn("cache invalidation failed", "error", err)
			}
			for _, pattern := range stale.patterns {
				if err := cache.DelPattern(ctx, pattern); err != nil {
					logger.Warn("cache invalidation failed", "pattern", pattern, "error", err)
				}
			}
		})
	}
}
