package services

import (
	"context"
	"fmt"
	"time"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/cache"
	"github.com/launchbase/launchbase/pkg/fault"
)

// analyticsTTL keeps reporting queries off the hot path. Five minutes of
// staleness is acceptable for dashboards.
const analyticsTTL = 5 * time.Minute

type AnalyticsService struct {
	analytics *repositories.AnalyticsRepository
}

func NewAnalyticsService(analytics *repositories.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// cached runs fetch on a cache miss and stores the result under key.
// Cache failures are swallowed; the data still comes back.
func cached[T any](ctx context.Context, key string, fetch func() (T, error)) (T, error) {
	var out T
	if cache.Get(ctx, key, &out) {
		return out, nil
	}

	out, err := fetch()
	if err != nil {
		return out, err
	}

	_ = cache.Set(ctx, key, out, analyticsTTL)
	return out, nil
}

func (s *AnalyticsService) SystemStats(ctx context.Context) (models.SystemStats, error) {
	return cached(ctx, "analytics:system", func() (models.SystemStats, error) {
		return s.analytics.SystemStats(ctx)
	})
}

func (s *AnalyticsService) UserActivity(ctx context.Context, days int) ([]models.UserActivityRow, error) {
	days = clampDays(days)
	return cached(ctx, fmt.Sprintf("analytics:users:%d", days), func() ([]models.UserActivityRow, error) {
		return s.analytics.UserActivity(ctx, days)
	})
}

func (s *AnalyticsService) OrderAnalytics(ctx context.Context, days int) ([]models.OrderAnalyticsRow, error) {
	days = clampDays(days)
	return cached(ctx, fmt.Sprintf("analytics:orders:%d", days), func() ([]models.OrderAnalyticsRow, error) {
		return s.analytics.OrderAnalytics(ctx, days)
	})
}

func (s *AnalyticsService) Revenue(ctx context.Context, period string) ([]models.RevenueRow, error) {
	switch period {
	case "":
		period = "month"
	case "day", "week", "month":
	default:
		return nil, fault.Invalid("period", "period must be day, week or month")
	}
	return cached(ctx, "analytics:revenue:"+period, func() ([]models.RevenueRow, error) {
		return s.analytics.Revenue(ctx, period)
	})
}

func (s *AnalyticsService) ProductPerformance(ctx context.Context) ([]models.ProductPerformanceRow, error) {
	return cached(ctx, "analytics:products", func() ([]models.ProductPerformanceRow, error) {
		return s.analytics.ProductPerformance(ctx)
	})
}

func (s *AnalyticsService) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformanceRow, error) {
	return cached(ctx, "analytics:categories", func() ([]models.CategoryPerformanceRow, error) {
		return s.analytics.CategoryPerformance(ctx)
	})
}

func (s *AnalyticsService) TopCustomers(ctx context.Context, limit int) ([]models.TopCustomerRow, error) {
	return cached(ctx, fmt.Sprintf("analytics:customers:%d", limit), func() ([]models.TopCustomerRow, error) {
		return s.analytics.TopCustomers(ctx, limit)
	})
}

func (s *AnalyticsService) FileActivity(ctx context.Context, days int) ([]models.FileActivityRow, error) {
	days = clampDays(days)
	return cached(ctx, fmt.Sprintf("analytics:files:%d", days), func() ([]models.FileActivityRow, error) {
		return s.analytics.FileActivity(ctx, days)
	})
}

// Dashboard bundles the headline numbers with recent activity in one call.
func (s *AnalyticsService) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	return cached(ctx, "analytics:dashboard", func() (models.DashboardSummary, error) {
		stats, err := s.analytics.SystemStats(ctx)
		if err != nil {
			return models.DashboardSummary{}, err
		}
		orders, err := s.analytics.RecentOrders(ctx, 5)
		if err != nil {
			return models.DashboardSummary{}, err
		}
		users, err := s.analytics.RecentUsers(ctx, 5)
		if err != nil {
			return models.DashboardSummary{}, err
		}
		products, err := s.analytics.TopProducts(ctx, 5)
		if err != nil {
			return models.DashboardSummary{}, err
		}
		return models.DashboardSummary{
			SystemStats:  stats,
			RecentOrders: orders,
			RecentUsers:  users,
			TopProducts:  products,
		}, nil
	})
}

func clampDays(days int) int {
	if days < 1 || days > 365 {
		return 30
	}
	return days
}
