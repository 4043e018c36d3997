package repositories

import (
	"context"
	"time"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/database"
)

// AnalyticsRepository runs the fixed aggregate queries. Unlike the entity
// repositories nothing here is dynamic except a bound cutoff date, so the
// SQL is written out in full.
type AnalyticsRepository struct {
	store database.Store
}

func NewAnalyticsRepository(store database.Store) *AnalyticsRepository {
	return &AnalyticsRepository{store: store}
}

// cutoff returns the bound date for a trailing window of days.
func cutoff(days int) time.Time {
	if days <= 0 {
		days = 30
	}
	return time.Now().AddDate(0, 0, -days)
}

// SystemStats counts rows across every table in one round trip.
func (r *AnalyticsRepository) SystemStats(ctx context.Context) (models.SystemStats, error) {
	var stats models.SystemStats
	err := r.store.Get(ctx, &stats, `SELECT
		(SELECT COUNT(*) FROM users) AS total_users,
		(SELECT COUNT(*) FROM products) AS total_products,
		(SELECT COUNT(*) FROM orders) AS total_orders,
		(SELECT COUNT(*) FROM files) AS total_files,
		(SELECT COUNT(*) FROM users WHERE created_at >= $1) AS new_users_30d,
		(SELECT COUNT(*) FROM products WHERE created_at >= $1) AS new_products_30d,
		(SELECT COUNT(*) FROM orders WHERE created_at >= $1) AS new_orders_30d,
		(SELECT COUNT(*) FROM files WHERE created_at >= $1) AS new_files_30d`,
		cutoff(30))
	return stats, err
}

// UserActivity returns daily registration counts over a trailing window.
func (r *AnalyticsRepository) UserActivity(ctx context.Context, days int) ([]models.UserActivityRow, error) {
	var rows []models.UserActivityRow
	err := r.store.Select(ctx, &rows, `SELECT
		DATE(created_at) AS date,
		COUNT(*) AS new_users,
		COUNT(CASE WHEN role = 'admin' THEN 1 END) AS new_admins
	FROM users
	WHERE created_at >= $1
	GROUP BY DATE(created_at)
	ORDER BY date DESC`, cutoff(days))
	return rows, err
}

// OrderAnalytics returns daily order flow over a trailing window.
func (r *AnalyticsRepository) OrderAnalytics(ctx context.Context, days int) ([]models.OrderAnalyticsRow, error) {
	var rows []models.OrderAnalyticsRow
	err := r.store.Select(ctx, &rows, `SELECT
		DATE(o.created_at) AS date,
		COUNT(o.id) AS total_orders,
		COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		COALESCE(AVG(o.total_amount), 0) AS avg_order_value,
		COUNT(DISTINCT o.customer_id) AS unique_customers,
		COUNT(CASE WHEN o.status = 'delivered' THEN 1 END) AS delivered_orders,
		COUNT(CASE WHEN o.status = 'pending' THEN 1 END) AS pending_orders,
		COUNT(CASE WHEN o.status = 'cancelled' THEN 1 END) AS cancelled_orders
	FROM orders o
	WHERE o.created_at >= $1
	GROUP BY DATE(o.created_at)
	ORDER BY date DESC`, cutoff(days))
	return rows, err
}

// Revenue returns up to twelve periods of delivered revenue. period is one
// of "day", "week", "month"; anything else falls back to month.
func (r *AnalyticsRepository) Revenue(ctx context.Context, period string) ([]models.RevenueRow, error) {
	// period selects between three fixed statements; it is never
	// interpolated from caller input.
	var groupBy string
	switch period {
	case "day":
		groupBy = "DATE_TRUNC('day', created_at)"
	case "week":
		groupBy = "DATE_TRUNC('week', created_at)"
	default:
		groupBy = "DATE_TRUNC('month', created_at)"
	}

	var rows []models.RevenueRow
	err := r.store.Select(ctx, &rows, `SELECT
		`+groupBy+` AS period,
		COUNT(*) AS total_orders,
		COALESCE(SUM(total_amount), 0) AS total_revenue,
		COALESCE(AVG(total_amount), 0) AS avg_order_value,
		COUNT(DISTINCT customer_id) AS unique_customers
	FROM orders
	WHERE status = 'delivered'
	GROUP BY `+groupBy+`
	ORDER BY period DESC
	LIMIT 12`)
	return rows, err
}

// ProductPerformance ranks the top twenty products by revenue.
func (r *AnalyticsRepository) ProductPerformance(ctx context.Context) ([]models.ProductPerformanceRow, error) {
	var rows []models.ProductPerformanceRow
	err := r.store.Select(ctx, &rows, `SELECT
		p.id, p.name, p.category, p.price, p.is_active,
		COUNT(o.id) AS total_orders,
		COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		COALESCE(AVG(o.total_amount), 0) AS avg_order_value,
		p.created_at,
		u.first_name AS creator_name,
		u.last_name AS creator_last_name
	FROM products p
	LEFT JOIN orders o ON p.id = o.product_id
	LEFT JOIN users u ON p.creator_id = u.id
	GROUP BY p.id, p.name, p.category, p.price, p.is_active, p.created_at, u.first_name, u.last_name
	ORDER BY total_revenue DESC
	LIMIT 20`)
	return rows, err
}

// CategoryPerformance aggregates every category by revenue.
func (r *AnalyticsRepository) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformanceRow, error) {
	var rows []models.CategoryPerformanceRow
	err := r.store.Select(ctx, &rows, `SELECT
		p.category,
		COUNT(DISTINCT p.id) AS total_products,
		COUNT(DISTINCT CASE WHEN p.is_active THEN p.id END) AS active_products,
		COUNT(o.id) AS total_orders,
		COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		COALESCE(AVG(o.total_amount), 0) AS avg_order_value
	FROM products p
	LEFT JOIN orders o ON p.id = o.product_id
	GROUP BY p.category
	ORDER BY total_revenue DESC`)
	return rows, err
}

// TopCustomers ranks customers by delivered spend.
func (r *AnalyticsRepository) TopCustomers(ctx context.Context, limit int) ([]models.TopCustomerRow, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var rows []models.TopCustomerRow
	err := r.store.Select(ctx, &rows, `SELECT
		u.id, u.first_name, u.last_name, u.email,
		COUNT(o.id) AS total_orders,
		COALESCE(SUM(o.total_amount), 0) AS total_spent,
		COALESCE(AVG(o.total_amount), 0) AS avg_order_value,
		MAX(o.created_at) AS last_order_date
	FROM users u
	JOIN orders o ON u.id = o.customer_id
	WHERE o.status = 'delivered'
	GROUP BY u.id, u.first_name, u.last_name, u.email
	ORDER BY total_spent DESC
	LIMIT $1`, limit)
	return rows, err
}

// FileActivity returns daily upload counts over a trailing window.
func (r *AnalyticsRepository) FileActivity(ctx context.Context, days int) ([]models.FileActivityRow, error) {
	var rows []models.FileActivityRow
	err := r.store.Select(ctx, &rows, `SELECT
		DATE(created_at) AS date,
		COUNT(*) AS total_files,
		COALESCE(SUM(size), 0) AS total_size,
		COUNT(CASE WHEN category = 'image' THEN 1 END) AS image_count,
		COUNT(CASE WHEN category = 'document' THEN 1 END) AS document_count,
		COUNT(CASE WHEN category = 'video' THEN 1 END) AS video_count,
		COUNT(CASE WHEN category = 'audio' THEN 1 END) AS audio_count,
		COUNT(DISTINCT uploaded_by) AS unique_uploaders
	FROM files
	WHERE created_at >= $1
	GROUP BY DATE(created_at)
	ORDER BY date DESC`, cutoff(days))
	return rows, err
}

// RecentOrders returns the latest n orders with product and customer names.
func (r *AnalyticsRepository) RecentOrders(ctx context.Context, n int) ([]models.OrderDetail, error) {
	var rows []models.OrderDetail
	err := r.store.Select(ctx, &rows, `SELECT o.*,
		p.name AS product_name,
		u.first_name AS customer_first_name,
		u.last_name AS customer_last_name
	FROM orders o
	LEFT JOIN products p ON o.product_id = p.id
	LEFT JOIN users u ON o.customer_id = u.id
	ORDER BY o.created_at DESC
	LIMIT $1`, n)
	return rows, err
}

// RecentUsers returns the latest n registrations.
func (r *AnalyticsRepository) RecentUsers(ctx context.Context, n int) ([]models.User, error) {
	var rows []models.User
	err := r.store.Select(ctx, &rows,
		"SELECT id, first_name, last_name, email, role, is_approved, created_at, updated_at FROM users ORDER BY created_at DESC LIMIT $1", n)
	return rows, err
}

// TopProducts returns the n most ordered products.
func (r *AnalyticsRepository) TopProducts(ctx context.Context, n int) ([]models.Product, error) {
	var rows []models.Product
	err := r.store.Select(ctx, &rows, `SELECT p.*
	FROM products p
	LEFT JOIN orders o ON p.id = o.product_id
	GROUP BY p.id
	ORDER BY COUNT(o.id) DESC
	LIMIT $1`, n)
	return rows, err
}
