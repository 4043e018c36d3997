package models

import "time"

// Derived analytics rows. These never map to tables; they are the shapes of
// the fixed aggregate queries in the analytics repository.

// SystemStats counts every entity plus its 30-day growth.
type SystemStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalProducts  int64 `json:"total_products"`
	TotalOrders    int64 `json:"total_orders"`
	TotalFiles     int64 `json:"total_files"`
	NewUsers30d    int64 `json:"new_users_30d"`
	NewProducts30d int64 `json:"new_products_30d"`
	NewOrders30d   int64 `json:"new_orders_30d"`
	NewFiles30d    int64 `json:"new_files_30d"`
}

// UserActivityRow is one day of registrations.
type UserActivityRow struct {
	Date      time.Time `json:"date"`
	NewUsers  int64     `json:"new_users"`
	NewAdmins int64     `json:"new_admins"`
}

// OrderAnalyticsRow is one day of order flow.
type OrderAnalyticsRow struct {
	Date            time.Time `json:"date"`
	TotalOrders     int64     `json:"total_orders"`
	TotalRevenue    float64   `json:"total_revenue"`
	AvgOrderValue   float64   `json:"avg_order_value"`
	UniqueCustomers int64     `json:"unique_customers"`
	DeliveredOrders int64     `json:"delivered_orders"`
	PendingOrders   int64     `json:"pending_orders"`
	CancelledOrders int64     `json:"cancelled_orders"`
}

// RevenueRow is one period's revenue rollup.
type RevenueRow struct {
	Period          time.Time `json:"period"`
	TotalOrders     int64     `json:"total_orders"`
	TotalRevenue    float64   `json:"total_revenue"`
	AvgOrderValue   float64   `json:"avg_order_value"`
	UniqueCustomers int64     `json:"unique_customers"`
}

// ProductPerformanceRow ranks a product by delivered revenue.
type ProductPerformanceRow struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	IsActive        bool      `json:"is_active"`
	TotalOrders     int64     `json:"total_orders"`
	TotalRevenue    float64   `json:"total_revenue"`
	AvgOrderValue   float64   `json:"avg_order_value"`
	CreatedAt       time.Time `json:"created_at"`
	CreatorName     string    `json:"creator_name"`
	CreatorLastName string    `json:"creator_last_name"`
}

// CategoryPerformanceRow aggregates a whole category.
type CategoryPerformanceRow struct {
	Category       string  `json:"category"`
	TotalProducts  int64   `json:"total_products"`
	ActiveProducts int64   `json:"active_products"`
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}

// TopCustomerRow ranks a customer by delivered spend.
type TopCustomerRow struct {
	ID            uint       `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	TotalOrders   int64      `json:"total_orders"`
	TotalSpent    float64    `json:"total_spent"`
	AvgOrderValue float64    `json:"avg_order_value"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`
}

// FileActivityRow is one day of uploads.
type FileActivityRow struct {
	Date            time.Time `json:"date"`
	TotalFiles      int64     `json:"total_files"`
	TotalSize       int64     `json:"total_size"`
	ImageCount      int64     `json:"image_count"`
	DocumentCount   int64     `json:"document_count"`
	VideoCount      int64     `json:"video_count"`
	AudioCount      int64     `json:"audio_count"`
	UniqueUploaders int64     `json:"unique_uploaders"`
}

// DashboardSummary bundles the admin landing-page widgets.
type DashboardSummary struct {
	SystemStats  SystemStats   `json:"system_stats"`
	RecentOrders []OrderDetail `json:"recent_orders"`
	RecentUsers  []User        `json:"recent_users"`
	TopProducts  []Product     `json:"top_products"`
}
