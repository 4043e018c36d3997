package models

import "time"

// Order lifecycle states.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderProcessing,
	OrderShipped, OrderDelivered, OrderCancelled,
}

// ValidOrderStatus reports whether status is in the closed enumeration.
func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a purchase of one product by one customer.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	Status      string    `gorm:"size:50;not null;default:pending;index" json:"status"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy   *uint     `json:"created_by,omitempty"`
	UpdatedBy   *uint     `json:"updated_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderDetail is an order row joined with customer and product columns.
type OrderDetail struct {
	Order
	CustomerFirstName  string  `json:"customer_first_name,omitempty"`
	CustomerLastName   string  `json:"customer_last_name,omitempty"`
	CustomerEmail      string  `json:"customer_email,omitempty"`
	ProductName        string  `json:"product_name,omitempty"`
	ProductDescription string  `json:"product_description,omitempty"`
	ProductPrice       float64 `json:"product_price,omitempty"`
	ProductCategory    string  `json:"product_category,omitempty"`
}

// OrderStats is the aggregate row produced by the statistics query.
type OrderStats struct {
	TotalOrders       int64      `json:"total_orders"`
	PendingOrders     int64      `json:"pending_orders"`
	ConfirmedOrders   int64      `json:"confirmed_orders"`
	ProcessingOrders  int64      `json:"processing_orders"`
	ShippedOrders     int64      `json:"shipped_orders"`
	DeliveredOrders   int64      `json:"delivered_orders"`
	CancelledOrders   int64      `json:"cancelled_orders"`
	TotalRevenue      float64    `json:"total_revenue"`
	AverageOrderValue float64    `json:"average_order_value"`
	FirstOrderDate    *time.Time `json:"first_order_date,omitempty"`
	LastOrderDate     *time.Time `json:"last_order_date,omitempty"`
}

// SortColumns is the whitelist of order columns a caller may sort by.
func (Order) SortColumns() []string {
	return []string{"created_at", "updated_at", "total_amount", "quantity", "status"}
}
