package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/query"
)

// orderDetailColumns is the joined projection shared by the list and show
// queries.
const orderDetailColumns = `o.id, o.customer_id, o.product_id, o.quantity, o.total_amount, o.status, o.notes,
	o.created_by, o.updated_by, o.created_at, o.updated_at,
	u.first_name AS customer_first_name, u.last_name AS customer_last_name, u.email AS customer_email,
	p.name AS product_name, p.description AS product_description, p.price AS product_price, p.category AS product_category`

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	store database.Store
}

func NewOrderRepository(store database.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// OrderListParams are the recognised list filters.
type OrderListParams struct {
	Page       int
	Limit      int
	Status     string
	CustomerID *uint
	ProductID  *uint
	StartDate  *time.Time
	EndDate    *time.Time
	MinAmount  *float64
	MaxAmount  *float64
	SortBy     string
	SortOrder  string
}

func orderFilters(seq *query.Sequencer, p OrderListParams) *query.FilterBuilder {
	f := query.NewFilterBuilder(seq)
	f.Equal("o.status", p.Status)
	f.Equal("o.customer_id", p.CustomerID)
	f.Equal("o.product_id", p.ProductID)
	f.Min("o.created_at", p.StartDate)
	f.Max("o.created_at", p.EndDate)
	f.Min("o.total_amount", p.MinAmount)
	f.Max("o.total_amount", p.MaxAmount)
	return f
}

// List returns a page of orders joined with customer and product columns.
func (r *OrderRepository) List(ctx context.Context, p OrderListParams) ([]models.OrderDetail, query.Pagination, error) {
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	sort, err := query.NewSort(p.SortBy, p.SortOrder, models.Order{}.SortColumns())
	if err != nil {
		return nil, query.Pagination{}, err
	}

	seq := query.NewSequencer()
	f := orderFilters(seq, p)

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM orders o WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(p.Page, p.Limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf(`SELECT %s
		FROM orders o
		LEFT JOIN users u ON o.customer_id = u.id
		LEFT JOIN products p ON o.product_id = p.id
		WHERE %s %s %s`, orderDetailColumns, f.Clause(), sort.OrderBy("o"), limitOffset)

	var orders []models.OrderDetail
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &orders, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return orders, page.Meta(total), nil
}

// FindByID returns one order joined with customer and product details.
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (models.OrderDetail, error) {
	var order models.OrderDetail
	err := r.store.Get(ctx, &order, fmt.Sprintf(`SELECT %s
		FROM orders o
		LEFT JOIN users u ON o.customer_id = u.id
		LEFT JOIN products p ON o.product_id = p.id
		WHERE o.id = $1`, orderDetailColumns), id)
	return order, err
}

// Create inserts a new order and returns the stored row.
func (r *OrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	var created models.Order
	err := r.store.Get(ctx, &created,
		`INSERT INTO orders (customer_id, product_id, quantity, total_amount, status, notes, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		 RETURNING *`,
		o.CustomerID, o.ProductID, o.Quantity, o.TotalAmount, o.Status, o.Notes, o.CreatedBy)
	return created, err
}

// Update applies the composed patch and returns the updated row.
func (r *OrderRepository) Update(ctx context.Context, id uint, patch *query.UpdateComposer) (models.Order, error) {
	setClause, args, idIndex, err := patch.Compose(id)
	if err != nil {
		return models.Order{}, err
	}

	stmt := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d RETURNING *", setClause, idIndex)

	var updated models.Order
	err = r.store.Get(ctx, &updated, stmt, args...)
	return updated, err
}

// UpdateStatus moves an order through its lifecycle and stamps updated_by.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status string, updatedBy uint) (models.Order, error) {
	var updated models.Order
	err := r.store.Get(ctx, &updated,
		"UPDATE orders SET status = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 RETURNING *",
		status, updatedBy, id)
	return updated, err
}

// Delete removes an order permanently.
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.store.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrNoRows
	}
	return nil
}

// ListByCustomer returns one customer's orders, newest first, with product
// columns joined.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uint, pageNum, limit int, status string) ([]models.OrderDetail, query.Pagination, error) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("o.customer_id", customerID)
	f.Equal("o.status", status)

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM orders o WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(pageNum, limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf(`SELECT o.*, p.name AS product_name, p.description AS product_description,
			p.price AS product_price, p.category AS product_category
		FROM orders o
		LEFT JOIN products p ON o.product_id = p.id
		WHERE %s ORDER BY o.created_at DESC %s`, f.Clause(), limitOffset)

	var orders []models.OrderDetail
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &orders, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return orders, page.Meta(total), nil
}

// ListByProduct returns one product's orders, newest first, with customer
// columns joined.
func (r *OrderRepository) ListByProduct(ctx context.Context, productID uint, pageNum, limit int, status string) ([]models.OrderDetail, query.Pagination, error) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("o.product_id", productID)
	f.Equal("o.status", status)

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM orders o WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(pageNum, limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf(`SELECT o.*, u.first_name AS customer_first_name, u.last_name AS customer_last_name,
			u.email AS customer_email
		FROM orders o
		LEFT JOIN users u ON o.customer_id = u.id
		WHERE %s ORDER BY o.created_at DESC %s`, f.Clause(), limitOffset)

	var orders []models.OrderDetail
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &orders, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return orders, page.Meta(total), nil
}

// Statistics returns aggregate counts and revenue over an optional date
// range and status filter.
func (r *OrderRepository) Statistics(ctx context.Context, startDate, endDate *time.Time, status string) (models.OrderStats, error) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Min("created_at", startDate)
	f.Max("created_at", endDate)
	f.Equal("status", status)

	stmt := `SELECT
		COUNT(*) AS total_orders,
		COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_orders,
		COUNT(CASE WHEN status = 'confirmed' THEN 1 END) AS confirmed_orders,
		COUNT(CASE WHEN status = 'processing' THEN 1 END) AS processing_orders,
		COUNT(CASE WHEN status = 'shipped' THEN 1 END) AS shipped_orders,
		COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS delivered_orders,
		COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_orders,
		COALESCE(SUM(total_amount), 0) AS total_revenue,
		COALESCE(AVG(total_amount), 0) AS average_order_value,
		MIN(created_at) AS first_order_date,
		MAX(created_at) AS last_order_date
	FROM orders
	WHERE ` + f.Clause()

	var stats models.OrderStats
	err := r.store.Get(ctx, &stats, stmt, f.Args()...)
	return stats, err
}
