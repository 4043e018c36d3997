package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/event"
	"github.com/launchbase/launchbase/pkg/fault"
	"github.com/launchbase/launchbase/pkg/query"
)

type OrderService struct {
	orders   *repositories.OrderRepository
	users    *repositories.UserRepository
	products *repositories.ProductRepository
}

func NewOrderService(orders *repositories.OrderRepository, users *repositories.UserRepository, products *repositories.ProductRepository) *OrderService {
	return &OrderService{orders: orders, users: users, products: products}
}

type CreateOrderInput struct {
	CustomerID  uint
	ProductID   uint
	Quantity    int
	TotalAmount float64
	Status      string
	Notes       *string
}

// Create places an order. The referenced customer and product are checked
// up front so the caller gets a 404 with a usable message instead of a raw
// foreign key violation.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput, createdBy uint) (models.Order, error) {
	status := in.Status
	if status == "" {
		status = models.OrderPending
	}
	if !models.ValidOrderStatus(status) {
		return models.Order{}, fault.Invalid("status", "status must be one of: "+strings.Join(models.OrderStatuses, ", "))
	}

	if _, err := s.users.FindByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.Order{}, fault.ErrNotFound
		}
		return models.Order{}, err
	}
	if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.Order{}, fault.ErrNotFound
		}
		return models.Order{}, err
	}

	order := models.Order{
		CustomerID:  in.CustomerID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		TotalAmount: in.TotalAmount,
		Status:      status,
		Notes:       in.Notes,
		CreatedBy:   &createdBy,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	event.FireAsync("orders.changed", created.ID)
	return created, nil
}

func (s *OrderService) List(ctx context.Context, p repositories.OrderListParams) ([]models.OrderDetail, query.Pagination, error) {
	return s.orders.List(ctx, p)
}

func (s *OrderService) Get(ctx context.Context, id uint) (models.OrderDetail, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.OrderDetail{}, fault.ErrNotFound
		}
		return models.OrderDetail{}, err
	}
	return order, nil
}

type OrderPatch struct {
	Quantity    *int
	TotalAmount *float64
	Status      *string

	Notes    *string
	NotesSet bool
}

func (s *OrderService) Update(ctx context.Context, id uint, p OrderPatch, updatedBy uint) (models.Order, error) {
	c := query.NewUpdateComposer()
	if p.Quantity != nil {
		if *p.Quantity <= 0 {
			return models.Order{}, fault.Invalid("quantity", "quantity must be greater than zero")
		}
		c.Set("quantity", *p.Quantity)
	}
	if p.TotalAmount != nil {
		if *p.TotalAmount <= 0 {
			return models.Order{}, fault.Invalid("totalAmount", "total amount must be greater than zero")
		}
		c.Set("total_amount", *p.TotalAmount)
	}
	if p.Status != nil {
		if !models.ValidOrderStatus(*p.Status) {
			return models.Order{}, fault.Invalid("status", "status must be one of: "+strings.Join(models.OrderStatuses, ", "))
		}
		c.Set("status", *p.Status)
	}
	if p.NotesSet {
		c.Set("notes", strval(p.Notes))
	}
	if c.Len() > 0 {
		c.Set("updated_by", updatedBy)
	}

	order, err := s.orders.Update(ctx, id, c)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.Order{}, fault.ErrNotFound
		}
		return models.Order{}, err
	}

	event.FireAsync("orders.changed", order.ID)
	return order, nil
}

// UpdateStatus is the fast path for moving an order along its lifecycle.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string, updatedBy uint) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, fault.Invalid("status", "status must be one of: "+strings.Join(models.OrderStatuses, ", "))
	}

	order, err := s.orders.UpdateStatus(ctx, id, status, updatedBy)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.Order{}, fault.ErrNotFound
		}
		return models.Order{}, err
	}

	event.FireAsync("orders.changed", order.ID)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return fault.ErrNotFound
		}
		return err
	}

	event.FireAsync("orders.changed", id)
	return nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uint, page, limit int, status string) ([]models.OrderDetail, query.Pagination, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, query.Pagination{}, fault.Invalid("status", "status must be one of: "+strings.Join(models.OrderStatuses, ", "))
	}
	return s.orders.ListByCustomer(ctx, customerID, page, limit, status)
}

func (s *OrderService) ListByProduct(ctx context.Context, productID uint, page, limit int, status string) ([]models.OrderDetail, query.Pagination, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, query.Pagination{}, fault.Invalid("status", "status must be one of: "+strings.Join(models.OrderStatuses, ", "))
	}
	return s.orders.ListByProduct(ctx, productID, page, limit, status)
}

func (s *OrderService) Statistics(ctx context.Context, startDate, endDate *time.Time, status string) (models.OrderStats, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return models.OrderStats{}, fault.Invalid("status", "status must be one of: "+strings.Join(models.OrderStatuses, ", "))
	}
	return s.orders.Statistics(ctx, startDate, endDate, status)
}
