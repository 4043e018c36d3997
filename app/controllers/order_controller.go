package controllers

import (
	"net/http"

	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/pkg/bind"
	"github.com/launchbase/launchbase/pkg/middleware"
	"github.com/launchbase/launchbase/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type createOrderRequest struct {
	CustomerID  uint    `json:"customerId"  validate:"required"`
	ProductID   uint    `json:"productId"   validate:"required"`
	Quantity    int     `json:"quantity"    validate:"required,gt=0"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
	Status      string  `json:"status"      validate:"nullable,in=pending,confirmed,processing,shipped,delivered,cancelled"`
	Notes       *string `json:"notes"`
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var body createOrderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(r.Context(), services.CreateOrderInput{
		CustomerID:  body.CustomerID,
		ProductID:   body.ProductID,
		Quantity:    body.Quantity,
		TotalAmount: body.TotalAmount,
		Status:      body.Status,
		Notes:       body.Notes,
	}, callerID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, "Order created successfully", order)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, pagination, err := c.service.List(r.Context(), repositories.OrderListParams{
		Page:       queryInt(r, "page", 0),
		Limit:      queryInt(r, "limit", 0),
		Status:     q.Get("status"),
		CustomerID: queryUintPtr(r, "customerId"),
		ProductID:  queryUintPtr(r, "productId"),
		StartDate:  queryTimePtr(r, "startDate"),
		EndDate:    queryTimePtr(r, "endDate"),
		MinAmount:  queryFloatPtr(r, "minAmount"),
		MaxAmount:  queryFloatPtr(r, "maxAmount"),
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Orders retrieved successfully", orders, pagination)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	order, err := c.service.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Order retrieved successfully", order)
}

type updateOrderRequest struct {
	Quantity    *int     `json:"quantity"    validate:"nullable,gt=0"`
	TotalAmount *float64 `json:"totalAmount" validate:"nullable,gt=0"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	callerID, _ := middleware.UserIDFromCtx(r)

	var body updateOrderRequest
	present, errs, err := bind.Patch(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Update(r.Context(), id, services.OrderPatch{
		Quantity:    body.Quantity,
		TotalAmount: body.TotalAmount,
		Status:      body.Status,
		Notes:       body.Notes,
		NotesSet:    present["notes"],
	}, callerID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Order updated successfully", order)
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,in=pending,confirmed,processing,shipped,delivered,cancelled"`
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	callerID, _ := middleware.UserIDFromCtx(r)

	var body orderStatusRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.UpdateStatus(r.Context(), id, body.Status, callerID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Order status updated", order)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Order deleted successfully", nil)
}

func (c *OrderController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid customer id")
		return
	}

	orders, pagination, err := c.service.ListByCustomer(r.Context(), customerID,
		queryInt(r, "page", 0), queryInt(r, "limit", 0), r.URL.Query().Get("status"))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Orders retrieved successfully", orders, pagination)
}

func (c *OrderController) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid product id")
		return
	}

	orders, pagination, err := c.service.ListByProduct(r.Context(), productID,
		queryInt(r, "page", 0), queryInt(r, "limit", 0), r.URL.Query().Get("status"))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Orders retrieved successfully", orders, pagination)
}

func (c *OrderController) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Statistics(r.Context(),
		queryTimePtr(r, "startDate"), queryTimePtr(r, "endDate"), r.URL.Query().Get("status"))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Order statistics retrieved", stats)
}
