package controllers

import (
	"net/http"

	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/pkg/bind"
	"github.com/launchbase/launchbase/pkg/middleware"
	"github.com/launchbase/launchbase/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=255"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Category    string  `json:"category"    validate:"required,min=2,max=100"`
	ImageURL    *string `json:"imageUrl"    validate:"nullable,url"`
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var body createProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(r.Context(), services.CreateProductInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
	}, callerID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, "Product created successfully", product)
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, pagination, err := c.service.List(r.Context(), repositories.ProductListParams{
		Page:      queryInt(r, "page", 0),
		Limit:     queryInt(r, "limit", 0),
		Category:  q.Get("category"),
		Search:    q.Get("search"),
		MinPrice:  queryFloatPtr(r, "minPrice"),
		MaxPrice:  queryFloatPtr(r, "maxPrice"),
		IsActive:  queryBoolPtr(r, "isActive"),
		CreatorID: queryUintPtr(r, "creatorId"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Products retrieved successfully", products, pagination)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid product id")
		return
	}

	product, err := c.service.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Product retrieved successfully", product)
}

type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"nullable,min=3,max=255"`
	Description *string  `json:"description" validate:"nullable,min=10"`
	Price       *float64 `json:"price"       validate:"nullable,gte=0"`
	Category    *string  `json:"category"    validate:"nullable,min=2,max=100"`
	ImageURL    *string  `json:"imageUrl"    validate:"nullable,url"`
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid product id")
		return
	}

	callerID, _ := middleware.UserIDFromCtx(r)
	callerRole, _ := middleware.RoleFromCtx(r)

	var body updateProductRequest
	present, errs, err := bind.Patch(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(r.Context(), id, services.ProductPatch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
		ImageURLSet: present["imageUrl"],
	}, callerID, callerRole)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Product updated successfully", product)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid product id")
		return
	}

	callerID, _ := middleware.UserIDFromCtx(r)
	callerRole, _ := middleware.RoleFromCtx(r)

	if err := c.service.Delete(r.Context(), id, callerID, callerRole); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Product deleted successfully", nil)
}

func (c *ProductController) ListByCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid creator id")
		return
	}

	products, pagination, err := c.service.ListByCreator(r.Context(), creatorID,
		queryInt(r, "page", 0), queryInt(r, "limit", 0))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Products retrieved successfully", products, pagination)
}

func (c *ProductController) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid product id")
		return
	}

	callerID, _ := middleware.UserIDFromCtx(r)
	callerRole, _ := middleware.RoleFromCtx(r)

	product, err := c.service.ToggleActive(r.Context(), id, callerID, callerRole)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Product status toggled", product)
}
