package services

import (
	"context"
	"errors"
	"strings"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/event"
	"github.com/launchbase/launchbase/pkg/fault"
	"github.com/launchbase/launchbase/pkg/query"
)

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    *string
}

// Create adds a product owned by the calling user. Product names are unique
// per creator, so two founders can each sell a "Starter Kit".
func (s *ProductService) Create(ctx context.Context, in CreateProductInput, creatorID uint) (models.Product, error) {
	name := strings.TrimSpace(in.Name)

	taken, err := s.products.NameExistsForCreator(ctx, name, creatorID)
	if err != nil {
		return models.Product{}, err
	}
	if taken {
		return models.Product{}, fault.ErrConflict
	}

	product := models.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    in.ImageURL,
		CreatorID:   creatorID,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return models.Product{}, fault.ErrConflict
		}
		return models.Product{}, err
	}

	event.FireAsync("products.changed", created.ID)
	return created, nil
}

func (s *ProductService) List(ctx context.Context, p repositories.ProductListParams) ([]models.ProductDetail, query.Pagination, error) {
	return s.products.List(ctx, p)
}

func (s *ProductService) Get(ctx context.Context, id uint) (models.ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.ProductDetail{}, fault.ErrNotFound
		}
		return models.ProductDetail{}, err
	}
	return product, nil
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string

	ImageURL    *string
	ImageURLSet bool
}

// Update applies a partial update. Only the creator or an admin may edit a
// product; renaming re-checks the per-creator uniqueness rule.
func (s *ProductService) Update(ctx context.Context, id uint, p ProductPatch, callerID uint, callerRole string) (models.Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if current.CreatorID != callerID && callerRole != models.RoleAdmin {
		return models.Product{}, fault.ErrForbidden
	}

	c := query.NewUpdateComposer()
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name != current.Name {
			taken, err := s.products.NameExistsForCreator(ctx, name, current.CreatorID)
			if err != nil {
				return models.Product{}, err
			}
			if taken {
				return models.Product{}, fault.ErrConflict
			}
		}
		c.Set("name", name)
	}
	if p.Description != nil {
		c.Set("description", *p.Description)
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return models.Product{}, fault.Invalid("price", "price must not be negative")
		}
		c.Set("price", *p.Price)
	}
	if p.Category != nil {
		c.Set("category", strings.TrimSpace(*p.Category))
	}
	if p.ImageURLSet {
		c.Set("image_url", strval(p.ImageURL))
	}

	updated, err := s.products.Update(ctx, id, c)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.Product{}, fault.ErrNotFound
		}
		if errors.Is(err, database.ErrDuplicate) {
			return models.Product{}, fault.ErrConflict
		}
		return models.Product{}, err
	}

	event.FireAsync("products.changed", updated.ID)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint, callerID uint, callerRole string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.CreatorID != callerID && callerRole != models.RoleAdmin {
		return fault.ErrForbidden
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return fault.ErrNotFound
		}
		return err
	}

	event.FireAsync("products.changed", id)
	return nil
}

func (s *ProductService) ListByCreator(ctx context.Context, creatorID uint, page, limit int) ([]models.Product, query.Pagination, error) {
	return s.products.ListByCreator(ctx, creatorID, page, limit)
}

// ToggleActive flips a product in or out of the public catalogue.
func (s *ProductService) ToggleActive(ctx context.Context, id uint, callerID uint, callerRole string) (models.Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if current.CreatorID != callerID && callerRole != models.RoleAdmin {
		return models.Product{}, fault.ErrForbidden
	}

	product, err := s.products.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.Product{}, fault.ErrNotFound
		}
		return models.Product{}, err
	}

	event.FireAsync("products.changed", product.ID)
	return product, nil
}
