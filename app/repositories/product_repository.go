package repositories

import (
	"context"
	"fmt"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/query"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	store database.Store
}

func NewProductRepository(store database.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// ProductListParams are the recognised list filters. Pointer fields
// distinguish "not set" from legitimate zero values (price 0, inactive).
type ProductListParams struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	IsActive  *bool
	CreatorID *uint
	SortBy    string
	SortOrder string
}

// List returns a page of products joined with creator names.
func (r *ProductRepository) List(ctx context.Context, p ProductListParams) ([]models.ProductDetail, query.Pagination, error) {
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	sort, err := query.NewSort(p.SortBy, p.SortOrder, models.Product{}.SortColumns())
	if err != nil {
		return nil, query.Pagination{}, err
	}

	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("p.is_active", p.IsActive)
	f.Equal("p.category", p.Category)
	f.Equal("p.creator_id", p.CreatorID)
	f.Search(p.Search, "p.name", "p.description")
	f.Min("p.price", p.MinPrice)
	f.Max("p.price", p.MaxPrice)

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM products p WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(p.Page, p.Limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf(`SELECT p.*, u.first_name AS creator_name, u.last_name AS creator_last_name
		FROM products p
		LEFT JOIN users u ON p.creator_id = u.id
		WHERE %s %s %s`, f.Clause(), sort.OrderBy("p"), limitOffset)

	var products []models.ProductDetail
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &products, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return products, page.Meta(total), nil
}

// FindByID returns one product joined with creator details.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (models.ProductDetail, error) {
	var product models.ProductDetail
	err := r.store.Get(ctx, &product,
		`SELECT p.*, u.first_name AS creator_name, u.last_name AS creator_last_name, u.email AS creator_email
		 FROM products p
		 LEFT JOIN users u ON p.creator_id = u.id
		 WHERE p.id = $1`, id)
	return product, err
}

// NameExistsForCreator reports whether creator already has a product called
// name. Check-then-act fast path; the composite unique index is the backstop.
func (r *ProductRepository) NameExistsForCreator(ctx context.Context, name string, creatorID uint) (bool, error) {
	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM products WHERE name = $1 AND creator_id = $2", name, creatorID)
	return total > 0, err
}

// Create inserts a new product and returns the stored row.
func (r *ProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	err := r.store.Get(ctx, &created,
		`INSERT INTO products (name, description, price, category, image_url, creator_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
		 RETURNING *`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.CreatorID)
	return created, err
}

// Update applies the composed patch and returns the updated row.
func (r *ProductRepository) Update(ctx context.Context, id uint, patch *query.UpdateComposer) (models.Product, error) {
	setClause, args, idIndex, err := patch.Compose(id)
	if err != nil {
		return models.Product{}, err
	}

	stmt := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING *", setClause, idIndex)

	var updated models.Product
	err = r.store.Get(ctx, &updated, stmt, args...)
	return updated, err
}

// Delete removes a product permanently.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.store.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrNoRows
	}
	return nil
}

// ListByCreator returns a page of one creator's products, newest first.
func (r *ProductRepository) ListByCreator(ctx context.Context, creatorID uint, pageNum, limit int) ([]models.Product, query.Pagination, error) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("creator_id", creatorID)

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM products WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(pageNum, limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf("SELECT * FROM products WHERE %s ORDER BY created_at DESC %s",
		f.Clause(), limitOffset)

	var products []models.Product
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &products, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return products, page.Meta(total), nil
}

// ToggleActive flips is_active and returns the new state.
func (r *ProductRepository) ToggleActive(ctx context.Context, id uint) (models.Product, error) {
	var updated models.Product
	err := r.store.Get(ctx, &updated,
		"UPDATE products SET is_active = NOT is_active, updated_at = NOW() WHERE id = $1 RETURNING *", id)
	return updated, err
}
