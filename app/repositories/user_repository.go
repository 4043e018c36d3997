// Package repositories holds the data access layer. Every repository speaks
// to the store through plain parameterised SQL assembled by pkg/query; no
// repository keeps state beyond its store handle.
package repositories

import (
	"context"
	"fmt"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/query"
)

// userColumns is the projection returned to callers; password stays out of
// every read path except FindByEmail, which the login flow needs.
const userColumns = "id, first_name, last_name, email, phone, address, zip_code, role, is_approved, profile_pic, created_at, updated_at"

// UserRepository handles database operations for User.
type UserRepository struct {
	store database.Store
}

func NewUserRepository(store database.Store) *UserRepository {
	return &UserRepository{store: store}
}

// UserListParams are the recognised list filters. Zero values mean "not set".
type UserListParams struct {
	Page      int
	Limit     int
	Role      string
	Approval  string
	Search    string
	SortBy    string
	SortOrder string
}

// List returns a page of users with pagination metadata.
func (r *UserRepository) List(ctx context.Context, p UserListParams) ([]models.User, query.Pagination, error) {
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	sort, err := query.NewSort(p.SortBy, p.SortOrder, models.User{}.SortColumns())
	if err != nil {
		return nil, query.Pagination{}, err
	}

	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("role", p.Role)
	f.Equal("is_approved", p.Approval)
	f.Search(p.Search, "first_name", "last_name", "email")

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM users WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(p.Page, p.Limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf("SELECT %s FROM users WHERE %s %s %s",
		userColumns, f.Clause(), sort.OrderBy(""), limitOffset)

	var users []models.User
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &users, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return users, page.Meta(total), nil
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.store.Get(ctx, &user,
		fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns), id)
	return user, err
}

// FindByEmail looks up a user by email, including the password hash.
// Emails are stored lowercase, so the lookup lowercases too.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.store.Get(ctx, &user,
		"SELECT id, first_name, last_name, email, password, phone, address, zip_code, role, is_approved, profile_pic, created_at, updated_at FROM users WHERE email = LOWER($1)",
		email)
	return user, err
}

// EmailExists reports whether any user already holds email. This is a
// check-then-act fast path; the unique index on email is the backstop.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM users WHERE email = LOWER($1)", email)
	return total > 0, err
}

// Create inserts a new user and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	err := r.store.Get(ctx, &created,
		`INSERT INTO users (first_name, last_name, email, password, phone, address, zip_code, role, is_approved, created_at, updated_at)
		 VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8, $9, NOW(), NOW())
		 RETURNING `+userColumns,
		u.FirstName, u.LastName, u.Email, u.Password, u.Phone, u.Address, u.ZipCode, u.Role, u.IsApproved)
	return created, err
}

// Update applies the composed patch and returns the updated row.
// Returns query.ErrEmptyPatch when the patch carries no fields, and
// database.ErrNoRows when the id matches nothing.
func (r *UserRepository) Update(ctx context.Context, id uint, patch *query.UpdateComposer) (models.User, error) {
	setClause, args, idIndex, err := patch.Compose(id)
	if err != nil {
		return models.User{}, err
	}

	stmt := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		setClause, idIndex, userColumns)

	var updated models.User
	err = r.store.Get(ctx, &updated, stmt, args...)
	return updated, err
}

// Delete removes a user permanently. Returns database.ErrNoRows when the id
// matches nothing.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.store.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrNoRows
	}
	return nil
}

// SetApproval moves a user through the approval workflow.
func (r *UserRepository) SetApproval(ctx context.Context, id uint, status string) (models.User, error) {
	var updated models.User
	err := r.store.Get(ctx, &updated,
		"UPDATE users SET is_approved = $1, updated_at = NOW() WHERE id = $2 RETURNING "+userColumns,
		status, id)
	return updated, err
}
