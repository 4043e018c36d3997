// Package services holds the business rules that sit between HTTP
// controllers and the repositories.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/auth"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/event"
	"github.com/launchbase/launchbase/pkg/fault"
	"github.com/launchbase/launchbase/pkg/query"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUserInput carries the fields accepted at registration.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
	Address   string
	ZipCode   *string
	Role      string
}

// Register creates a new account. New users start in the pending approval
// state regardless of role; an admin promotes them later.
func (s *UserService) Register(ctx context.Context, in CreateUserInput) (models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleLearner
	}
	if !models.ValidRole(role) {
		return models.User{}, fault.Invalid("role", "role must be one of: "+strings.Join(models.Roles, ", "))
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, fault.ErrConflict
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      email,
		Password:   hash,
		Phone:      in.Phone,
		Address:    in.Address,
		ZipCode:    in.ZipCode,
		Role:       role,
		IsApproved: models.ApprovalPending,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The unique index on email backstops the existence check above
		// when two registrations race.
		if errors.Is(err, database.ErrDuplicate) {
			return models.User{}, fault.ErrConflict
		}
		return models.User{}, err
	}

	event.FireAsync("users.changed", created.ID)
	return created, nil
}

// Login verifies credentials and issues an access and a refresh token.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.User{}, "", "", fault.ErrInvalidCredentials
		}
		return models.User{}, "", "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", "", fault.ErrInvalidCredentials
	}

	// Pending and rejected accounts authenticate but get no tokens until an
	// admin approves them.
	if user.IsApproved != models.ApprovalApproved {
		return models.User{}, "", "", fault.ErrNotApproved
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", "", err
	}

	user.Password = ""
	return user, token, refresh, nil
}

func (s *UserService) List(ctx context.Context, p repositories.UserListParams) ([]models.User, query.Pagination, error) {
	return s.users.List(ctx, p)
}

func (s *UserService) Get(ctx context.Context, id uint) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.User{}, fault.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UserPatch describes a partial update. Pointer fields paired with a Set
// flag distinguish "leave untouched" from "overwrite with NULL".
type UserPatch struct {
	FirstName *string
	LastName  *string
	Address   *string

	Phone    *string
	PhoneSet bool

	ZipCode    *string
	ZipCodeSet bool

	ProfilePic    *string
	ProfilePicSet bool
}

// Update applies a partial update to a user record. Callers may only edit
// themselves unless they hold the admin role.
func (s *UserService) Update(ctx context.Context, id uint, p UserPatch, callerID uint, callerRole string) (models.User, error) {
	if callerID != id && callerRole != models.RoleAdmin {
		return models.User{}, fault.ErrForbidden
	}

	c := query.NewUpdateComposer()
	if p.FirstName != nil {
		c.Set("first_name", strings.TrimSpace(*p.FirstName))
	}
	if p.LastName != nil {
		c.Set("last_name", strings.TrimSpace(*p.LastName))
	}
	if p.Address != nil {
		c.Set("address", *p.Address)
	}
	if p.PhoneSet {
		c.Set("phone", strval(p.Phone))
	}
	if p.ZipCodeSet {
		c.Set("zip_code", strval(p.ZipCode))
	}
	if p.ProfilePicSet {
		c.Set("profile_pic", strval(p.ProfilePic))
	}

	user, err := s.users.Update(ctx, id, c)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.User{}, fault.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return fault.ErrNotFound
		}
		return err
	}

	event.FireAsync("users.changed", id)
	return nil
}

// SetApproval moves a user through the approval workflow.
func (s *UserService) SetApproval(ctx context.Context, id uint, status string) (models.User, error) {
	switch status {
	case models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		return models.User{}, fault.Invalid("isApproved", "status must be pending, approved or rejected")
	}

	user, err := s.users.SetApproval(ctx, id, status)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.User{}, fault.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// strval keeps an explicit JSON null as a SQL NULL while passing real
// strings through as values.
func strval(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
