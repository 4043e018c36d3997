package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/pkg/auth"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/fault"
)

// stubUserStore serves a single canned user row to every Get, standing in
// for the login lookup.
type stubUserStore struct {
	user   models.User
	getErr error
}

func (s *stubUserStore) Select(context.Context, interface{}, string, ...interface{}) error {
	return nil
}

func (s *stubUserStore) Get(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	if u, ok := dest.(*models.User); ok {
		*u = s.user
	}
	return nil
}

func (s *stubUserStore) Count(context.Context, string, ...interface{}) (int64, error) {
	return 0, nil
}

func (s *stubUserStore) Exec(context.Context, string, ...interface{}) (int64, error) {
	return 1, nil
}

func loginService(t *testing.T, approval string) *services.UserService {
	t.Helper()
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	store := &stubUserStore{user: models.User{
		ID:         7,
		Email:      "ada@example.com",
		Password:   hash,
		Role:       models.RoleLearner,
		IsApproved: approval,
	}}
	return services.NewUserService(repositories.NewUserRepository(store))
}

func TestLoginApprovedUser(t *testing.T) {
	svc := loginService(t, models.ApprovalApproved)

	user, token, refresh, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, refresh)
	assert.Empty(t, user.Password, "hash must not leave the service")
}

func TestLoginUnapprovedUserGetsNoTokens(t *testing.T) {
	for _, approval := range []string{models.ApprovalPending, models.ApprovalRejected} {
		svc := loginService(t, approval)

		_, token, refresh, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
		assert.ErrorIs(t, err, fault.ErrNotApproved, "approval %q", approval)
		assert.Empty(t, token)
		assert.Empty(t, refresh)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := loginService(t, models.ApprovalApproved)

	_, _, _, err := svc.Login(context.Background(), "ada@example.com", "nope")
	assert.ErrorIs(t, err, fault.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := &stubUserStore{getErr: database.ErrNoRows}
	svc := services.NewUserService(repositories.NewUserRepository(store))

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, fault.ErrInvalidCredentials)
}
