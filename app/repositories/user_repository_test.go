package repositories_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/query"
)

func TestUserListFilteredPage(t *testing.T) {
	store := &fakeStore{countResult: 12}
	repo := repositories.NewUserRepository(store)

	_, meta, err := repo.List(context.Background(), repositories.UserListParams{
		Approval: "pending",
		Page:     2,
		Limit:    5,
	})
	require.NoError(t, err)

	count, ok := store.last("count")
	require.True(t, ok)
	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE is_approved = $1", count.sql)
	assert.Equal(t, []interface{}{"pending"}, count.args)

	sel, ok := store.last("select")
	require.True(t, ok)
	assert.Contains(t, sel.sql, "is_approved = $1")
	assert.Contains(t, sel.sql, "ORDER BY created_at DESC")
	assert.Contains(t, sel.sql, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []interface{}{"pending", 5, 5}, sel.args)
	assert.NotContains(t, sel.sql, "password")

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(12), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestUserListNoFilters(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewUserRepository(store)

	_, _, err := repo.List(context.Background(), repositories.UserListParams{})
	require.NoError(t, err)

	count, _ := store.last("count")
	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE 1=1", count.sql)
	assert.Empty(t, count.args)

	sel, _ := store.last("select")
	assert.Contains(t, sel.sql, "WHERE 1=1")
	assert.Contains(t, sel.sql, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{10, 0}, sel.args)
}

func TestUserListSearchSharesPlaceholder(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewUserRepository(store)

	_, _, err := repo.List(context.Background(), repositories.UserListParams{Search: "ada"})
	require.NoError(t, err)

	count, _ := store.last("count")
	assert.Contains(t, count.sql, "(first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1)")
	assert.Equal(t, []interface{}{"%ada%"}, count.args)

	sel, _ := store.last("select")
	assert.Equal(t, []interface{}{"%ada%", 10, 0}, sel.args)
}

func TestUserListRejectsUnknownSortColumn(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewUserRepository(store)

	_, _, err := repo.List(context.Background(), repositories.UserListParams{SortBy: "password"})
	assert.ErrorIs(t, err, query.ErrInvalidSortColumn)
	assert.Empty(t, store.calls, "nothing should reach the store")
}

func TestUserFindByEmailLowercasesAndKeepsPassword(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewUserRepository(store)

	_, err := repo.FindByEmail(context.Background(), "Ada@Example.COM")
	require.NoError(t, err)

	get, ok := store.last("get")
	require.True(t, ok)
	assert.Contains(t, get.sql, "email = LOWER($1)")
	assert.Contains(t, get.sql, "password")
	assert.Equal(t, []interface{}{"Ada@Example.COM"}, get.args)
}

func TestUserUpdateComposesPatch(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewUserRepository(store)

	patch := query.NewUpdateComposer()
	patch.Set("first_name", "Grace")
	patch.Set("phone", nil)

	_, err := repo.Update(context.Background(), 7, patch)
	require.NoError(t, err)

	get, _ := store.last("get")
	assert.True(t, strings.HasPrefix(get.sql, "UPDATE users SET first_name = $1, phone = $2, updated_at = NOW() WHERE id = $3"), get.sql)
	assert.Equal(t, []interface{}{"Grace", nil, uint(7)}, get.args)
}

func TestUserUpdateEmptyPatch(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewUserRepository(store)

	_, err := repo.Update(context.Background(), 7, query.NewUpdateComposer())
	assert.ErrorIs(t, err, query.ErrEmptyPatch)
	assert.Empty(t, store.calls)
}

func TestUserDeleteMissing(t *testing.T) {
	store := &fakeStore{execRows: 0}
	repo := repositories.NewUserRepository(store)

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, database.ErrNoRows)

	exec, _ := store.last("exec")
	assert.Equal(t, "DELETE FROM users WHERE id = $1", exec.sql)
	assert.Equal(t, []interface{}{uint(99)}, exec.args)
}
