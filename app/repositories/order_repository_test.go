package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/query"
)

func TestOrderListFilterPlaceholderSequence(t *testing.T) {
	store := &fakeStore{countResult: 3}
	repo := repositories.NewOrderRepository(store)

	min := 50.0
	max := 500.0
	_, _, err := repo.List(context.Background(), repositories.OrderListParams{
		Status:    "pending",
		MinAmount: &min,
		MaxAmount: &max,
	})
	require.NoError(t, err)

	count, ok := store.last("count")
	require.True(t, ok)
	assert.Equal(t,
		"SELECT COUNT(*) FROM orders o WHERE o.status = $1 AND o.total_amount >= $2 AND o.total_amount <= $3",
		count.sql)
	assert.Equal(t, []interface{}{"pending", 50.0, 500.0}, count.args)

	// The page placeholders continue where the filters stopped.
	sel, ok := store.last("select")
	require.True(t, ok)
	assert.Contains(t, sel.sql, "LIMIT $4 OFFSET $5")
	assert.Contains(t, sel.sql, "ORDER BY o.created_at DESC")
	assert.Equal(t, []interface{}{"pending", 50.0, 500.0, 10, 0}, sel.args)
}

func TestOrderListDateRange(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewOrderRepository(store)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	_, _, err := repo.List(context.Background(), repositories.OrderListParams{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	count, _ := store.last("count")
	assert.Equal(t,
		"SELECT COUNT(*) FROM orders o WHERE o.created_at >= $1 AND o.created_at <= $2",
		count.sql)
	assert.Equal(t, []interface{}{start, end}, count.args)
}

func TestOrderListUnsetPointersAddNothing(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewOrderRepository(store)

	_, _, err := repo.List(context.Background(), repositories.OrderListParams{})
	require.NoError(t, err)

	count, _ := store.last("count")
	assert.Equal(t, "SELECT COUNT(*) FROM orders o WHERE 1=1", count.sql)
	assert.Empty(t, count.args)
}

func TestOrderListByCustomerScopesAndSorts(t *testing.T) {
	store := &fakeStore{countResult: 1}
	repo := repositories.NewOrderRepository(store)

	_, _, err := repo.ListByCustomer(context.Background(), 42, 1, 20, "delivered")
	require.NoError(t, err)

	count, _ := store.last("count")
	assert.Equal(t,
		"SELECT COUNT(*) FROM orders o WHERE o.customer_id = $1 AND o.status = $2",
		count.sql)

	sel, _ := store.last("select")
	assert.Contains(t, sel.sql, "ORDER BY o.created_at DESC")
	assert.Contains(t, sel.sql, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []interface{}{uint(42), "delivered", 20, 0}, sel.args)
}

func TestOrderUpdateStampsEditor(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewOrderRepository(store)

	patch := query.NewUpdateComposer()
	patch.Set("notes", nil)
	patch.Set("updated_by", uint(3))

	_, err := repo.Update(context.Background(), 11, patch)
	require.NoError(t, err)

	get, _ := store.last("get")
	assert.Equal(t,
		"UPDATE orders SET notes = $1, updated_by = $2, updated_at = NOW() WHERE id = $3 RETURNING *",
		get.sql)
	assert.Equal(t, []interface{}{nil, uint(3), uint(11)}, get.args)
}

func TestOrderStatisticsBoundRange(t *testing.T) {
	store := &fakeStore{}
	repo := repositories.NewOrderRepository(store)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Statistics(context.Background(), &start, nil, "")
	require.NoError(t, err)

	get, _ := store.last("get")
	assert.Contains(t, get.sql, "WHERE created_at >= $1")
	assert.NotContains(t, get.sql, "status =")
	assert.Equal(t, []interface{}{start}, get.args)
}
