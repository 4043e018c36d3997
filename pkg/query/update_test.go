package query_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/query"
)

func TestUpdateComposerSingleField(t *testing.T) {
	c := query.NewUpdateComposer()
	c.Set("price", 10.0)

	set, args, idIndex, err := c.Compose(uint(7))
	require.NoError(t, err)

	assert.Equal(t, "price = $1, updated_at = NOW()", set)
	assert.Equal(t, []interface{}{10.0, uint(7)}, args)
	assert.Equal(t, 2, idIndex)
}

func TestUpdateComposerEmptyPatch(t *testing.T) {
	c := query.NewUpdateComposer()

	_, _, _, err := c.Compose(uint(1))
	assert.ErrorIs(t, err, query.ErrEmptyPatch)
}

func TestUpdateComposerPreservesInsertionOrder(t *testing.T) {
	c := query.NewUpdateComposer()
	c.Set("name", "Starter Kit")
	c.Set("price", 25.0)
	c.Set("category", "tools")

	set, args, idIndex, err := c.Compose(uint(3))
	require.NoError(t, err)

	assert.Equal(t, "name = $1, price = $2, category = $3, updated_at = NOW()", set)
	assert.Equal(t, []interface{}{"Starter Kit", 25.0, "tools", uint(3)}, args)
	assert.Equal(t, 4, idIndex)
}

func TestUpdateComposerNilMeansExplicitNull(t *testing.T) {
	c := query.NewUpdateComposer()
	c.Set("phone", nil)

	set, args, _, err := c.Compose(uint(9))
	require.NoError(t, err)

	assert.Equal(t, "phone = $1, updated_at = NOW()", set)
	require.Len(t, args, 2)
	assert.Nil(t, args[0])
}

func TestUpdateComposerIsRepeatable(t *testing.T) {
	c := query.NewUpdateComposer()
	c.Set("status", "shipped")
	c.Set("updated_by", uint(4))

	first, firstArgs, firstIdx, err := c.Compose(uint(12))
	require.NoError(t, err)
	second, secondArgs, secondIdx, err := c.Compose(uint(12))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs, secondArgs)
	assert.Equal(t, firstIdx, secondIdx)
}

func TestUpdateComposerStatementAssembly(t *testing.T) {
	c := query.NewUpdateComposer()
	c.Set("quantity", 2)

	set, args, idIndex, err := c.Compose(uint(42))
	require.NoError(t, err)

	stmt := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d RETURNING *", set, idIndex)
	assert.Equal(t, "UPDATE orders SET quantity = $1, updated_at = NOW() WHERE id = $2 RETURNING *", stmt)
	assert.Equal(t, []interface{}{2, uint(42)}, args)
}
