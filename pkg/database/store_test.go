package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/fault"
)

func TestWrapErrPassesSentinelsThrough(t *testing.T) {
	assert.NoError(t, wrapErr("get", nil))
	assert.Equal(t, ErrNoRows, wrapErr("get", ErrNoRows))
	assert.Equal(t, ErrDuplicate, wrapErr("exec", ErrDuplicate))
}

func TestWrapErrWrapsDriverFailures(t *testing.T) {
	cause := errors.New("pq: relation \"users\" does not exist")
	err := wrapErr("select", cause)

	assert.True(t, fault.IsStore(err))
	assert.ErrorIs(t, err, cause)

	var se *fault.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "select", se.Op)

	assert.False(t, errors.Is(err, ErrNoRows))
}
