package bind_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/bind"
)

type patchBody struct {
	Name  *string `json:"name" validate:"nullable,min=2"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

func TestPatchReportsPresentKeys(t *testing.T) {
	r := httptest.NewRequest("PUT", "/", strings.NewReader(`{"name":"Ada","phone":null}`))

	var body patchBody
	present, errs, err := bind.Patch(r, &body)
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.True(t, present["name"])
	assert.True(t, present["phone"], "explicit null still counts as present")
	assert.False(t, present["notes"])

	require.NotNil(t, body.Name)
	assert.Equal(t, "Ada", *body.Name)
	assert.Nil(t, body.Phone)
}

func TestPatchEmptyObject(t *testing.T) {
	r := httptest.NewRequest("PUT", "/", strings.NewReader(`{}`))

	var body patchBody
	present, errs, err := bind.Patch(r, &body)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Empty(t, present)
}

func TestPatchMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("PUT", "/", strings.NewReader(`{"name":`))

	var body patchBody
	_, _, err := bind.Patch(r, &body)
	assert.Error(t, err)
}

func TestPatchValidatesDecodedFields(t *testing.T) {
	r := httptest.NewRequest("PUT", "/", strings.NewReader(`{"name":"A"}`))

	var body patchBody
	present, errs, err := bind.Patch(r, &body)
	require.NoError(t, err)
	assert.True(t, present["name"])
	assert.Contains(t, errs, "name")
}
