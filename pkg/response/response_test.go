package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/query"
	"github.com/launchbase/launchbase/pkg/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, "User fetched", map[string]string{"email": "a@b.co"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User fetched", body["message"])
	assert.NotContains(t, body, "errors")

	ts, ok := body["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestPaginatedWrapsItems(t *testing.T) {
	rec := httptest.NewRecorder()
	meta := query.NewPage(2, 10).Meta(25)
	response.Paginated(rec, "Orders fetched", []string{"a", "b"}, meta)

	body := decode(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "items")

	pagination, ok := data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(25), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.ValidationError(rec, map[string]string{"email": "The email must be a valid email address."})

	assert.Equal(t, 400, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])

	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "email")
}

func TestErrorDetailOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	rec := httptest.NewRecorder()
	response.Internal(rec, assert.AnError)

	assert.Equal(t, 500, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, assert.AnError.Error(), body["error"])
}
