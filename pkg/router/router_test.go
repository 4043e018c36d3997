package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/launchbase/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestVerbsDispatch(t *testing.T) {
	r := router.New()
	r.Get("/things", "things.index", ok)
	r.Put("/things/{id}", "things.update", ok)
	r.Patch("/things/{id}/status", "things.status", ok)
	r.Delete("/things/{id}", "things.destroy", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{"GET", "/things", http.StatusOK},
		{"PUT", "/things/5", http.StatusOK},
		{"PATCH", "/things/5/status", http.StatusOK},
		{"DELETE", "/things/5", http.StatusOK},
		{"POST", "/things", http.StatusMethodNotAllowed},
	} {
		req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
		require.NoError(t, err)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestNestedGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	tag := func(label string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, label)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("outer"))
	orders := api.Group("/orders", tag("inner"))
	orders.Get("/", "orders.index", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/orders")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRoutesIntrospection(t *testing.T) {
	r := router.New()
	r.Get("/users", "users.index", ok)
	r.Post("/users", "users.store", ok)
	r.Get("/healthz", "", ok)

	infos := r.Routes()
	require.Len(t, infos, 2, "unnamed routes stay out of the listing")
	assert.Equal(t, router.RouteInfo{Method: "GET", Path: "/users", Name: "users.index"}, infos[0])
	assert.Equal(t, router.RouteInfo{Method: "POST", Path: "/users", Name: "users.store"}, infos[1])
}

func TestURLGeneration(t *testing.T) {
	r := router.New()
	r.Get("/users/{id}", "users.show", ok)

	url, err := r.URL("users.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/users/7", url)

	_, err = r.URL("users.show", nil)
	assert.Error(t, err, "missing parameter")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}
