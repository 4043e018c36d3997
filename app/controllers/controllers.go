// Package controllers translates HTTP requests into service calls and
// service errors back into HTTP responses.
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/fault"
	"github.com/launchbase/launchbase/pkg/logger"
	"github.com/launchbase/launchbase/pkg/query"
	"github.com/launchbase/launchbase/pkg/response"
)

// fail maps a service error onto the HTTP response it deserves. Anything
// outside the known taxonomy is logged and reported as a 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if v, ok := fault.AsValidation(err); ok {
		response.ValidationError(w, v.Fields)
		return
	}

	switch {
	case errors.Is(err, fault.ErrNotFound), errors.Is(err, database.ErrNoRows):
		response.NotFound(w, "")
	case errors.Is(err, fault.ErrConflict), errors.Is(err, database.ErrDuplicate):
		response.Conflict(w, "Resource already exists")
	case errors.Is(err, fault.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, fault.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid credentials")
	case errors.Is(err, fault.ErrNotApproved):
		response.Error(w, http.StatusForbidden, "Account not approved. Please contact administrator.", nil)
	case errors.Is(err, query.ErrEmptyPatch):
		response.BadRequest(w, "No fields to update")
	case errors.Is(err, query.ErrInvalidSortColumn):
		response.BadRequest(w, "Invalid sort column")
	default:
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		response.Internal(w, err)
	}
}

// uintParam reads a numeric path parameter.
func uintParam(r *http.Request, name string) (uint, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// queryUintPtr reads an optional numeric query parameter.
func queryUintPtr(r *http.Request, name string) *uint {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(n)
	return &u
}

// queryFloatPtr reads an optional float query parameter.
func queryFloatPtr(r *http.Request, name string) *float64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// queryBoolPtr reads an optional boolean query parameter.
func queryBoolPtr(r *http.Request, name string) *bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// queryTimePtr reads an optional RFC 3339 or YYYY-MM-DD query parameter.
func queryTimePtr(r *http.Request, name string) *time.Time {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
