// Package response renders the JSON envelope every endpoint speaks:
//
//	{"success": true, "message": "...", "data": {...}, "timestamp": "..."}
//
// Error responses carry the same shape with success=false. Internal error
// detail is attached only outside production.
package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/launchbase/launchbase/config"
	"github.com/launchbase/launchbase/pkg/query"
)

type envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	body.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 with data.
func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Message: message, Data: data})
}

// Paginated sends a 200 with items and pagination metadata under data.
func Paginated(w http.ResponseWriter, message string, items interface{}, p query.Pagination) {
	Success(w, message, map[string]interface{}{
		"items":      items,
		"pagination": p,
	})
}

// Error sends a JSON error response. The detail string is included only
// outside production so stack internals never reach a public client.
func Error(w http.ResponseWriter, status int, message string, detail error) {
	body := envelope{Success: false, Message: message}
	if detail != nil && !config.Production() {
		body.Error = detail.Error()
	}
	write(w, status, body)
}

// ValidationError sends a 400 with a field → message map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// BadRequest sends a 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message, nil)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden", nil)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

// Conflict sends a 409.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message, nil)
}

// Internal sends a 500 with a generic message, attaching err detail only in
// development.
func Internal(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, "Internal server error", err)
}
