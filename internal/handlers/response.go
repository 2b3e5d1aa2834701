package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/middlewares"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: service request not found
	Error string `json:"error"`

	// Machine readable error kind
	// default: NOT_FOUND
	Code string `json:"code"`
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: OK
	Message string `json:"message"`
}

var errBadBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorStatus maps the service error taxonomy onto HTTP.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, services.ErrValidation), errors.Is(err, errBadBody):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, services.ErrReference):
		return http.StatusUnprocessableEntity, "REFERENCE"
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, services.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS"
	}
	return http.StatusInternalServerError, "INTERNAL"
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
		msg = "Internal server error"
	}
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// actorFrom returns the authenticated caller or answers 401.
func actorFrom(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := middlewares.ActorFromContext(r.Context())
	if !ok {
		writeError(w, r, services.ErrUnauthenticated)
	}
	return actor, ok
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadBody
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", services.ErrValidation)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", services.ErrValidation, name)
	}
	return v, nil
}

func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", services.ErrValidation, name)
	}
	return &v, nil
}

func queryIntPtr(r *http.Request, name string) (*int, error) {
	v, err := queryInt64Ptr(r, name)
	if err != nil || v == nil {
		return nil, err
	}
	i := int(*v)
	return &i, nil
}

// queryPage reads page and size, defaulting to 1 and 10.
func queryPage(r *http.Request) (int, int, error) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt(r, "size", 10)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}
