package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Fallback details for failures that carry no client-facing message.
const (
	detailInternal    = "Internal server error"
	detailUnavailable = "Service temporarily unavailable"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse maps err to an HTTP status and an ErrorResponse. Domain
// errors expose their own detail; anything else gets a generic message so
// internals never reach the client.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status := domainErrorToStatus(err)

	detail, ok := domain.DetailOf(err)
	switch {
	case status == http.StatusServiceUnavailable:
		detail = detailUnavailable
	case !ok || status == http.StatusInternalServerError:
		detail = detailInternal
	}

	return status, ErrorResponse{Detail: detail}
}

// WriteErrorResponse writes the JSON error body for err. Server-side
// failures are logged with the request's context.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err)

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	WriteDetail(w, status, resp.Detail)
}

// WriteDetail writes {"detail": detail} with the given status.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Detail: detail}); encErr != nil {
		slog.Error("failed to encode error response", slog.Any("error", encErr))
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
