package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// idParam is the chi route parameter holding a todo identifier.
const idParam = "id"

// parseID extracts and validates the todo identifier from the chi URL params.
func parseID(r *http.Request) (int64, error) {
	return todo.ParseID(chi.URLParam(r, idParam))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}
