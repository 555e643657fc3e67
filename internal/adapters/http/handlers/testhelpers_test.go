package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newIDRequest builds a request for a /todos/{id} route with the id param set.
func newIDRequest(method, id, body string) *http.Request {
	req := httptest.NewRequest(method, "/todos/"+id, strings.NewReader(body))
	return withChiParams(req, map[string]string{"id": id})
}

func validTodo() todo.Todo {
	return todo.Todo{ID: 1, Title: "Buy groceries", Completed: false}
}

func present(v any) todo.Field {
	return todo.Field{Present: true, Value: v}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireDetail(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	body := decodeJSON[map[string]string](t, rec)
	if body["detail"] != want {
		t.Errorf("detail = %q, want %q", body["detail"], want)
	}
}
