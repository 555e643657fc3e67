package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	q, err := todo.ParseQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.svc.ListTodos(r.Context(), q)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ShapeTodoList(page, q))
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	raw, err := dto.DecodeTodoPayload(r, todo.ModeCreate)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), raw)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// ReplaceTodo handles PUT /todos/{id}.
func (h *TodoHandler) ReplaceTodo(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := h.decodeUpdate(w, r, todo.ModeReplace)
	if !ok {
		return
	}

	updated, err := h.svc.ReplaceTodo(r.Context(), id, raw)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// PatchTodo handles PATCH /todos/{id}.
func (h *TodoHandler) PatchTodo(w http.ResponseWriter, r *http.Request) {
	id, raw, ok := h.decodeUpdate(w, r, todo.ModePatch)
	if !ok {
		return
	}

	updated, err := h.svc.PatchTodo(r.Context(), id, raw)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// CompleteTodo handles POST /todos/{id}/complete. Any body is ignored.
func (h *TodoHandler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, true)
}

// IncompleteTodo handles POST /todos/{id}/incomplete. Any body is ignored.
func (h *TodoHandler) IncompleteTodo(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, false)
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) setCompleted(w http.ResponseWriter, r *http.Request, completed bool) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.SetCompleted(r.Context(), id, completed)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// decodeUpdate resolves the identifier and then the body. A body that cannot
// be decoded is only reported once the todo is known to exist, so a missing
// todo answers 404 regardless of what was sent. On failure it writes the
// error response and returns false.
func (h *TodoHandler) decodeUpdate(w http.ResponseWriter, r *http.Request, mode todo.Mode) (int64, todo.RawPayload, bool) {
	id, err := parseID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, todo.RawPayload{}, false
	}

	raw, decodeErr := dto.DecodeTodoPayload(r, mode)
	if decodeErr != nil {
		if _, err := h.svc.GetTodo(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return 0, todo.RawPayload{}, false
		}
		dto.WriteErrorResponse(w, r, decodeErr)
		return 0, todo.RawPayload{}, false
	}

	return id, raw, true
}
