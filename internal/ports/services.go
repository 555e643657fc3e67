package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method returns at most one failure, typed as a *domain.Error for
// anything the client caused.
type TodoService interface {
	// ListTodos returns the page of todos selected by q.
	ListTodos(ctx context.Context, q todo.Query) (*todo.Page, error)

	// GetTodo returns a single todo by ID.
	// Returns todo.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates the projected body and creates an incomplete todo.
	CreateTodo(ctx context.Context, raw todo.RawPayload) (*todo.Todo, error)

	// ReplaceTodo validates the projected body and overwrites every mutable
	// field. Existence is checked before the body.
	ReplaceTodo(ctx context.Context, id int64, raw todo.RawPayload) (*todo.Todo, error)

	// PatchTodo validates the projected body and overwrites only the
	// supplied fields. Existence is checked before the body.
	PatchTodo(ctx context.Context, id int64, raw todo.RawPayload) (*todo.Todo, error)

	// SetCompleted marks a todo complete or incomplete. Idempotent.
	SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error)

	// DeleteTodo permanently removes a todo.
	// Returns todo.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
